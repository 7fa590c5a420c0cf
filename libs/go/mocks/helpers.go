package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockTextGeneratorForTest creates a new mock TextGenerator for testing
func NewMockTextGeneratorForTest(t *testing.T) *MockTextGenerator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTextGenerator(ctrl)
}

// NewMockInvoiceStoreForTest creates a new mock InvoiceStore for testing
func NewMockInvoiceStoreForTest(t *testing.T) *MockInvoiceStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInvoiceStore(ctrl)
}

// NewMockLeadSenderForTest creates a new mock LeadSender for testing
func NewMockLeadSenderForTest(t *testing.T) *MockLeadSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLeadSender(ctrl)
}

// NewMockQueuePublisherForTest creates a new mock QueuePublisher for testing
func NewMockQueuePublisherForTest(t *testing.T) *MockQueuePublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQueuePublisher(ctrl)
}

// NewMockQuoteNotifierForTest creates a new mock QuoteNotifier for testing
func NewMockQuoteNotifierForTest(t *testing.T) *MockQuoteNotifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuoteNotifier(ctrl)
}
