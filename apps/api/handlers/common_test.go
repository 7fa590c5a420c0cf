package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/db"
	"github.com/handyline/handyline-api/libs/go/pricing"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invoice not found", fmt.Errorf("failed to load invoice: %w", db.ErrInvoiceNotFound), http.StatusNotFound, "Invoice not found"},
		{"session not found", quote.ErrSessionNotFound, http.StatusNotFound, "Quote session not found"},
		{"item not found", quote.ErrItemNotFound, http.StatusNotFound, "Line item not found"},
		{"unknown section", quote.ErrUnknownSection, http.StatusNotFound, "Unknown section"},
		{"enhancement in flight", quote.ErrEnhancementInFlight, http.StatusConflict, "A line item is still being generated"},
		{"section full", quote.ErrSectionFull, http.StatusConflict, "This section cannot hold more line items"},
		{"session limit", quote.ErrSessionLimit, http.StatusServiceUnavailable, "Too many open quotes, please try again later"},
		{"empty raw input", quote.ErrEmptyRawInput, http.StatusBadRequest, "Line item has no description to enhance"},
		{"malformed invoice", fmt.Errorf("%w: %w", db.ErrMalformedInvoice, errors.New("negative total")), http.StatusBadGateway, "Invoice could not be rendered"},
		{"attachment too large", services.ErrAttachmentTooLarge, http.StatusRequestEntityTooLarge, "Attachment exceeds the 10 MB limit"},
		{"unsupported attachment", services.ErrUnsupportedAttachment, http.StatusUnsupportedMediaType, "Only image attachments are supported"},
		{"enhancement timeout", fmt.Errorf("%w: %w", services.ErrEnhancementTimeout, context.DeadlineExceeded), http.StatusGatewayTimeout, services.EnhancementErrorMessage(services.ErrEnhancementTimeout)},
		{"persistence", fmt.Errorf("%w: %w", services.ErrPersistence, errors.New("connection refused")), http.StatusInternalServerError, "Failed to save invoice, please try again"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestHandleError_ValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/invoices", nil)

	HandleError(c, fmt.Errorf("failed to submit: %w", &services.ValidationError{Fields: []services.FieldError{
		{Field: "customerInfo.name", Message: "name is required"},
	}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"customerInfo.name","message":"name is required"}]}`, w.Body.String())
}

func TestHandleError_BelowMinimum(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)

	HandleError(c, &services.BelowMinimumError{Estimate: &responses.EstimateResponse{
		MinTotal:          decimal.NewFromInt(120),
		MaxTotal:          decimal.NewFromInt(180),
		MinimumOrderTotal: pricing.MinimumOrderTotal(),
	}})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp BelowMinimumResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Orders must total at least $250.00", resp.Error)
	require.NotNil(t, resp.Estimate)
	assert.True(t, decimal.NewFromInt(120).Equal(resp.Estimate.MinTotal))
}

func TestHandleError_NilIsNoop(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, nil)

	assert.False(t, c.Writer.Written())
}
