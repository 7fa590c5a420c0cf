package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmails struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) Send(req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, req)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestEmailService_SendQuoteReady(t *testing.T) {
	emails := &fakeEmails{}
	svc := services.NewEmailServiceWithSender(emails, "quotes@handyline.ca", "Handyline", zap.NewNop())

	err := svc.SendQuoteReady(context.Background(), business.QuoteReadyEmail{
		CustomerName:  "Dana <script>",
		CustomerEmail: "dana@example.com",
		InvoiceID:     "2b0c1f9e-aaaa",
		QuoteURL:      "https://handyline.ca/quote/2b0c1f9e-aaaa",
		Total:         "735.00",
		BusinessName:  "Handyline",
	})
	require.NoError(t, err)
	require.Len(t, emails.sent, 1)

	req := emails.sent[0]
	assert.Equal(t, "Handyline <quotes@handyline.ca>", req.From)
	assert.Equal(t, []string{"dana@example.com"}, req.To)
	assert.Equal(t, "Your quote from Handyline is ready", req.Subject)
	assert.Contains(t, req.Html, "https://handyline.ca/quote/2b0c1f9e-aaaa")
	assert.Contains(t, req.Html, "$735.00")
	assert.Contains(t, req.Html, "Dana &lt;script&gt;")
	assert.Contains(t, req.Text, "Total: $735.00")
	assert.Equal(t, []resend.Tag{
		{Name: "category", Value: "quote_ready"},
		{Name: "invoice_id", Value: "2b0c1f9e-aaaa"},
	}, req.Tags)
}

func TestEmailService_SendTransactionalEmail(t *testing.T) {
	tests := []struct {
		name        string
		emails      *fakeEmails
		params      params.TransactionalEmailParams
		wantErr     bool
		errorString string
	}{
		{
			name:   "sends email",
			emails: &fakeEmails{},
			params: params.TransactionalEmailParams{To: []string{"a@example.com"}, Subject: "Hi", TextBody: "hello"},
		},
		{
			name:        "requires recipients",
			emails:      &fakeEmails{},
			params:      params.TransactionalEmailParams{Subject: "Hi"},
			wantErr:     true,
			errorString: "no recipients",
		},
		{
			name:        "wraps provider errors",
			emails:      &fakeEmails{err: errors.New("rate limited")},
			params:      params.TransactionalEmailParams{To: []string{"a@example.com"}, Subject: "Hi"},
			wantErr:     true,
			errorString: "failed to send email",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewEmailServiceWithSender(tt.emails, "quotes@handyline.ca", "Handyline", zap.NewNop())
			err := svc.SendTransactionalEmail(context.Background(), tt.params)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.Len(t, tt.emails.sent, 1)
		})
	}
}

func TestEmailService_NoAPIKeyIsNoop(t *testing.T) {
	svc := services.NewEmailService("", "quotes@handyline.ca", "Handyline", zap.NewNop())
	err := svc.SendQuoteReady(context.Background(), business.QuoteReadyEmail{
		CustomerEmail: "dana@example.com",
		QuoteURL:      "https://handyline.ca/quote/x",
	})
	assert.NoError(t, err)
}
