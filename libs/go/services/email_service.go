package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailSender is the subset of the resend emails API used here.
type EmailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	emails    EmailSender
	logger    *zap.Logger
	fromEmail string
	fromName  string
	replyTo   string
}

// NewEmailService creates a resend backed email service. With an empty API
// key the service only logs what it would have sent.
func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	var emails EmailSender
	if apiKey != "" {
		emails = resend.NewClient(apiKey).Emails
	}
	return NewEmailServiceWithSender(emails, fromEmail, fromName, logger)
}

// NewEmailServiceWithSender wires an explicit sender, nil for log-only mode.
func NewEmailServiceWithSender(emails EmailSender, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{
		emails:    emails,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		replyTo:   fromEmail,
	}
}

// SendTransactionalEmail sends a single email
func (s *EmailService) SendTransactionalEmail(ctx context.Context, params params.TransactionalEmailParams) error {
	if len(params.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}
	if s.emails == nil {
		s.logger.Info("Email delivery disabled, skipping send",
			zap.Strings("to", params.To),
			zap.String("subject", params.Subject))
		return nil
	}

	replyTo := params.ReplyTo
	if replyTo == "" {
		replyTo = s.replyTo
	}
	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      params.To,
		Subject: params.Subject,
		Html:    params.HTMLBody,
		Text:    params.TextBody,
		Cc:      params.Cc,
		Bcc:     params.Bcc,
		ReplyTo: replyTo,
		Headers: params.Headers,
		Tags:    convertToResendTags(params.Tags),
	}

	sent, err := s.emails.Send(request)
	if err != nil {
		s.logger.Error("Failed to send email",
			zap.Error(err),
			zap.Strings("to", params.To),
			zap.String("subject", params.Subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Email sent successfully",
		zap.String("email_id", sent.Id),
		zap.Strings("to", params.To),
		zap.String("subject", params.Subject))
	return nil
}

// SendQuoteReady tells the customer their quote can be viewed online.
func (s *EmailService) SendQuoteReady(ctx context.Context, email business.QuoteReadyEmail) error {
	if strings.TrimSpace(email.CustomerEmail) == "" {
		return fmt.Errorf("quote ready email has no recipient")
	}
	htmlBody, err := s.parseTemplate(quoteReadyHTML, email)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	return s.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
		To:       []string{email.CustomerEmail},
		Subject:  fmt.Sprintf("Your quote from %s is ready", email.BusinessName),
		HTMLBody: htmlBody,
		TextBody: quoteReadyText(email),
		Tags: map[string]string{
			"category":   "quote_ready",
			"invoice_id": email.InvoiceID,
		},
	})
}

// parseTemplate parses and executes a template with the given data
func (s *EmailService) parseTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func quoteReadyText(email business.QuoteReadyEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", email.CustomerName)
	fmt.Fprintf(&b, "Your quote from %s is ready.\n", email.BusinessName)
	if email.Total != "" {
		fmt.Fprintf(&b, "Total: $%s\n", email.Total)
	}
	fmt.Fprintf(&b, "View it online: %s\n", email.QuoteURL)
	return b.String()
}

// Resend rejects tag values outside [A-Za-z0-9_-]; keys are sorted so
// requests are stable.
func convertToResendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	resendTags := make([]resend.Tag, 0, len(tags))
	for _, name := range names {
		resendTags = append(resendTags, resend.Tag{
			Name:  name,
			Value: sanitizeTagValue(tags[name]),
		})
	}
	return resendTags
}

func sanitizeTagValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, v)
}

const quoteReadyHTML = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f4f4f4; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .button { display: inline-block; padding: 10px 20px; background-color: #1f6f43; color: white; text-decoration: none; border-radius: 5px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Your quote is ready</h2>
        </div>
        <div class="content">
            <p>Hi {{.CustomerName}},</p>
            <p>Thanks for choosing {{.BusinessName}}. Your quote{{if .Total}} totalling <strong>${{.Total}}</strong>{{end}} is ready to review.</p>
            <p><a href="{{.QuoteURL}}" class="button">View your quote</a></p>
        </div>
        <div class="footer">
            <p>{{.BusinessName}}</p>
        </div>
    </div>
</body>
</html>`
