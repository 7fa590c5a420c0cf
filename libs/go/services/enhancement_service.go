package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/handyline/handyline-api/libs/go/client/generation"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/prometheus/client_golang/prometheus"
)

// EnhancementTimeout bounds every call to the generator.
const EnhancementTimeout = 30 * time.Second

// InvoiceAssistantContext is sent with every line item prompt.
const InvoiceAssistantContext = `You are an invoice generation assistant for a residential home services company (handyman, drywall, demolition and HVAC work).
Rewrite the contractor's rough notes as a clear, professional invoice line item a homeowner can understand.
Describe the scope of work in plain language. Do not invent work that is not described.
If photos are provided, use them only to clarify the work described.
End your answer with the line item total on its own line in exactly this format: [TOTAL: $1,234.56]`

// Enhancement outcomes recorded in logs and metrics.
const (
	OutcomeSuccess = "success"
	OutcomeNoTotal = "no_total"
	OutcomeTimeout = "timeout"
	OutcomeFailure = "failure"
)

// BuildLineItemPrompt builds the user prompt for one line item.
func BuildLineItemPrompt(section business.SectionKind, rawInput string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Section: %s\n", section.Title())
	b.WriteString("Contractor notes:\n")
	b.WriteString(strings.TrimSpace(rawInput))
	b.WriteString("\n\nWrite the invoice line item for this ")
	b.WriteString(strings.ToLower(section.Title()))
	b.WriteString(" work, then the total marker.")
	return b.String()
}

// EnhancementMetrics counts enhancement outcomes per section.
type EnhancementMetrics struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewEnhancementMetrics registers the enhancement metrics on reg.
func NewEnhancementMetrics(reg prometheus.Registerer) *EnhancementMetrics {
	m := &EnhancementMetrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handyline",
			Subsystem: "enhancement",
			Name:      "requests_total",
			Help:      "Line item enhancements by section and outcome.",
		}, []string{"section", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "handyline",
			Subsystem: "enhancement",
			Name:      "duration_seconds",
			Help:      "Time spent waiting on the generator.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30},
		}, []string{"section"}),
	}
	reg.MustRegister(m.outcomes, m.duration)
	return m
}

func (m *EnhancementMetrics) observe(section business.SectionKind, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(string(section), outcome).Inc()
	m.duration.WithLabelValues(string(section)).Observe(d.Seconds())
}

// EnhancementService calls the generator for a single line item and extracts
// the priced result.
type EnhancementService struct {
	generator interfaces.TextGenerator
	parser    quote.TotalParser
	timeout   time.Duration
	metrics   *EnhancementMetrics
	logger    *logger.StructuredLogger
}

// EnhancementOption configures an EnhancementService.
type EnhancementOption func(*EnhancementService)

// WithEnhancementTimeout overrides EnhancementTimeout.
func WithEnhancementTimeout(d time.Duration) EnhancementOption {
	return func(s *EnhancementService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithEnhancementMetrics records outcomes on m.
func WithEnhancementMetrics(m *EnhancementMetrics) EnhancementOption {
	return func(s *EnhancementService) {
		s.metrics = m
	}
}

// WithTotalParser replaces the default marker extractor.
func WithTotalParser(p quote.TotalParser) EnhancementOption {
	return func(s *EnhancementService) {
		if p != nil {
			s.parser = p
		}
	}
}

func NewEnhancementService(generator interfaces.TextGenerator, opts ...EnhancementOption) *EnhancementService {
	s := &EnhancementService{
		generator: generator,
		parser:    quote.NewMarkerExtractor(),
		timeout:   EnhancementTimeout,
		logger:    logger.NewStructuredLogger(logger.ComponentEnhancement),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enhance generates a professional description for the raw input. A failed or
// timed out call returns an error and nothing else; the caller keeps whatever
// it had before.
func (s *EnhancementService) Enhance(ctx context.Context, p params.EnhanceParams) (*responses.EnhancementResult, error) {
	ve := &ValidationError{}
	if !p.Section.Valid() {
		ve.add("section", "section must be one of labor, materials, equipment")
	}
	rawInput := strings.TrimSpace(p.RawInput)
	if rawInput == "" {
		ve.add("raw_input", "raw_input is required")
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.generator.Generate(ctx, generation.GenerateRequest{
		Prompt:         BuildLineItemPrompt(p.Section, rawInput),
		AttachmentURLs: p.AttachmentURLs,
		Context:        InvoiceAssistantContext,
	})
	elapsed := time.Since(start)
	if err != nil {
		outcome := OutcomeFailure
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			outcome = OutcomeTimeout
			err = fmt.Errorf("%w: %w", ErrEnhancementTimeout, err)
		}
		s.metrics.observe(p.Section, outcome, elapsed)
		s.logger.WithContext(ctx).WithFields(map[string]interface{}{
			"section": string(p.Section),
			"outcome": outcome,
		}).WithDuration(elapsed).Error("Line item enhancement failed", err)
		return nil, fmt.Errorf("failed to enhance line item: %w", err)
	}

	extraction := s.parser.Extract(text)
	outcome := OutcomeSuccess
	if extraction.Status != quote.TotalFound {
		outcome = OutcomeNoTotal
	}
	s.metrics.observe(p.Section, outcome, elapsed)
	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"section":      string(p.Section),
		"outcome":      outcome,
		"total_status": string(extraction.Status),
	}).WithDuration(elapsed).Debug("Line item enhanced")

	return &responses.EnhancementResult{
		Content:     extraction.Content,
		Total:       extraction.Total,
		TotalStatus: extraction.Status,
	}, nil
}

// EnhancementErrorMessage is the message stored on a line item after a
// failed enhancement.
func EnhancementErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEnhancementTimeout), errors.Is(err, context.DeadlineExceeded):
		return "The description took too long to generate. Please try again."
	case errors.Is(err, generation.ErrEmptyResponse):
		return "No description was generated. Please try again."
	case generation.IsTransient(err):
		return "The description service is busy right now. Please try again in a moment."
	default:
		return "Failed to generate a description. Please edit the text and try again."
	}
}
