package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/handyline/handyline-api/libs/go/client/generation"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/mocks"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
	"github.com/handyline/handyline-api/libs/go/types/business"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func TestEnhancementService_Enhance(t *testing.T) {
	tests := []struct {
		name        string
		params      params.EnhanceParams
		generated   string
		genErr      error
		wantCalled  bool
		wantContent string
		wantTotal   string
		wantStatus  quote.ExtractionStatus
		wantErr     bool
		validation  bool
	}{
		{
			name:        "extracts total and strips marker",
			params:      params.EnhanceParams{Section: business.SectionLabor, RawInput: "patch 3 holes in hallway"},
			generated:   "Patched and sanded three drywall holes in the hallway.\n[TOTAL: $1,234.56]",
			wantCalled:  true,
			wantContent: "Patched and sanded three drywall holes in the hallway.",
			wantTotal:   "1234.56",
			wantStatus:  quote.TotalFound,
		},
		{
			name:        "missing marker keeps content and zero total",
			params:      params.EnhanceParams{Section: business.SectionMaterials, RawInput: "2 sheets drywall"},
			generated:   "Two sheets of half inch drywall.",
			wantCalled:  true,
			wantContent: "Two sheets of half inch drywall.",
			wantTotal:   "0",
			wantStatus:  quote.TotalNotFound,
		},
		{
			name:        "malformed marker is left in content",
			params:      params.EnhanceParams{Section: business.SectionEquipment, RawInput: "sander rental"},
			generated:   "Drywall sander rental. [TOTAL: $abc]",
			wantCalled:  true,
			wantContent: "Drywall sander rental. [TOTAL: $abc]",
			wantTotal:   "0",
			wantStatus:  quote.TotalMalformed,
		},
		{
			name:       "empty raw input is rejected before calling the generator",
			params:     params.EnhanceParams{Section: business.SectionLabor, RawInput: "   "},
			wantErr:    true,
			validation: true,
		},
		{
			name:       "unknown section is rejected",
			params:     params.EnhanceParams{Section: "roofing", RawInput: "replace shingles"},
			wantErr:    true,
			validation: true,
		},
		{
			name:       "generator failure is returned",
			params:     params.EnhanceParams{Section: business.SectionLabor, RawInput: "paint"},
			genErr:     generation.NewFatalError(errors.New("invalid api key")),
			wantCalled: true,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := mocks.NewMockTextGeneratorForTest(t)
			if tt.wantCalled {
				generator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req generation.GenerateRequest) (string, error) {
						assert.Equal(t, services.InvoiceAssistantContext, req.Context)
						assert.Contains(t, req.Prompt, strings.TrimSpace(tt.params.RawInput))
						assert.Contains(t, req.Prompt, tt.params.Section.Title())
						_, hasDeadline := ctx.Deadline()
						assert.True(t, hasDeadline)
						return tt.generated, tt.genErr
					})
			}

			svc := services.NewEnhancementService(generator)
			result, err := svc.Enhance(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.validation, services.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, result.Content)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(result.Total), "total %s", result.Total)
			assert.Equal(t, tt.wantStatus, result.TotalStatus)
		})
	}
}

func TestEnhancementService_Timeout(t *testing.T) {
	generator := mocks.NewMockTextGeneratorForTest(t)
	generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req generation.GenerateRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	svc := services.NewEnhancementService(generator, services.WithEnhancementTimeout(20*time.Millisecond))
	result, err := svc.Enhance(context.Background(), params.EnhanceParams{
		Section:  business.SectionLabor,
		RawInput: "hang door",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrEnhancementTimeout)
	assert.Contains(t, services.EnhancementErrorMessage(err), "too long")
}

func TestEnhancementService_DefaultTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, services.EnhancementTimeout)
}

func TestEnhancementService_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := services.NewEnhancementMetrics(reg)

	generator := mocks.NewMockTextGeneratorForTest(t)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Done. [TOTAL: $10]", nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

	svc := services.NewEnhancementService(generator, services.WithEnhancementMetrics(metrics))
	_, err := svc.Enhance(context.Background(), params.EnhanceParams{Section: business.SectionLabor, RawInput: "a"})
	require.NoError(t, err)
	_, err = svc.Enhance(context.Background(), params.EnhanceParams{Section: business.SectionLabor, RawInput: "b"})
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "handyline_enhancement_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var outcome string
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" {
					outcome = lp.GetValue()
				}
			}
			counts[outcome] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), counts[services.OutcomeSuccess])
	assert.Equal(t, float64(1), counts[services.OutcomeFailure])
}

func TestBuildLineItemPrompt(t *testing.T) {
	prompt := services.BuildLineItemPrompt(business.SectionMaterials, "  2x4 lumber, 10 pcs  ")
	assert.Contains(t, prompt, "Section: Materials")
	assert.Contains(t, prompt, "2x4 lumber, 10 pcs")
	assert.Contains(t, prompt, "materials work")
	assert.Contains(t, services.InvoiceAssistantContext, "invoice generation assistant")
	assert.Contains(t, services.InvoiceAssistantContext, "[TOTAL: $")
}

func TestEnhancementErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "timeout", err: fmt.Errorf("wrap: %w", services.ErrEnhancementTimeout), want: "too long"},
		{name: "empty response", err: generation.ErrEmptyResponse, want: "No description"},
		{name: "transient", err: generation.NewTransientError(errors.New("503")), want: "busy"},
		{name: "other", err: errors.New("bad request"), want: "Failed to generate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.EnhancementErrorMessage(tt.err)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}
