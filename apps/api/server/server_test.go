package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/client/generation"
	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/db"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/mocks"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func testConfig() *Config {
	return &Config{
		Stage:                "local",
		GinMode:              gin.TestMode,
		InvoiceStore:         constants.StoreMemory,
		GenerationProvider:   constants.ProviderOpenAI,
		EnhanceRatePerMinute: 600,
		EnhanceBurst:         20,
		EnhanceConcurrency:   2,
		SessionRatePerMinute: 600,
		SessionBurst:         20,
		SessionTTL:           time.Hour,
		MaxSessions:          100,
		MaxItemsPerSection:   10,
		PublicSiteURL:        "https://handyline.ca",
		BusinessName:         "Handyline",
		CORS:                 loadCORSConfig(),
	}
}

func newTestServer(t *testing.T, generator *mocks.MockTextGenerator) (*Server, *gin.Engine) {
	t.Helper()
	return newTestServerWithConfig(t, testConfig(), generator)
}

func newTestServerWithConfig(t *testing.T, cfg *Config, generator *mocks.MockTextGenerator) (*Server, *gin.Engine) {
	t.Helper()
	srv, err := NewWithDependencies(context.Background(), cfg, Dependencies{
		Store:     db.NewMemoryInvoiceStore(),
		Generator: generator,
	})
	require.NoError(t, err)
	t.Cleanup(func() { srv.Shutdown(context.Background()) })
	return srv, srv.Handler()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServer_HealthAndMetrics(t *testing.T) {
	_, router := newTestServer(t, mocks.NewMockTextGeneratorForTest(t))

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))

	w = doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_CatalogAndEstimate(t *testing.T) {
	_, router := newTestServer(t, mocks.NewMockTextGeneratorForTest(t))

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cat responses.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	require.NotEmpty(t, cat.Categories)
	require.NotEmpty(t, cat.Categories[0].Entries)

	service := cat.Categories[0].Entries[0].ServiceName
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders/estimate", map[string]interface{}{
		"selections": []map[string]interface{}{{"service_name": service, "delta": 1}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var estimate responses.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &estimate))
	assert.True(t, cat.Categories[0].Entries[0].MinPrice.Equal(estimate.MinTotal))
}

func TestServer_InvoiceRoundTrip(t *testing.T) {
	srv, router := newTestServer(t, mocks.NewMockTextGeneratorForTest(t))

	w := doJSON(t, router, http.MethodPost, "/api/v1/invoices", map[string]interface{}{
		"customerInfo": map[string]string{
			"name":    "Dana Whitford",
			"address": "12 Birch Lane, Calgary AB",
			"phone":   "403-555-0142",
			"email":   "dana@example.com",
		},
		"sections": []map[string]interface{}{
			{"type": "labor", "items": []map[string]interface{}{
				{"content": "Patch and paint hallway", "total": "500"},
				{"content": "", "total": "0"},
			}},
			{"type": "materials", "items": []map[string]interface{}{{"content": "Compound and tape", "total": "200"}}},
			{"type": "equipment", "items": []map[string]interface{}{{"content": "", "total": "0"}}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created responses.InvoiceCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	srv.invoiceService.Wait()

	w = doJSON(t, router, http.MethodGet, "/api/v1/invoices/"+created.ID+"/quote", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Subtotal: 700.00")
	assert.Contains(t, body, "GST (5%): 35.00")
	assert.Contains(t, body, "Total: 735.00")
	assert.NotContains(t, body, "Equipment")

	w = doJSON(t, router, http.MethodGet, "/api/v1/invoices/"+created.ID+"/quote?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/invoices/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_QuoteSessionFlow(t *testing.T) {
	generator := mocks.NewMockTextGeneratorForTest(t)
	srv, router := newTestServer(t, generator)

	generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req generation.GenerateRequest) (string, error) {
			assert.Contains(t, req.Prompt, "patch two holes")
			return "Repair two drywall holes and repaint the hallway.\n[TOTAL: $500.00]", nil
		})

	w := doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var snap quote.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	laborItem := snap.Sections[0].Items[0].ID

	w = doJSON(t, router, http.MethodPut, "/api/v1/quote-sessions/"+snap.ID+"/sections/labor/items/"+laborItem,
		map[string]string{"raw_input": "patch two holes in hallway"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions/"+snap.ID+"/sections/labor/items/"+laborItem+"/enhance", nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	srv.sessionService.Wait()

	w = doJSON(t, router, http.MethodGet, "/api/v1/quote-sessions/"+snap.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	item := snap.Sections[0].Items[0]
	assert.False(t, item.Pending)
	assert.Equal(t, quote.TotalFound, item.TotalStatus)
	assert.True(t, decimal.NewFromInt(500).Equal(item.Total), item.Total.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions/"+snap.ID+"/submit", map[string]interface{}{
		"customerInfo": map[string]string{
			"name":    "Dana Whitford",
			"address": "12 Birch Lane, Calgary AB",
			"phone":   "403-555-0142",
			"email":   "dana@example.com",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created responses.InvoiceCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	srv.invoiceService.Wait()

	w = doJSON(t, router, http.MethodGet, "/api/v1/invoices/"+created.ID+"/quote?format=html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "525.00"))

	w = doJSON(t, router, http.MethodGet, "/api/v1/quote-sessions/"+snap.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_LeadValidation(t *testing.T) {
	_, router := newTestServer(t, mocks.NewMockTextGeneratorForTest(t))

	w := doJSON(t, router, http.MethodPost, "/api/v1/leads", map[string]string{
		"name":   "Dana Whitford",
		"email":  "not-an-email",
		"phone":  "403-555-0142",
		"source": "contact_form",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestServer_AttachmentsDisabled(t *testing.T) {
	_, router := newTestServer(t, mocks.NewMockTextGeneratorForTest(t))

	w := doJSON(t, router, http.MethodPost, "/api/v1/attachments", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func enhanceFrom(router http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/line-items/enhance", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestServer_EnhanceRateLimitIgnoresUntrustedForwardedFor(t *testing.T) {
	cfg := testConfig()
	cfg.EnhanceRatePerMinute = 1
	cfg.EnhanceBurst = 1
	_, router := newTestServerWithConfig(t, cfg, mocks.NewMockTextGeneratorForTest(t))

	// The empty body fails validation, which runs after the limiter.
	assert.Equal(t, http.StatusBadRequest, enhanceFrom(router, "203.0.113.9:4000", "1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, enhanceFrom(router, "203.0.113.9:4001", "2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, enhanceFrom(router, "203.0.113.9:4002", "3.3.3.3"))
	assert.Equal(t, http.StatusBadRequest, enhanceFrom(router, "198.51.100.7:4000", "1.1.1.1"))
}

func TestServer_EnhanceRateLimitTrustsConfiguredProxy(t *testing.T) {
	cfg := testConfig()
	cfg.EnhanceRatePerMinute = 1
	cfg.EnhanceBurst = 1
	cfg.TrustedProxies = []string{"10.0.0.0/8"}
	_, router := newTestServerWithConfig(t, cfg, mocks.NewMockTextGeneratorForTest(t))

	assert.Equal(t, http.StatusBadRequest, enhanceFrom(router, "10.1.2.3:4000", "1.1.1.1"))
	assert.Equal(t, http.StatusBadRequest, enhanceFrom(router, "10.1.2.3:4001", "2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, enhanceFrom(router, "10.1.2.3:4002", "1.1.1.1"))
}

func TestServer_SessionCreationIsRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.SessionRatePerMinute = 1
	cfg.SessionBurst = 2
	_, router := newTestServerWithConfig(t, cfg, mocks.NewMockTextGeneratorForTest(t))

	assert.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions", nil).Code)
	assert.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions", nil).Code)
}

func TestServer_SessionStoreCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSessions = 1
	_, router := newTestServerWithConfig(t, cfg, mocks.NewMockTextGeneratorForTest(t))

	assert.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, doJSON(t, router, http.MethodPost, "/api/v1/quote-sessions", nil).Code)
}
