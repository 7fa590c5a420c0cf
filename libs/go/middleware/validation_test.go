package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performJSON(t *testing.T, config ValidationConfig, body interface{}) (*httptest.ResponseRecorder, []byte) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var received []byte
	router := gin.New()
	router.POST("/test", ValidateInput(config), func(c *gin.Context) {
		received, _ = io.ReadAll(c.Request.Body)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w, received
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name           string
		config         ValidationConfig
		body           interface{}
		expectedStatus int
		expectedErrors []string
	}{
		{
			name: "Valid body",
			config: ValidationConfig{
				Rules: []ValidationRule{
					{Field: "name", Required: true, Type: "string", MinLength: 1},
					{Field: "quantity", Required: true, Type: "int", Min: float64Ptr(0)},
				},
			},
			body:           map[string]interface{}{"name": "Drywall", "quantity": 2},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing required field",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "name", Required: true, Type: "string"}}},
			body:           map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"name is required"},
		},
		{
			name:           "Blank required string",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "name", Required: true, Type: "string"}}},
			body:           map[string]interface{}{"name": "   "},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"name is required"},
		},
		{
			name:           "Whole number required",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "quantity", Required: true, Type: "int"}}},
			body:           map[string]interface{}{"quantity": 1.5},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"must be a whole number"},
		},
		{
			name:           "Invalid email",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "email", Required: true, Type: "email"}}},
			body:           map[string]interface{}{"email": "not-an-email"},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"must be a valid email address"},
		},
		{
			name:           "Invalid phone",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "phone", Required: true, Type: "phone"}}},
			body:           map[string]interface{}{"phone": "call me"},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"must be a valid phone number"},
		},
		{
			name: "Value not allowed",
			config: ValidationConfig{Rules: []ValidationRule{
				{Field: "section", Required: true, Type: "string", AllowedValues: []string{"labor", "materials"}},
			}},
			body:           map[string]interface{}{"section": "roofing"},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"must be one of: labor, materials"},
		},
		{
			name:           "Unknown field",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "name", Type: "string"}}},
			body:           map[string]interface{}{"name": "x", "admin": true},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{"unknown field"},
		},
		{
			name:           "Unknown field allowed",
			config:         ValidationConfig{AllowUnknownFields: true, Rules: []ValidationRule{{Field: "name", Type: "string"}}},
			body:           map[string]interface{}{"name": "x", "extra": 1},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Optional empty string skips format checks",
			config:         ValidationConfig{Rules: []ValidationRule{{Field: "preferred_date", Type: "string", Pattern: DateRegex}}},
			body:           map[string]interface{}{"preferred_date": ""},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Body too large",
			config:         ValidationConfig{MaxBodySize: 10, Rules: []ValidationRule{{Field: "name", Type: "string"}}},
			body:           map[string]interface{}{"name": "a much longer name than allowed"},
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := performJSON(t, tt.config, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if len(tt.expectedErrors) > 0 {
				var response ValidationErrors
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				var messages []string
				for _, e := range response.Errors {
					messages = append(messages, e.Message)
				}
				for _, expected := range tt.expectedErrors {
					assert.Contains(t, messages, expected)
				}
			}
		})
	}
}

func TestValidateInputSanitizesBody(t *testing.T) {
	config := ValidationConfig{Rules: []ValidationRule{{Field: "message", Type: "string", Sanitize: true}}}
	w, received := performJSON(t, config, map[string]interface{}{"message": "  hello\x00 <b>world</b>\n "})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(received, &body))
	assert.Equal(t, "hello <b>world</b>", body["message"])
}

func TestCreateLeadValidation(t *testing.T) {
	valid := map[string]interface{}{
		"name":    "Marco Ruiz",
		"email":   "marco@example.com",
		"phone":   "(604) 555-0199",
		"message": "Need a furnace tune-up",
		"source":  "quote_form",
	}
	w, _ := performJSON(t, CreateLeadValidation, valid)
	assert.Equal(t, http.StatusOK, w.Code)

	invalid := map[string]interface{}{
		"name":   "M",
		"email":  "marco",
		"source": "order_form",
	}
	w, _ = performJSON(t, CreateLeadValidation, invalid)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	fields := map[string]bool{}
	for _, e := range response.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["phone"])
	assert.True(t, fields["source"])
}

func TestCreateOrderValidationSelections(t *testing.T) {
	body := map[string]interface{}{
		"name":    "Dana Whitford",
		"email":   "dana@example.com",
		"phone":   "604-555-0142",
		"address": "1420 Maple St",
		"selections": []interface{}{
			map[string]interface{}{"service_name": "TV Wall Mount", "delta": 1},
			map[string]interface{}{"service_name": "", "delta": 1},
		},
	}
	w, _ := performJSON(t, CreateOrderValidation, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "selections[1].service_name is required")

	body["selections"] = []interface{}{
		map[string]interface{}{"service_name": "TV Wall Mount", "delta": 2},
	}
	w, _ = performJSON(t, CreateOrderValidation, body)
	assert.Equal(t, http.StatusOK, w.Code)

	body["selections"] = []interface{}{
		map[string]interface{}{"service_name": "TV Wall Mount", "delta": 1000000000000},
	}
	w, _ = performJSON(t, CreateOrderValidation, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "selections[0].delta must be at most 999")

	body["selections"] = []interface{}{
		map[string]interface{}{"service_name": "TV Wall Mount", "delta": -1000},
	}
	w, _ = performJSON(t, CreateOrderValidation, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "selections[0].delta must be at least -999")
}

func TestEnhanceLineItemValidation(t *testing.T) {
	w, _ := performJSON(t, EnhanceLineItemValidation, map[string]interface{}{
		"section":         "labor",
		"raw_input":       "patch two holes",
		"attachment_urls": []interface{}{"https://files.handyline.ca/a.jpg"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = performJSON(t, EnhanceLineItemValidation, map[string]interface{}{
		"section":         "labor",
		"raw_input":       "patch two holes",
		"attachment_urls": []interface{}{"ftp://nope"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/quote", ValidateQueryParams(QuoteFormatValidation), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		query          string
		expectedStatus int
	}{
		{query: "", expectedStatus: http.StatusOK},
		{query: "?format=html", expectedStatus: http.StatusOK},
		{query: "?format=docx", expectedStatus: http.StatusBadRequest},
		{query: "?format=text&page=2", expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quote"+tt.query, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
