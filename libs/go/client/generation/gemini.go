package generation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	httpClient "github.com/handyline/handyline-api/libs/go/client/http"
)

const (
	// DefaultGeminiBaseURL is the public Generative Language API.
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-1.5-flash"
)

// GeminiGenerator calls the generateContent REST endpoint through the shared
// resilient HTTP client.
type GeminiGenerator struct {
	client *httpClient.HTTPClient
	apiKey string
	model  string
}

// NewGeminiGenerator builds a generator. The client must carry the base URL.
func NewGeminiGenerator(client *httpClient.HTTPClient, apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGenerator{client: client, apiKey: apiKey, model: model}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  map[string]any  `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Generate sends one user turn. Attachment URLs are listed in the prompt text
// since the REST API only accepts uploaded file references.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	prompt := req.Prompt
	if len(req.AttachmentURLs) > 0 {
		var b strings.Builder
		b.WriteString(prompt)
		b.WriteString("\n\nReference photos:\n")
		for _, u := range req.AttachmentURLs {
			b.WriteString("- ")
			b.WriteString(u)
			b.WriteByte('\n')
		}
		prompt = b.String()
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: map[string]any{
			"temperature":     0.4,
			"maxOutputTokens": 1024,
		},
	}
	if req.Context != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.Context}}}
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", url.PathEscape(g.model))
	resp, err := g.client.Post(ctx, path, body, httpClient.WithHeader("x-goog-api-key", g.apiKey))
	if err != nil {
		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) {
			resp.Body.Close()
			return "", classifyStatus(httpErr.StatusCode, fmt.Errorf("gemini generateContent: status %d", httpErr.StatusCode))
		}
		return "", NewTransientError(fmt.Errorf("gemini generateContent: %w", err))
	}

	var out geminiResponse
	if err := g.client.ProcessJSONResponse(resp, &out); err != nil {
		return "", NewTransientError(fmt.Errorf("failed to decode gemini response: %w", err))
	}
	if len(out.Candidates) == 0 {
		return "", NewTransientError(ErrEmptyResponse)
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	result := strings.TrimSpace(text.String())
	if result == "" {
		return "", NewTransientError(ErrEmptyResponse)
	}
	return result, nil
}
