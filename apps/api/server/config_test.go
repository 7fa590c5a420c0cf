package server

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envSecrets struct{}

func (envSecrets) GetSecretString(_ context.Context, arnVar, fallbackVar string) (string, error) {
	if v := os.Getenv(fallbackVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", arnVar, fallbackVar)
}

func (s envSecrets) GetOptionalSecret(ctx context.Context, arnVar, fallbackVar string) string {
	v, _ := s.GetSecretString(ctx, arnVar, fallbackVar)
	return v
}

func TestLoadConfig_LocalDefaults(t *testing.T) {
	t.Setenv("STAGE", "local")
	t.Setenv("INVOICE_STORE", "")
	t.Setenv("GENERATION_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://handyline.ca, https://www.handyline.ca")
	t.Setenv("PUBLIC_SITE_URL", "https://handyline.ca/")

	cfg, err := LoadConfigWithSecrets(context.Background(), envSecrets{})
	require.NoError(t, err)

	assert.Equal(t, constants.StoreMemory, cfg.InvoiceStore)
	assert.Equal(t, constants.ProviderOpenAI, cfg.GenerationProvider)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "https://handyline.ca", cfg.PublicSiteURL)
	assert.Equal(t, []string{"https://handyline.ca", "https://www.handyline.ca"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.CORS.ExposedHeaders, "Retry-After")
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.TrustedProxies)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid stage",
			env:     map[string]string{"STAGE": "staging"},
			wantErr: "invalid STAGE",
		},
		{
			name:    "postgres without database url",
			env:     map[string]string{"STAGE": "dev", "INVOICE_STORE": "postgres", "DATABASE_URL": ""},
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "firestore without project",
			env:     map[string]string{"STAGE": "dev", "INVOICE_STORE": "firestore", "FIRESTORE_PROJECT_ID": ""},
			wantErr: "FIRESTORE_PROJECT_ID is required",
		},
		{
			name:    "memory store in prod",
			env:     map[string]string{"STAGE": "prod", "INVOICE_STORE": "memory"},
			wantErr: "cannot be used in prod",
		},
		{
			name:    "invalid trusted proxy",
			env:     map[string]string{"STAGE": "local", "INVOICE_STORE": "memory", "OPENAI_API_KEY": "sk-test", "TRUSTED_PROXIES": "10.0.0.0/8, not-an-ip"},
			wantErr: "invalid TRUSTED_PROXIES entry",
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"STAGE": "local", "INVOICE_STORE": "memory", "GENERATION_PROVIDER": "llama"},
			wantErr: "invalid GENERATION_PROVIDER",
		},
		{
			name:    "missing gemini key",
			env:     map[string]string{"STAGE": "local", "INVOICE_STORE": "memory", "GENERATION_PROVIDER": "gemini", "GEMINI_API_KEY": ""},
			wantErr: "failed to get gemini API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfigWithSecrets(context.Background(), envSecrets{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_OptionalSecrets(t *testing.T) {
	t.Setenv("STAGE", "dev")
	t.Setenv("INVOICE_STORE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://handyline@localhost/handyline")
	t.Setenv("GENERATION_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-test")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("CRM_API_TOKEN", "crm-token")

	cfg, err := LoadConfigWithSecrets(context.Background(), envSecrets{})
	require.NoError(t, err)

	assert.Equal(t, "postgres://handyline@localhost/handyline", cfg.DatabaseURL)
	assert.Equal(t, "g-test", cfg.GeminiAPIKey)
	assert.Empty(t, cfg.ResendAPIKey)
	assert.Equal(t, "crm-token", cfg.CRMAPIToken)
}

func TestLoadConfig_TrustedProxies(t *testing.T) {
	t.Setenv("STAGE", "local")
	t.Setenv("INVOICE_STORE", "memory")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.10")
	t.Setenv("TRUSTED_PLATFORM", "CF-Connecting-IP")

	cfg, err := LoadConfigWithSecrets(context.Background(), envSecrets{})
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, cfg.TrustedProxies)
	assert.Equal(t, "CF-Connecting-IP", cfg.TrustedPlatform)
}
