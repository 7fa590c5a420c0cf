package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	awsclient "github.com/handyline/handyline-api/libs/go/client/aws"
	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/services"
)

// SecretSource resolves secrets from an ARN variable with a plain env fallback
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetOptionalSecret(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) string
}

// CORSConfig is read from the CORS_* variables
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// Config holds everything the API needs to start
type Config struct {
	Stage   string
	Port    string
	GinMode string

	InvoiceStore       string
	DatabaseURL        string
	FirestoreProjectID string

	GenerationProvider string
	GenerationModel    string
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	GeminiAPIKey       string

	EnhanceRatePerMinute float64
	EnhanceBurst         int
	EnhanceConcurrency   int
	SessionRatePerMinute float64
	SessionBurst         int
	SessionTTL           time.Duration
	MaxSessions          int
	MaxItemsPerSection   int

	// TrustedProxies lists the peers whose X-Forwarded-For is believed.
	// Empty means the TCP peer address is always the client.
	TrustedProxies  []string
	TrustedPlatform string

	PublicSiteURL string
	BusinessName  string

	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string

	LeadQueueURL  string
	CRMWebhookURL string
	CRMBoardID    string
	CRMAPIToken   string

	Attachments       awsclient.S3Config
	AttachmentsPrefix string

	CORS CORSConfig
}

// IsDevelopment reports whether gin runs outside release mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode != "release"
}

// LoadConfig reads the environment, resolving secrets through AWS Secrets Manager.
func LoadConfig(ctx context.Context) (*Config, error) {
	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets client: %w", err)
	}
	return LoadConfigWithSecrets(ctx, secrets)
}

// LoadConfigWithSecrets is LoadConfig with an explicit secret source.
func LoadConfigWithSecrets(ctx context.Context, secrets SecretSource) (*Config, error) {
	stage := helpers.GetEnvOrDefault("STAGE", helpers.StageLocal)
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	cfg := &Config{
		Stage:   stage,
		Port:    helpers.GetEnvOrDefault("PORT", "8000"),
		GinMode: helpers.GetEnvOrDefault("GIN_MODE", "debug"),

		InvoiceStore:       strings.ToLower(helpers.GetEnvOrDefault("INVOICE_STORE", defaultStore(stage))),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),

		GenerationProvider: strings.ToLower(helpers.GetEnvOrDefault("GENERATION_PROVIDER", constants.ProviderOpenAI)),
		GenerationModel:    os.Getenv("GENERATION_MODEL"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),

		EnhanceRatePerMinute: float64(helpers.GetEnvInt("ENHANCE_RATE_PER_MINUTE", 20)),
		EnhanceBurst:         helpers.GetEnvInt("ENHANCE_BURST", 5),
		EnhanceConcurrency:   helpers.GetEnvInt("ENHANCE_CONCURRENCY", services.DefaultEnhanceConcurrency),
		SessionRatePerMinute: float64(helpers.GetEnvInt("SESSION_RATE_PER_MINUTE", 10)),
		SessionBurst:         helpers.GetEnvInt("SESSION_BURST", 5),
		SessionTTL:           helpers.GetEnvDuration("QUOTE_SESSION_TTL", 2*time.Hour),
		MaxSessions:          helpers.GetEnvInt("QUOTE_SESSION_MAX", quote.DefaultMaxSessions),
		MaxItemsPerSection:   helpers.GetEnvInt("QUOTE_SESSION_MAX_ITEMS", quote.DefaultMaxItemsPerSection),

		TrustedProxies:  helpers.SplitCSV(os.Getenv("TRUSTED_PROXIES")),
		TrustedPlatform: os.Getenv("TRUSTED_PLATFORM"),

		PublicSiteURL: strings.TrimRight(os.Getenv("PUBLIC_SITE_URL"), "/"),
		BusinessName:  helpers.GetEnvOrDefault("BUSINESS_NAME", "Handyline Home Services"),

		EmailFrom:     helpers.GetEnvOrDefault("EMAIL_FROM", "quotes@handyline.ca"),
		EmailFromName: helpers.GetEnvOrDefault("EMAIL_FROM_NAME", "Handyline"),

		LeadQueueURL:  os.Getenv("LEAD_QUEUE_URL"),
		CRMWebhookURL: os.Getenv("CRM_WEBHOOK_URL"),
		CRMBoardID:    os.Getenv("CRM_BOARD_ID"),

		Attachments: awsclient.S3Config{
			Bucket:          os.Getenv("ATTACHMENTS_BUCKET"),
			Region:          os.Getenv("ATTACHMENTS_REGION"),
			Endpoint:        os.Getenv("ATTACHMENTS_ENDPOINT"),
			AccessKeyID:     os.Getenv("ATTACHMENTS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("ATTACHMENTS_SECRET_ACCESS_KEY"),
			PublicBaseURL:   os.Getenv("ATTACHMENTS_PUBLIC_BASE_URL"),
		},
		AttachmentsPrefix: os.Getenv("ATTACHMENTS_PREFIX"),

		CORS: loadCORSConfig(),
	}

	var err error
	switch cfg.InvoiceStore {
	case constants.StorePostgres:
		cfg.DatabaseURL, err = secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres invoice store: %w", err)
		}
	case constants.StoreFirestore:
		if cfg.FirestoreProjectID == "" {
			return nil, errors.New("FIRESTORE_PROJECT_ID is required for the firestore invoice store")
		}
	case constants.StoreMemory:
		if stage == helpers.StageProd {
			return nil, errors.New("the memory invoice store cannot be used in prod")
		}
	default:
		return nil, fmt.Errorf("invalid INVOICE_STORE %q", cfg.InvoiceStore)
	}

	switch cfg.GenerationProvider {
	case constants.ProviderOpenAI:
		cfg.OpenAIAPIKey, err = secrets.GetSecretString(ctx, "OPENAI_API_KEY_ARN", "OPENAI_API_KEY")
	case constants.ProviderGemini:
		cfg.GeminiAPIKey, err = secrets.GetSecretString(ctx, "GEMINI_API_KEY_ARN", "GEMINI_API_KEY")
	default:
		return nil, fmt.Errorf("invalid GENERATION_PROVIDER %q", cfg.GenerationProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s API key: %w", cfg.GenerationProvider, err)
	}

	cfg.ResendAPIKey = secrets.GetOptionalSecret(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	cfg.CRMAPIToken = secrets.GetOptionalSecret(ctx, "CRM_API_TOKEN_ARN", "CRM_API_TOKEN")

	if cfg.EnhanceRatePerMinute <= 0 || cfg.EnhanceBurst <= 0 {
		return nil, errors.New("ENHANCE_RATE_PER_MINUTE and ENHANCE_BURST must be positive")
	}
	if cfg.SessionRatePerMinute <= 0 || cfg.SessionBurst <= 0 {
		return nil, errors.New("SESSION_RATE_PER_MINUTE and SESSION_BURST must be positive")
	}
	if cfg.MaxSessions <= 0 || cfg.MaxItemsPerSection <= 0 {
		return nil, errors.New("QUOTE_SESSION_MAX and QUOTE_SESSION_MAX_ITEMS must be positive")
	}
	if err := validateProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateProxies accepts the same IP and CIDR forms as gin's SetTrustedProxies.
func validateProxies(proxies []string) error {
	for _, p := range proxies {
		if strings.Contains(p, "/") {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", p, err)
			}
			continue
		}
		if net.ParseIP(p) == nil {
			return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", p)
		}
	}
	return nil
}

func defaultStore(stage string) string {
	if stage == helpers.StageLocal {
		return constants.StoreMemory
	}
	return constants.StorePostgres
}

func loadCORSConfig() CORSConfig {
	cfg := CORSConfig{
		AllowedOrigins:   helpers.SplitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AllowedMethods:   helpers.SplitCSV(os.Getenv("CORS_ALLOWED_METHODS")),
		AllowedHeaders:   helpers.SplitCSV(os.Getenv("CORS_ALLOWED_HEADERS")),
		ExposedHeaders:   helpers.SplitCSV(os.Getenv("CORS_EXPOSED_HEADERS")),
		AllowCredentials: helpers.GetEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           helpers.GetEnvDuration("CORS_MAX_AGE", 12*time.Hour),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	}
	if len(cfg.ExposedHeaders) == 0 {
		cfg.ExposedHeaders = []string{
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"Retry-After",
			"X-Correlation-ID",
		}
	}
	return cfg
}
