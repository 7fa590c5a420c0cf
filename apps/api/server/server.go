package server

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/apps/api/handlers"
	"github.com/handyline/handyline-api/libs/go/catalog"
	awsclient "github.com/handyline/handyline-api/libs/go/client/aws"
	"github.com/handyline/handyline-api/libs/go/client/crm"
	"github.com/handyline/handyline-api/libs/go/client/generation"
	httpClient "github.com/handyline/handyline-api/libs/go/client/http"
	"github.com/handyline/handyline-api/libs/go/constants"
	"github.com/handyline/handyline-api/libs/go/db"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/middleware"
	"github.com/handyline/handyline-api/libs/go/quote"
	"github.com/handyline/handyline-api/libs/go/render"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server owns the API dependencies and their lifecycle
type Server struct {
	config   *Config
	registry *prometheus.Registry

	sessions       *quote.SessionStore
	sessionService *services.QuoteSessionService
	invoiceService *services.InvoiceService
	leadService    *services.LeadService
	enhanceLimiter *middleware.RateLimiter
	sessionLimiter *middleware.RateLimiter
	closers        []func()

	healthHandler       *handlers.HealthHandler
	catalogHandler      *handlers.CatalogHandler
	orderHandler        *handlers.OrderHandler
	leadHandler         *handlers.LeadHandler
	attachmentHandler   *handlers.AttachmentHandler
	enhancementHandler  *handlers.EnhancementHandler
	quoteSessionHandler *handlers.QuoteSessionHandler
	invoiceHandler      *handlers.InvoiceHandler
}

// Dependencies lets callers replace the external collaborators. Nil fields are
// built from Config.
type Dependencies struct {
	Store     interfaces.InvoiceStore
	Generator interfaces.TextGenerator
	CRM       interfaces.LeadSender
	Publisher interfaces.QueuePublisher
	Uploader  interfaces.ObjectUploader
	Notifier  interfaces.QuoteNotifier
	Catalog   *catalog.Catalog
}

// New builds the server from configuration.
func New(ctx context.Context, cfg *Config) (*Server, error) {
	return NewWithDependencies(ctx, cfg, Dependencies{})
}

// NewWithDependencies builds the server, constructing only the missing dependencies.
func NewWithDependencies(ctx context.Context, cfg *Config, deps Dependencies) (*Server, error) {
	s := &Server{config: cfg, registry: prometheus.NewRegistry()}
	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := s.InitializeHandlers(ctx, deps); err != nil {
		s.Shutdown(ctx)
		return nil, err
	}
	return s, nil
}

// InitializeHandlers wires clients, services and handlers.
func (s *Server) InitializeHandlers(ctx context.Context, deps Dependencies) error {
	cfg := s.config
	clientMetrics := httpClient.NewPrometheusCollector(s.registry)

	var err error
	if deps.Store == nil {
		if deps.Store, err = s.buildStore(ctx); err != nil {
			return err
		}
	}
	if deps.Generator == nil {
		deps.Generator = buildGenerator(cfg, clientMetrics)
	}
	if deps.CRM == nil && cfg.CRMWebhookURL != "" {
		deps.CRM = crm.NewClient(httpClient.NewHTTPClient(
			httpClient.WithBaseURL(cfg.CRMWebhookURL),
			httpClient.WithName("crm"),
			httpClient.WithMetricsCollector(clientMetrics),
		), cfg.CRMBoardID, cfg.CRMAPIToken)
	}
	if deps.Publisher == nil && cfg.LeadQueueURL != "" {
		sqsClient, err := awsclient.NewSQSClient(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize SQS client: %w", err)
		}
		deps.Publisher = awsclient.NewSQSPublisher(sqsClient, cfg.LeadQueueURL)
	}
	if deps.Uploader == nil && cfg.Attachments.Bucket != "" {
		s3Client, err := awsclient.NewS3Client(ctx, cfg.Attachments)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		deps.Uploader = awsclient.NewS3Uploader(s3Client, cfg.Attachments.Bucket, cfg.Attachments.PublicBaseURL)
	}
	if deps.Notifier == nil {
		deps.Notifier = services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName, logger.L())
	}
	if deps.Catalog == nil {
		if deps.Catalog, err = catalog.Default(); err != nil {
			return fmt.Errorf("failed to load price catalog: %w", err)
		}
	}

	enhancer := services.NewEnhancementService(deps.Generator,
		services.WithEnhancementMetrics(services.NewEnhancementMetrics(s.registry)))
	s.invoiceService = services.NewInvoiceService(deps.Store, deps.Notifier, services.InvoiceServiceConfig{
		SiteURL:      cfg.PublicSiteURL,
		BusinessName: cfg.BusinessName,
	})
	renderService := services.NewRenderService(deps.Store, render.Options{
		BusinessName:        cfg.BusinessName,
		PaymentInstructions: render.DefaultPaymentInstructions,
	}, cfg.PublicSiteURL)
	s.sessions = quote.NewSessionStore(cfg.SessionTTL, cfg.SessionTTL/4,
		quote.WithMaxSessions(cfg.MaxSessions),
		quote.WithMaxItemsPerSection(cfg.MaxItemsPerSection),
	)
	s.sessionService = services.NewQuoteSessionService(s.sessions, enhancer, s.invoiceService, cfg.EnhanceConcurrency)
	s.leadService = services.NewLeadService(deps.CRM, deps.Publisher, services.DefaultLeadDispatchTimeout)
	orderService := services.NewOrderService(deps.Catalog, s.leadService)

	s.healthHandler = handlers.NewHealthHandler()
	s.catalogHandler = handlers.NewCatalogHandler(deps.Catalog)
	s.orderHandler = handlers.NewOrderHandler(orderService)
	s.leadHandler = handlers.NewLeadHandler(s.leadService)
	s.enhancementHandler = handlers.NewEnhancementHandler(enhancer)
	s.quoteSessionHandler = handlers.NewQuoteSessionHandler(s.sessionService)
	s.invoiceHandler = handlers.NewInvoiceHandler(s.invoiceService, renderService)
	if deps.Uploader != nil {
		s.attachmentHandler = handlers.NewAttachmentHandler(services.NewAttachmentService(deps.Uploader, cfg.AttachmentsPrefix))
	} else {
		logger.Warn("ATTACHMENTS_BUCKET not set, attachment uploads are disabled")
		s.attachmentHandler = handlers.NewAttachmentHandler(nil)
	}

	s.enhanceLimiter = middleware.NewRateLimiter(cfg.EnhanceRatePerMinute, cfg.EnhanceBurst)
	s.sessionLimiter = middleware.NewRateLimiter(cfg.SessionRatePerMinute, cfg.SessionBurst)

	logger.Info("Handlers initialized",
		zap.String("stage", cfg.Stage),
		zap.String("invoice_store", cfg.InvoiceStore),
		zap.String("generation_provider", cfg.GenerationProvider),
		zap.Bool("lead_queue", deps.Publisher != nil),
		zap.Bool("crm", deps.CRM != nil),
	)
	return nil
}

func (s *Server) buildStore(ctx context.Context) (interfaces.InvoiceStore, error) {
	cfg := s.config
	switch cfg.InvoiceStore {
	case constants.StorePostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		if err := db.InitSchema(ctx, pool); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return db.NewPostgresInvoiceStore(pool), nil
	case constants.StoreFirestore:
		client, err := db.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to firestore: %w", err)
		}
		s.closers = append(s.closers, func() { _ = client.Close() })
		return db.NewFirestoreInvoiceStore(client), nil
	default:
		return db.NewMemoryInvoiceStore(), nil
	}
}

func buildGenerator(cfg *Config, metrics httpClient.MetricsCollector) interfaces.TextGenerator {
	if cfg.GenerationProvider == constants.ProviderGemini {
		client := httpClient.NewHTTPClient(
			httpClient.WithBaseURL(generation.DefaultGeminiBaseURL),
			httpClient.WithName("gemini"),
			httpClient.WithTimeout(services.EnhancementTimeout),
			httpClient.WithMetricsCollector(metrics),
		)
		return generation.NewGeminiGenerator(client, cfg.GeminiAPIKey, cfg.GenerationModel)
	}

	opts := []generation.OpenAIOption{generation.WithOpenAIModel(cfg.GenerationModel)}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, generation.WithOpenAIBaseURL(cfg.OpenAIBaseURL))
	}
	return generation.NewOpenAIGenerator(cfg.OpenAIAPIKey, opts...)
}

// InitializeRoutes registers middleware and every route on router.
func (s *Server) InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS(s.config.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.EnhancedLoggingMiddleware(s.config.IsDevelopment()))
	if !s.config.IsDevelopment() {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	router.GET("/health", s.healthHandler.Health)
	// Health for raw lambda url check
	router.GET("/:stage/health", s.healthHandler.Health)

	limited := s.enhanceLimiter.Middleware()
	sessionLimited := s.sessionLimiter.Middleware()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", s.catalogHandler.ListCatalog)

		orders := v1.Group("/orders")
		{
			orders.POST("/estimate", middleware.ValidateInput(middleware.EstimateValidation), s.orderHandler.Estimate)
			orders.POST("", middleware.ValidateInput(middleware.CreateOrderValidation), s.orderHandler.CreateOrder)
		}

		v1.POST("/leads", middleware.ValidateInput(middleware.CreateLeadValidation), s.leadHandler.CreateLead)
		v1.POST("/attachments", s.attachmentHandler.UploadAttachment)
		v1.POST("/line-items/enhance", limited, middleware.ValidateInput(middleware.EnhanceLineItemValidation), s.enhancementHandler.EnhanceLineItem)

		sessions := v1.Group("/quote-sessions")
		{
			sessions.POST("", sessionLimited, s.quoteSessionHandler.CreateSession)
			sessions.GET("/:session_id", s.quoteSessionHandler.GetSession)
			sessions.PATCH("/:session_id/sections/:section", s.quoteSessionHandler.SetSectionState)
			sessions.POST("/:session_id/sections/:section/items", sessionLimited, s.quoteSessionHandler.AddItem)
			sessions.PUT("/:session_id/sections/:section/items/:item_id", s.quoteSessionHandler.UpdateItem)
			sessions.DELETE("/:session_id/sections/:section/items/:item_id", s.quoteSessionHandler.RemoveItem)
			sessions.POST("/:session_id/sections/:section/items/:item_id/enhance", limited, s.quoteSessionHandler.EnhanceItem)
			sessions.POST("/:session_id/enhance", limited, s.quoteSessionHandler.EnhanceAll)
			sessions.POST("/:session_id/submit", s.quoteSessionHandler.SubmitSession)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.POST("", s.invoiceHandler.CreateInvoice)
			invoices.GET("/:invoice_id", s.invoiceHandler.GetInvoice)
			invoices.GET("/:invoice_id/quote", middleware.ValidateQueryParams(middleware.QuoteFormatValidation), s.invoiceHandler.GetQuote)
			invoices.GET("/:invoice_id/pdf", s.invoiceHandler.GetPDF)
		}
	}
}

// Shutdown stops background work and releases connections.
func (s *Server) Shutdown(ctx context.Context) {
	if s.sessionService != nil {
		s.sessionService.Shutdown(ctx)
	}
	if s.leadService != nil {
		s.leadService.Wait()
	}
	if s.invoiceService != nil {
		s.invoiceService.Wait()
	}
	if s.sessions != nil {
		s.sessions.Close()
	}
	if s.enhanceLimiter != nil {
		s.enhanceLimiter.Stop()
	}
	if s.sessionLimiter != nil {
		s.sessionLimiter.Stop()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Handler builds a gin engine with all routes registered.
func (s *Server) Handler() *gin.Engine {
	gin.SetMode(s.config.GinMode)
	router := gin.New()
	configureClientIP(router, s.config)
	router.Use(gin.Recovery())
	s.InitializeRoutes(router)
	return router
}

// configureClientIP decides which peers may set X-Forwarded-For. With no
// trusted proxies the TCP peer address is the client, so rate limit keys
// cannot be chosen by the caller.
func configureClientIP(router *gin.Engine, cfg *Config) {
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, forwarding headers are ignored", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.TrustedPlatform = cfg.TrustedPlatform
}

func configureCORS(cfg CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = cfg.AllowedMethods
	corsConfig.AllowHeaders = cfg.AllowedHeaders
	corsConfig.ExposeHeaders = cfg.ExposedHeaders
	corsConfig.AllowCredentials = cfg.AllowCredentials
	corsConfig.MaxAge = cfg.MaxAge
	return cors.New(corsConfig)
}
