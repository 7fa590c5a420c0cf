package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	awsclient "github.com/handyline/handyline-api/libs/go/client/aws"
	"github.com/handyline/handyline-api/libs/go/client/crm"
	httpClient "github.com/handyline/handyline-api/libs/go/client/http"
	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/logger"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/business"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

type leadForwarder interface {
	Forward(ctx context.Context, lead business.Lead) error
}

// Application holds the lead processor dependencies
type Application struct {
	leads  leadForwarder
	logger *zap.Logger
}

func main() {
	logger.InitLogger(helpers.GetEnvOrDefault("STAGE", helpers.StageProd))
	defer func() { _ = logger.Sync() }()

	app, err := createApplication(context.Background())
	if err != nil {
		logger.Fatal("Failed to create application", zap.Error(err))
	}

	lambda.Start(app.handleSQSEvent)
}

func createApplication(ctx context.Context) (*Application, error) {
	webhookURL := os.Getenv("CRM_WEBHOOK_URL")
	if webhookURL == "" {
		return nil, fmt.Errorf("CRM_WEBHOOK_URL environment variable is required")
	}

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		log.Printf("Warning: secrets manager unavailable, reading CRM token from env: %v\n", err)
	}
	token := os.Getenv("CRM_API_TOKEN")
	if secrets != nil {
		token = secrets.GetOptionalSecret(ctx, "CRM_API_TOKEN_ARN", "CRM_API_TOKEN")
	}

	client := crm.NewClient(httpClient.NewHTTPClient(
		httpClient.WithBaseURL(webhookURL),
		httpClient.WithName("crm"),
	), os.Getenv("CRM_BOARD_ID"), token)

	return &Application{
		leads:  services.NewLeadService(client, nil, services.DefaultLeadDispatchTimeout),
		logger: logger.L(),
	}, nil
}

// handleSQSEvent forwards each queued lead. Only retryable failures are
// reported back so SQS redelivers them.
func (app *Application) handleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("Processing lead batch", zap.Int("message_count", len(event.Records)))

	var resp events.SQSEventResponse
	for _, record := range event.Records {
		if err := app.processRecord(ctx, record); err != nil {
			resp.BatchItemFailures = append(resp.BatchItemFailures,
				events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}

	app.logger.Info("Lead batch processed",
		zap.Int("message_count", len(event.Records)),
		zap.Int("failed", len(resp.BatchItemFailures)))
	return resp, nil
}

// processRecord returns an error only when the message should be redelivered.
func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) error {
	var lead business.Lead
	if err := json.Unmarshal([]byte(record.Body), &lead); err != nil {
		app.logger.Error("Dropping undecodable lead message",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		return nil
	}

	err := app.leads.Forward(ctx, lead)
	if err == nil {
		app.logger.Info("Lead forwarded to CRM",
			zap.String("message_id", record.MessageId),
			zap.String("lead_source", lead.Source))
		return nil
	}

	if !crm.IsRetryable(err) {
		app.logger.Error("CRM rejected lead, dropping",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		return nil
	}

	app.logger.Warn("Lead forward failed, will retry",
		zap.String("message_id", record.MessageId),
		zap.Error(err))
	return err
}
