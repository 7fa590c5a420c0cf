package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/handyline/handyline-api/libs/go/logger"
)

// SecretsAPI is the subset of the Secrets Manager API used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientFromAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientFromAPI wraps an existing API implementation.
func NewSecretsManagerClientFromAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString resolves a secret. When secretArnEnvVar names an ARN the
// value is read from Secrets Manager; otherwise, or when that read fails, the
// plain fallbackEnvVar is used. A secret stored as single-key JSON is unwrapped.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	log := logger.L().With(zap.String("arn_env_var", secretArnEnvVar), zap.String("fallback_env_var", fallbackEnvVar))

	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			log.Debug("Resolved secret from Secrets Manager")
			return value, nil
		}
		log.Warn("Failed to read secret from Secrets Manager, falling back to env var", zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		log.Debug("Resolved secret from environment")
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", err
	}
	raw := aws.ToString(result.SecretString)
	if raw == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return unwrapSecret(raw), nil
}

// unwrapSecret returns the only value of a single-key JSON object, or raw as is.
func unwrapSecret(raw string) string {
	var kv map[string]string
	if err := json.Unmarshal([]byte(raw), &kv); err != nil || len(kv) != 1 {
		return raw
	}
	for _, v := range kv {
		return v
	}
	return raw
}

// GetOptionalSecret is GetSecretString for settings that may be left unset.
// It returns an empty string when neither variable is configured.
func (c *SecretsManagerClient) GetOptionalSecret(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) string {
	if os.Getenv(secretArnEnvVar) == "" && os.Getenv(fallbackEnvVar) == "" {
		return ""
	}
	value, err := c.GetSecretString(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return ""
	}
	return value
}
