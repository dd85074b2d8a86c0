package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"go.uber.org/zap"
)

// SecretsAPI is the part of the Secrets Manager client used here
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from AWS Secrets Manager with an
// environment variable fallback for local development.
type SecretsManagerClient struct {
	svc    SecretsAPI
	getenv func(string) string
	logger *zap.Logger
}

// RDSSecret is the JSON document RDS stores for managed database credentials
type RDSSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewSecretsManagerClient uses the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg), os.Getenv), nil
}

// NewSecretsManagerClientWithAPI wraps an existing client and env lookup
func NewSecretsManagerClientWithAPI(svc SecretsAPI, getenv func(string) string) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc, getenv: getenv, logger: logger.Log}
}

// GetSecretString returns the secret named by the ARN in secretArnEnvVar. A
// single-key JSON secret is unwrapped to its value. When the ARN is unset or
// the fetch fails, the value of fallbackEnvVar is used.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar, fallbackEnvVar string) (string, error) {
	if secretArn := c.getenv(secretArnEnvVar); secretArn != "" {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			var single map[string]string
			if json.Unmarshal([]byte(value), &single) == nil && len(single) == 1 {
				for _, v := range single {
					return v, nil
				}
			}
			return value, nil
		}
		c.logger.Warn("failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arn_env_var", secretArnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err))
	}

	if value := c.getenv(fallbackEnvVar); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON unmarshals the JSON secret named by the ARN in
// secretArnEnvVar into target. There is no env fallback.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := c.getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("%s is not set", secretArnEnvVar)
	}
	value, err := c.fetch(ctx, secretArn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("secret %s is not valid JSON: %w", secretArnEnvVar, err)
	}
	return nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	out, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret value: %w", err)
	}
	if aws.ToString(out.SecretString) == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return aws.ToString(out.SecretString), nil
}
