package aws

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// ResolveDatabaseURL builds the Postgres DSN for stage. Deployed stages read
// the managed RDS credentials from RDS_SECRET_ARN and combine them with
// DB_HOST and DB_NAME; the local stage uses DATABASE_URL.
func (c *SecretsManagerClient) ResolveDatabaseURL(ctx context.Context, deployed bool) (string, error) {
	if !deployed {
		dsn, err := c.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL is required for local development: %w", err)
		}
		return dsn, nil
	}

	dbHost := c.getenv("DB_HOST")
	dbName := c.getenv("DB_NAME")
	if dbHost == "" || dbName == "" {
		return "", errors.New("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	sslMode := c.getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "require"
	}

	var secret RDSSecret
	if err := c.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
	}
	if secret.Username == "" || secret.Password == "" {
		return "", errors.New("username or password not found in RDS secret")
	}

	c.logger.Info("constructed database URL from RDS secret",
		zap.String("host", dbHost),
		zap.String("database", dbName),
		zap.String("sslmode", sslMode))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		dbHost, dbName, sslMode), nil
}
