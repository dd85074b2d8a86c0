package main

import (
	"context"
	"log"
	"os"

	mailworker "github.com/campusperks/campusperks-api/apps/mail-worker"
	awsclient "github.com/campusperks/campusperks-api/libs/go/client/aws"
	"github.com/campusperks/campusperks-api/libs/go/client/queue"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/services"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Cold start: initializing mail worker", zap.String("stage", stage))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Fatal("Failed to get Resend API key", zap.Error(err))
	}

	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		logger.Fatal("EMAIL_FROM_ADDRESS environment variable is required")
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Campus Perks"
	}

	emailService := services.NewEmailService(resendAPIKey, fromEmail, fromName, logger.Log)
	app := mailworker.NewApplication(emailService, queue.DefaultRetryPolicy)

	lambda.Start(app.HandleSQSEvent)
}
