package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusperks/campusperks-api/apps/sweeper"
	awsclient "github.com/campusperks/campusperks-api/libs/go/client/aws"
	"github.com/campusperks/campusperks-api/libs/go/client/cache"
	"github.com/campusperks/campusperks-api/libs/go/client/queue"
	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/services"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file for local development
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
	logger.Info("Cold start: initializing sweeper", zap.String("stage", stage))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	deployed := helpers.IsDeployedStage(stage)

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := secretsClient.ResolveDatabaseURL(ctx, deployed)
	if err != nil {
		logger.Fatal("Failed to resolve database URL", zap.Error(err))
	}

	// The pool persists across warm invocations
	connPool, err := helpers.NewDatabasePool(ctx, dsn, helpers.PoolConfig{
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 15 * time.Minute,
	})
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	queries := db.New(connPool)

	var locker interfaces.Locker = cache.NoopCache{}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, redisURL)
		if err != nil {
			logger.Fatal("Unable to connect to redis for the sweep lock", zap.Error(err))
		}
		locker = redisClient
	} else if deployed {
		logger.Warn("REDIS_URL not set on a deployed stage, sweeps run without a distributed lock")
	}

	var jobQueue interfaces.JobQueue
	if queueURL := os.Getenv("MAIL_QUEUE_URL"); queueURL != "" {
		sqsClient, err := queue.NewSQSClient(ctx, os.Getenv("SQS_ENDPOINT"))
		if err != nil {
			logger.Fatal("Unable to create SQS client", zap.Error(err))
		}
		jobQueue = queue.NewSQSJobQueue(sqsClient, queueURL)
	} else {
		resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		if err != nil {
			logger.Warn("Resend API key not found, reminder emails will fail", zap.Error(err))
		}
		emailService := services.NewEmailService(resendAPIKey, os.Getenv("EMAIL_FROM_ADDRESS"), os.Getenv("EMAIL_FROM_NAME"), logger.Log)
		jobQueue = queue.NewLocalJobQueue(emailService, queue.DefaultRetryPolicy)
	}

	opts := []services.Option{
		services.WithLocation(helpers.LoadLocationOrUTC(os.Getenv("PLATFORM_TIMEZONE"))),
	}
	txRunner := helpers.NewPoolTxRunner(connPool, constants.MaxTransactionRetries)
	auditService := services.NewAuditService(queries)
	notificationService := services.NewNotificationService(jobQueue)
	fraudService := services.NewFraudService(queries, auditService, opts...)
	verificationService := services.NewVerificationService(queries, txRunner, fraudService, auditService, notificationService, opts...)

	app := sweeper.NewApplication(services.NewSweepService(queries, verificationService, locker, opts...))

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(app.HandleRequest)
		return
	}

	interval, err := time.ParseDuration(os.Getenv("SWEEP_INTERVAL"))
	if err != nil || interval <= 0 {
		interval = 5 * time.Minute
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	app.RunLoop(runCtx, interval)

	if local, ok := jobQueue.(*queue.LocalJobQueue); ok {
		local.Wait()
	}
	connPool.Close()
}
