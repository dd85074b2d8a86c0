package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	apiconstants "github.com/campusperks/campusperks-api/apps/api/constants"
	"github.com/campusperks/campusperks-api/apps/api/handlers"
	"github.com/campusperks/campusperks-api/libs/go/client/auth"
	awsclient "github.com/campusperks/campusperks-api/libs/go/client/aws"
	"github.com/campusperks/campusperks-api/libs/go/client/cache"
	"github.com/campusperks/campusperks-api/libs/go/client/queue"
	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/middleware"
	"github.com/campusperks/campusperks-api/libs/go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	discountHandler     *handlers.DiscountHandler
	claimHandler        *handlers.ClaimHandler
	approvalHandler     *handlers.ApprovalHandler
	verificationHandler *handlers.VerificationHandler
	fraudHandler        *handlers.FraudHandler
	healthHandler       *handlers.HealthHandler

	// Database
	dbPool *pgxpool.Pool

	// Clients
	authClient  *auth.AuthClient
	redisClient *cache.RedisClient
	localQueue  *queue.LocalJobQueue
	rateLimiter *middleware.RateLimiter
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageLocal, helpers.StageDev, helpers.StageProd)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers", zap.String("stage", stage))

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

	dbPool, err = helpers.NewDatabasePool(ctx, dsn, helpers.DefaultPoolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	queries := db.New(dbPool)

	// Auth: a JWKS endpoint wins over a shared secret when both are configured
	jwtSecret, err := secretsClient.GetSecretString(ctx, "JWT_SECRET_ARN", "JWT_SECRET")
	if err != nil && os.Getenv("JWT_JWKS_URL") == "" {
		logger.Fatal("Failed to get JWT secret", zap.Error(err))
	}
	authClient, err = auth.NewAuthClient(auth.Config{
		Secret:   jwtSecret,
		JWKSURL:  os.Getenv("JWT_JWKS_URL"),
		Issuer:   os.Getenv("JWT_ISSUER"),
		Audience: os.Getenv("JWT_AUDIENCE"),
	})
	if err != nil {
		logger.Fatal("Unable to create auth client", zap.Error(err))
	}

	var cacheBackend interfaces.Cache = cache.NoopCache{}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, redisURL)
		if err != nil {
			logger.Warn("Redis unavailable, recommendations will not be cached", zap.Error(err))
		} else {
			cacheBackend = redisClient
		}
	}

	jobQueue := initializeJobQueue(ctx, secretsClient, deployed)

	opts := []services.Option{
		services.WithLocation(helpers.LoadLocationOrUTC(os.Getenv("PLATFORM_TIMEZONE"))),
	}
	txRunner := helpers.NewPoolTxRunner(dbPool, constants.MaxTransactionRetries)

	auditService := services.NewAuditService(queries)
	notificationService := services.NewNotificationService(jobQueue)
	fraudService := services.NewFraudService(queries, auditService, opts...)
	eligibilityService := services.NewEligibilityService(queries, opts...)

	handlerFactory := handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		DiscountService:       services.NewDiscountService(queries, auditService),
		EligibilityService:    eligibilityService,
		ClaimService:          services.NewClaimService(queries, txRunner, eligibilityService, opts...),
		RedemptionService:     services.NewRedemptionService(queries, txRunner, fraudService, auditService, notificationService, opts...),
		ApprovalService:       services.NewApprovalService(queries, auditService, notificationService),
		RecommendationService: services.NewRecommendationService(queries, cacheBackend, opts...),
		VerificationService:   services.NewVerificationService(queries, txRunner, fraudService, auditService, notificationService, opts...),
		FraudService:          fraudService,
		HealthDB:              dbPool,
	})

	discountHandler = handlerFactory.NewDiscountHandler()
	claimHandler = handlerFactory.NewClaimHandler()
	approvalHandler = handlerFactory.NewApprovalHandler()
	verificationHandler = handlerFactory.NewVerificationHandler()
	fraudHandler = handlerFactory.NewFraudHandler()
	healthHandler = handlerFactory.NewHealthHandler()

	logger.Info("Handlers initialized", zap.Bool("redis_cache", redisClient != nil))
}

// initializeJobQueue publishes to SQS when a mail queue is configured and
// otherwise delivers in-process through Resend.
func initializeJobQueue(ctx context.Context, secretsClient *awsclient.SecretsManagerClient, deployed bool) interfaces.JobQueue {
	if queueURL := os.Getenv("MAIL_QUEUE_URL"); queueURL != "" {
		sqsClient, err := queue.NewSQSClient(ctx, os.Getenv("SQS_ENDPOINT"))
		if err != nil {
			logger.Fatal("Unable to create SQS client", zap.Error(err))
		}
		logger.Info("Email jobs will be published to SQS", zap.String("queue_url", queueURL))
		return queue.NewSQSJobQueue(sqsClient, queueURL)
	}
	if deployed {
		logger.Warn("MAIL_QUEUE_URL not set on a deployed stage, delivering email in-process")
	}

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Warn("Resend API key not found, email delivery will fail", zap.Error(err))
	}
	emailService := services.NewEmailService(
		resendAPIKey,
		getEnvOrDefault("EMAIL_FROM_ADDRESS", "no-reply@campusperks.app"),
		getEnvOrDefault("EMAIL_FROM_NAME", "Campus Perks"),
		logger.Log,
	)
	localQueue = queue.NewLocalJobQueue(emailService, queue.DefaultRetryPolicy)
	return localQueue
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	if rateLimiter == nil {
		rateLimiter = middleware.NewRateLimiter(
			getEnvInt("RATE_LIMIT_RPS", 20),
			getEnvInt("RATE_LIMIT_BURST", 40),
		)
	}
	router.Use(rateLimiter.Middleware())

	// Add enhanced logging in development mode
	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))

	// Add basic request logging for production
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	student := authClient.RequireRoles(constants.StudentRole)
	partner := authClient.RequireRoles(constants.PartnerRole, constants.AdminRole)
	admin := authClient.RequireRoles(constants.AdminRole)

	v1 := router.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(authClient.EnsureValidToken())
	{
		discounts := protected.Group("/discounts")
		{
			discounts.GET("", middleware.ValidateQueryParams(middleware.ListDiscountsQueryValidation), discountHandler.ListDiscounts)
			discounts.GET("/recommended", student, middleware.ValidateQueryParams(middleware.LocationQueryValidation), discountHandler.GetRecommendations)
			discounts.GET("/slug/:slug", discountHandler.GetDiscountBySlug)
			discounts.GET("/:discount_id", discountHandler.GetDiscount)
			discounts.POST("/:discount_id/click", discountHandler.TrackClick)
			discounts.GET("/:discount_id/eligibility", student, middleware.ValidateQueryParams(middleware.LocationQueryValidation), discountHandler.CheckEligibility)
			discounts.POST("/:discount_id/claim", student, middleware.ValidateInput(middleware.ClaimDiscountValidation), claimHandler.ClaimDiscount)

			claims := discounts.Group("/claims")
			{
				claims.GET("/me", student, middleware.ValidateQueryParams(middleware.PaginationQueryValidation), claimHandler.ListMyClaims)
				claims.GET("/:code", claimHandler.GetClaimByCode)
				claims.POST("/:code/redeem", partner, middleware.ValidateInput(middleware.RedeemClaimValidation), claimHandler.RedeemClaim)
			}

			partners := discounts.Group("/partner")
			partners.Use(partner)
			{
				partners.POST("", middleware.ValidateInput(middleware.CreateDiscountValidation), discountHandler.CreateDiscount)
				partners.GET("/mine", middleware.ValidateQueryParams(middleware.PaginationQueryValidation), discountHandler.ListPartnerDiscounts)
				partners.PUT("/:discount_id", middleware.ValidateInput(middleware.UpdateDiscountValidation), discountHandler.UpdateDiscount)
				partners.DELETE("/:discount_id", discountHandler.DeleteDiscount)
				partners.GET("/:discount_id/claims", middleware.ValidateQueryParams(middleware.PaginationQueryValidation), discountHandler.ListDiscountClaims)
			}

			admins := discounts.Group("/admin")
			admins.Use(admin)
			{
				admins.GET("/pending", middleware.ValidateQueryParams(middleware.PaginationQueryValidation), approvalHandler.ListPendingDiscounts)
				admins.GET("/stats", discountHandler.GetStats)
				admins.POST("/:discount_id/approve", approvalHandler.ApproveDiscount)
				admins.POST("/:discount_id/reject", middleware.ValidateInput(middleware.RejectDiscountValidation), approvalHandler.RejectDiscount)
			}
		}

		verification := protected.Group("/verification")
		{
			verification.POST("/email/start", student, middleware.ValidateInput(middleware.StartEmailVerificationValidation), verificationHandler.StartEmailVerification)
			verification.POST("/email/confirm", student, middleware.ValidateInput(middleware.ConfirmEmailVerificationValidation), verificationHandler.ConfirmEmailVerification)
			verification.POST("/document", student, middleware.ValidateInput(middleware.SubmitDocumentValidation), verificationHandler.SubmitDocument)
			verification.GET("/status", student, verificationHandler.GetStatus)

			verificationAdmin := verification.Group("/admin")
			verificationAdmin.Use(admin)
			{
				verificationAdmin.GET("/pending", middleware.ValidateQueryParams(middleware.PaginationQueryValidation), verificationHandler.ListPendingReviews)
				verificationAdmin.POST("/:verification_id/review", middleware.ValidateInput(middleware.ReviewVerificationValidation), verificationHandler.ReviewVerification)
			}
		}

		fraudAlerts := protected.Group("/fraud-alerts")
		fraudAlerts.Use(admin)
		{
			fraudAlerts.GET("", middleware.ValidateQueryParams(middleware.FraudAlertsQueryValidation), fraudHandler.ListAlerts)
			fraudAlerts.POST("/:alert_id/resolve", fraudHandler.ResolveAlert)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Error:         apiconstants.RouteNotFound,
			CorrelationID: middleware.GetCorrelationID(c),
		})
	})
}

// Shutdown drains in-process email deliveries and releases pooled resources.
func Shutdown() {
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if localQueue != nil {
		localQueue.Wait()
	}
	if authClient != nil {
		authClient.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close redis client", zap.Error(err))
		}
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnvList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnvList("CORS_ALLOWED_HEADERS", []string{
		"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader,
	})
	// Default exposed headers including rate limit headers
	corsConfig.ExposeHeaders = splitEnvList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		middleware.CorrelationIDHeader,
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitEnvList(key string, defaults []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaults
	}
	values := strings.Split(raw, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
