// Package sweeper runs the scheduled maintenance sweeps, either as a Lambda
// triggered by an EventBridge schedule or as a local ticker loop.
package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/business"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Application holds the dependencies of the sweeper
type Application struct {
	sweeps interfaces.SweepService
	logger *zap.Logger
}

// NewApplication creates the sweeper application
func NewApplication(sweeps interfaces.SweepService) *Application {
	return &Application{sweeps: sweeps, logger: logger.Log}
}

// HandleRequest is the Lambda handler for scheduled events.
func (app *Application) HandleRequest(ctx context.Context, event events.CloudWatchEvent) (business.SweepResult, error) {
	app.logger.Info("sweep triggered",
		zap.String("event_id", event.ID),
		zap.String("source", event.Source),
		zap.Time("scheduled_at", event.Time))

	result, err := app.runOnce(ctx)
	if err != nil {
		return result, fmt.Errorf("HandleRequest: %w", err)
	}
	return result, nil
}

// RunLoop sweeps immediately and then every interval until ctx is cancelled.
// Failures are logged and the loop keeps going.
func (app *Application) RunLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.logger.Info("sweeper loop started", zap.Duration("interval", interval))
	for {
		if _, err := app.runOnce(ctx); err != nil && ctx.Err() == nil {
			app.logger.Error("sweep run failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			app.logger.Info("sweeper loop stopped")
			return
		case <-ticker.C:
		}
	}
}

func (app *Application) runOnce(ctx context.Context) (business.SweepResult, error) {
	start := time.Now()
	result, err := app.sweeps.RunAll(ctx)

	fields := []zap.Field{
		zap.Bool("skipped", result.Skipped),
		zap.Int64("expired_claims", result.ExpiredClaims),
		zap.Int64("deactivated_discounts", result.DeactivatedDiscounts),
		zap.Int("grace_periods_started", result.GracePeriodsStarted),
		zap.Int("verifications_expired", result.VerificationsExpired),
		zap.Int("reverification_reminded", result.ReverificationReminded),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		app.logger.Warn("sweep finished with errors", append(fields, zap.Error(err))...)
		return result, err
	}
	app.logger.Info("sweep finished", fields...)
	return result, nil
}
