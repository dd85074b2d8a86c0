package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/metrics"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"go.uber.org/zap"
)

// SweepService runs the scheduled maintenance sweeps under a distributed lock.
type SweepService struct {
	queries      db.Querier
	verification *VerificationService
	locker       interfaces.Locker
	now          func() time.Time
	logger       *zap.Logger
}

// NewSweepService creates a new sweep service
func NewSweepService(queries db.Querier, verification *VerificationService, locker interfaces.Locker, opts ...Option) *SweepService {
	o := applyOptions(opts)
	return &SweepService{
		queries:      queries,
		verification: verification,
		locker:       locker,
		now:          o.now,
		logger:       logger.Log,
	}
}

// RunAll expires stale claims, deactivates ended discounts and processes
// verification expiry. A run that cannot take the lock is skipped. A failing
// sweep does not stop the others.
func (s *SweepService) RunAll(ctx context.Context) (business.SweepResult, error) {
	var result business.SweepResult

	release, acquired, err := s.locker.TryLock(ctx, constants.SweepLockKey, constants.SweepLockTTL)
	if err != nil {
		return result, fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	if !acquired {
		s.logger.Info("sweep already running elsewhere, skipping")
		result.Skipped = true
		return result, nil
	}
	defer release()

	start := s.now()
	now := helpers.TimeToNullableTimestamptz(start)
	var errs []error

	result.ExpiredClaims, err = s.queries.ExpireStaleClaims(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("expire stale claims: %w", err))
	}
	metrics.SweepRows.WithLabelValues("expire_claims").Add(float64(result.ExpiredClaims))

	result.DeactivatedDiscounts, err = s.queries.DeactivateExpiredDiscounts(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("deactivate expired discounts: %w", err))
	}
	metrics.SweepRows.WithLabelValues("deactivate_discounts").Add(float64(result.DeactivatedDiscounts))

	verification, err := s.verification.ProcessExpiry(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("verification expiry: %w", err))
	}
	result.GracePeriodsStarted = verification.GracePeriodsStarted
	result.VerificationsExpired = verification.Expired
	result.ReverificationReminded = verification.Reminded
	metrics.SweepRows.WithLabelValues("grace_periods").Add(float64(verification.GracePeriodsStarted))
	metrics.SweepRows.WithLabelValues("verifications_expired").Add(float64(verification.Expired))
	metrics.SweepRows.WithLabelValues("reverification_reminders").Add(float64(verification.Reminded))

	s.logger.Info("sweep completed",
		zap.Int64("expired_claims", result.ExpiredClaims),
		zap.Int64("deactivated_discounts", result.DeactivatedDiscounts),
		zap.Int("grace_periods_started", result.GracePeriodsStarted),
		zap.Int("verifications_expired", result.VerificationsExpired),
		zap.Int("reverification_reminded", result.ReverificationReminded),
		zap.Duration("duration", s.now().Sub(start)),
		zap.Int("errors", len(errs)))

	return result, errors.Join(errs...)
}
