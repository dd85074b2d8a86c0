package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FraudService raises and manages fraud alerts.
type FraudService struct {
	queries db.Querier
	audit   *AuditService
	now     func() time.Time
	logger  *zap.Logger
}

// NewFraudService creates a new fraud service
func NewFraudService(queries db.Querier, audit *AuditService, opts ...Option) *FraudService {
	o := applyOptions(opts)
	return &FraudService{
		queries: queries,
		audit:   audit,
		now:     o.now,
		logger:  logger.Log,
	}
}

// RaiseAlert persists an alert. Failures are logged and swallowed.
func (s *FraudService) RaiseAlert(ctx context.Context, input business.FraudAlertInput) {
	details, err := json.Marshal(input.Details)
	if err != nil {
		details = []byte("{}")
	}

	alert, err := s.queries.CreateFraudAlert(ctx, db.CreateFraudAlertParams{
		UserID:     input.UserID,
		DiscountID: helpers.UUIDPtrToNullable(input.DiscountID),
		ClaimID:    helpers.UUIDPtrToNullable(input.ClaimID),
		AlertType:  input.AlertType,
		Severity:   string(input.Severity),
		Score:      int32(input.Score),
		Details:    details,
	})
	if err != nil {
		s.logger.Error("failed to create fraud alert",
			zap.String("user_id", input.UserID.String()),
			zap.String("alert_type", input.AlertType),
			zap.Error(err))
		return
	}

	s.logger.Warn("fraud alert raised",
		zap.String("alert_id", alert.ID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.String("alert_type", input.AlertType),
		zap.String("severity", string(input.Severity)),
		zap.Int("score", input.Score))
}

// CheckRedemptionVelocity raises a medium alert when the user has redeemed more
// than the allowed number of claims in the trailing window.
func (s *FraudService) CheckRedemptionVelocity(ctx context.Context, userID, discountID, claimID uuid.UUID) {
	since := s.now().Add(-constants.RedemptionVelocityWindow)
	count, err := s.queries.CountUserRedemptionsSince(ctx, db.CountUserRedemptionsSinceParams{
		UserID:     userID,
		RedeemedAt: helpers.TimeToNullableTimestamptz(since),
	})
	if err != nil {
		s.logger.Error("failed to count recent redemptions", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if count <= constants.RedemptionVelocityLimit {
		return
	}

	s.RaiseAlert(ctx, business.FraudAlertInput{
		UserID:     userID,
		DiscountID: &discountID,
		ClaimID:    &claimID,
		AlertType:  business.FraudAlertRedemptionVelocity,
		Severity:   business.FraudSeverityMedium,
		Score:      int(count),
		Details: map[string]interface{}{
			"redemptions_24h": count,
			"limit":           constants.RedemptionVelocityLimit,
		},
	})
}

// ListAlerts returns alerts, optionally filtered by status
func (s *FraudService) ListAlerts(ctx context.Context, status string, limit, offset int32) ([]db.FraudAlert, error) {
	if status != "" && status != "open" && status != "resolved" {
		return nil, helpers.NewBadRequestError("status must be open or resolved")
	}
	alerts, err := s.queries.ListFraudAlerts(ctx, db.ListFraudAlertsParams{
		Status:    helpers.StringToNullableText(status),
		RowLimit:  limit,
		RowOffset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fraud alerts: %w", err)
	}
	return alerts, nil
}

// ResolveAlert closes an open alert
func (s *FraudService) ResolveAlert(ctx context.Context, alertID, resolverID uuid.UUID) (*db.FraudAlert, error) {
	alert, err := s.queries.ResolveFraudAlert(ctx, db.ResolveFraudAlertParams{
		ID:         alertID,
		ResolvedBy: helpers.UUIDToNullable(resolverID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Fraud alert not found or already resolved")
		}
		return nil, fmt.Errorf("failed to resolve fraud alert: %w", err)
	}

	s.audit.Record(ctx, resolverID, constants.AuditFraudAlertResolved, constants.EntityFraudAlert, alert.ID, nil)
	return &alert, nil
}
