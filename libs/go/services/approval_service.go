package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ApprovalService moves discounts through moderation.
type ApprovalService struct {
	queries       db.Querier
	audit         *AuditService
	notifications *NotificationService
	logger        *zap.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(queries db.Querier, audit *AuditService, notifications *NotificationService) *ApprovalService {
	return &ApprovalService{
		queries:       queries,
		audit:         audit,
		notifications: notifications,
		logger:        logger.Log,
	}
}

// ApproveDiscount moves a pending discount to approved
func (s *ApprovalService) ApproveDiscount(ctx context.Context, p params.ReviewDiscountParams) (*db.Discount, error) {
	return s.review(ctx, p, business.ApprovalApproved)
}

// RejectDiscount moves a pending discount to rejected. A reason is required.
func (s *ApprovalService) RejectDiscount(ctx context.Context, p params.ReviewDiscountParams) (*db.Discount, error) {
	p.Reason = strings.TrimSpace(p.Reason)
	if p.Reason == "" {
		return nil, helpers.NewBadRequestError("Rejection reason is required")
	}
	return s.review(ctx, p, business.ApprovalRejected)
}

// ListPendingDiscounts returns the moderation queue, oldest first
func (s *ApprovalService) ListPendingDiscounts(ctx context.Context, limit, offset int32) ([]db.Discount, int64, error) {
	discounts, err := s.queries.ListPendingDiscounts(ctx, db.ListPendingDiscountsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pending discounts: %w", err)
	}
	total, err := s.queries.CountPendingDiscounts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pending discounts: %w", err)
	}
	return discounts, total, nil
}

func (s *ApprovalService) review(ctx context.Context, p params.ReviewDiscountParams, to business.ApprovalStatus) (*db.Discount, error) {
	discount, err := s.queries.GetDiscount(ctx, p.DiscountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Discount not found")
		}
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}

	current, err := business.ParseApprovalStatus(discount.ApprovalStatus)
	if err != nil {
		return nil, fmt.Errorf("discount %s: %w", discount.ID, err)
	}
	if !current.CanTransitionTo(to) {
		return nil, helpers.NewBadRequestError(fmt.Sprintf("Discount is already %s", current))
	}

	var updated db.Discount
	switch to {
	case business.ApprovalApproved:
		updated, err = s.queries.ApproveDiscount(ctx, db.ApproveDiscountParams{
			ID:         discount.ID,
			ReviewedBy: helpers.UUIDToNullable(p.ReviewerID),
		})
	case business.ApprovalRejected:
		updated, err = s.queries.RejectDiscount(ctx, db.RejectDiscountParams{
			ID:              discount.ID,
			ReviewedBy:      helpers.UUIDToNullable(p.ReviewerID),
			RejectionReason: helpers.StringToNullableText(p.Reason),
		})
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost a race with another reviewer
			return nil, s.alreadyReviewed(ctx, discount.ID)
		}
		return nil, fmt.Errorf("failed to update approval status: %w", err)
	}

	action := constants.AuditDiscountApproved
	if to == business.ApprovalRejected {
		action = constants.AuditDiscountRejected
	}
	s.audit.Record(ctx, p.ReviewerID, action, constants.EntityDiscount, updated.ID, map[string]interface{}{
		"from":   string(current),
		"to":     string(to),
		"reason": p.Reason,
	})

	s.notifyPartner(ctx, updated, to, p.Reason)

	s.logger.Info("discount reviewed",
		zap.String("discount_id", updated.ID.String()),
		zap.String("reviewer_id", p.ReviewerID.String()),
		zap.String("status", string(to)))

	return &updated, nil
}

func (s *ApprovalService) alreadyReviewed(ctx context.Context, discountID uuid.UUID) error {
	latest, err := s.queries.GetDiscount(ctx, discountID)
	if err != nil {
		return helpers.NewBadRequestError("Discount is no longer pending")
	}
	return helpers.NewBadRequestError(fmt.Sprintf("Discount is already %s", latest.ApprovalStatus))
}

func (s *ApprovalService) notifyPartner(ctx context.Context, discount db.Discount, status business.ApprovalStatus, reason string) {
	partner, err := s.queries.GetUserByID(ctx, discount.PartnerID)
	if err != nil {
		s.logger.Warn("failed to load partner for review notification",
			zap.String("discount_id", discount.ID.String()),
			zap.Error(err))
		return
	}
	s.notifications.DiscountReviewed(ctx, partner.Email, discount.Title, status, reason)
}
