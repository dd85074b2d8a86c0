package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/metrics"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RedemptionService converts claims into monetized, terminal redemptions.
type RedemptionService struct {
	queries       db.Querier
	txRunner      helpers.TxRunner
	fraud         *FraudService
	audit         *AuditService
	notifications *NotificationService
	now           func() time.Time
	logger        *zap.Logger
}

// NewRedemptionService creates a new redemption service
func NewRedemptionService(
	queries db.Querier,
	txRunner helpers.TxRunner,
	fraud *FraudService,
	audit *AuditService,
	notifications *NotificationService,
	opts ...Option,
) *RedemptionService {
	o := applyOptions(opts)
	return &RedemptionService{
		queries:       queries,
		txRunner:      txRunner,
		fraud:         fraud,
		audit:         audit,
		notifications: notifications,
		now:           o.now,
		logger:        logger.Log,
	}
}

// RedeemClaim validates a claim code and records the redemption against the
// discount and the student in one transaction.
func (s *RedemptionService) RedeemClaim(ctx context.Context, p params.RedeemClaimParams) (*business.RedemptionResult, error) {
	if p.TransactionAmount < 0 {
		return nil, helpers.NewBadRequestError("Transaction amount cannot be negative")
	}
	if p.DiscountAmount != nil && *p.DiscountAmount < 0 {
		return nil, helpers.NewBadRequestError("Discount amount cannot be negative")
	}
	if p.Location != nil && !helpers.IsValidCoordinate(p.Location.Latitude, p.Location.Longitude) {
		return nil, helpers.NewBadRequestError("Invalid location coordinates")
	}

	claim, err := s.queries.GetDiscountClaimByCode(ctx, NormalizeClaimCode(p.ClaimCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Claim not found")
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	status, err := business.ParseClaimStatus(claim.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to read claim %s: %w", claim.ID, err)
	}
	if !status.CanTransitionTo(business.ClaimStatusRedeemed) {
		return nil, helpers.NewBadRequestError(fmt.Sprintf("Claim is already %s", status))
	}

	now := s.now()
	if claim.ExpiresAt.Valid && now.After(claim.ExpiresAt.Time) {
		// the flip is committed on its own so the rejection leaves the claim expired
		if _, err := s.queries.ExpireDiscountClaim(ctx, claim.ID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to expire claim: %w", err)
		}
		return nil, helpers.NewBadRequestError("Claim has expired")
	}

	discount, err := s.queries.GetDiscount(ctx, claim.DiscountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Discount not found")
		}
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}

	if p.ActorRole != constants.AdminRole && discount.PartnerID != p.ActorID {
		return nil, helpers.NewForbiddenError("You can only redeem claims for your own discounts")
	}

	if discount.MinPurchaseAmount != nil && p.TransactionAmount < *discount.MinPurchaseAmount {
		return nil, helpers.NewBadRequestError(fmt.Sprintf("Minimum purchase amount is %.2f", *discount.MinPurchaseAmount))
	}

	amounts := CalculateRedemptionAmounts(discount, p.TransactionAmount, p.DiscountAmount)
	savings := helpers.RoundMoney(amounts.Savings())

	var (
		redeemed db.DiscountClaim
		updated  db.Discount
		user     db.User
	)
	err = s.txRunner.RunInTx(ctx, func(qtx db.Querier) error {
		redeemParams := db.RedeemDiscountClaimParams{
			RedeemedAt:        helpers.TimeToNullableTimestamptz(now),
			RedeemedBy:        helpers.UUIDToNullable(p.ActorID),
			TransactionAmount: helpers.Float64Ptr(amounts.TransactionAmount),
			DiscountAmount:    helpers.Float64Ptr(amounts.DiscountAmount),
			CashbackAmount:    amounts.CashbackAmount,
			Notes:             helpers.StringToNullableText(p.Notes),
			ID:                claim.ID,
		}
		if p.Location != nil {
			redeemParams.RedemptionLatitude = helpers.Float64Ptr(p.Location.Latitude)
			redeemParams.RedemptionLongitude = helpers.Float64Ptr(p.Location.Longitude)
		}

		var err error
		redeemed, err = qtx.RedeemDiscountClaim(ctx, redeemParams)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return helpers.NewBadRequestError("Claim is no longer available for redemption")
			}
			return fmt.Errorf("failed to redeem claim: %w", err)
		}

		updated, err = qtx.IncrementDiscountRedemption(ctx, db.IncrementDiscountRedemptionParams{
			Savings: savings,
			ID:      discount.ID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return helpers.NewBadRequestError("Discount usage limit has been reached")
			}
			return fmt.Errorf("failed to update discount counters: %w", err)
		}

		user, err = qtx.IncrementUserRedemptionStats(ctx, db.IncrementUserRedemptionStatsParams{
			Savings: savings,
			ID:      claim.UserID,
		})
		if err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Redemptions.WithLabelValues(discount.DiscountType).Inc()
	metrics.Savings.Add(savings)

	s.logger.Info("claim redeemed",
		zap.String("claim_id", redeemed.ID.String()),
		zap.String("discount_id", discount.ID.String()),
		zap.String("user_id", redeemed.UserID.String()),
		zap.Float64("savings", savings))

	s.audit.Record(ctx, p.ActorID, constants.AuditClaimRedeemed, constants.EntityClaim, redeemed.ID, map[string]interface{}{
		"discount_id":        discount.ID.String(),
		"transaction_amount": amounts.TransactionAmount,
		"discount_amount":    amounts.DiscountAmount,
		"savings":            savings,
	})
	s.fraud.CheckRedemptionVelocity(ctx, redeemed.UserID, discount.ID, redeemed.ID)
	s.notifications.RedemptionReceipt(ctx, user.Email, discount.Title, redeemed.ClaimCode, amounts)

	return &business.RedemptionResult{
		Claim:    redeemed,
		Discount: updated,
		Amounts:  amounts,
	}, nil
}

// CalculateRedemptionAmounts derives the discount and cashback for a purchase.
// A caller-supplied discount amount wins over the computed one.
func CalculateRedemptionAmounts(discount db.Discount, transactionAmount float64, supplied *float64) business.RedemptionAmounts {
	amounts := business.RedemptionAmounts{
		TransactionAmount: helpers.RoundMoney(transactionAmount),
	}

	switch {
	case supplied != nil:
		amounts.DiscountAmount = *supplied
	case discount.DiscountType == constants.DiscountTypePercentage:
		amounts.DiscountAmount = helpers.CapAmount(transactionAmount*discount.DiscountValue/100, discount.MaxDiscountAmount)
	case discount.DiscountType == constants.DiscountTypeFixedAmount:
		amounts.DiscountAmount = discount.DiscountValue
	}
	amounts.DiscountAmount = helpers.RoundMoney(amounts.DiscountAmount)

	if discount.DiscountType == constants.DiscountTypeCashback && discount.CashbackPercentage != nil {
		cashback := helpers.CapAmount(transactionAmount**discount.CashbackPercentage/100, discount.MaxCashbackAmount)
		amounts.CashbackAmount = helpers.Float64Ptr(helpers.RoundMoney(cashback))
	}

	return amounts
}
