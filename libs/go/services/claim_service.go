package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/metrics"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ClaimService issues discount claims and serves claim lookups.
type ClaimService struct {
	queries      db.Querier
	txRunner     helpers.TxRunner
	eligibility  *EligibilityService
	now          func() time.Time
	generateCode func(time.Time) (string, error)
	logger       *zap.Logger
}

// NewClaimService creates a new claim service
func NewClaimService(queries db.Querier, txRunner helpers.TxRunner, eligibility *EligibilityService, opts ...Option) *ClaimService {
	o := applyOptions(opts)
	return &ClaimService{
		queries:      queries,
		txRunner:     txRunner,
		eligibility:  eligibility,
		now:          o.now,
		generateCode: helpers.GenerateClaimCode,
		logger:       logger.Log,
	}
}

// ClaimDiscount issues a claim for a verified student. Eligibility is re-run
// inside the transaction that increments the claim counter.
func (s *ClaimService) ClaimDiscount(ctx context.Context, p params.ClaimDiscountParams) (*db.DiscountClaim, error) {
	if p.Location != nil && !helpers.IsValidCoordinate(p.Location.Latitude, p.Location.Longitude) {
		return nil, helpers.NewBadRequestError("Invalid location coordinates")
	}

	user, err := s.queries.GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !business.VerificationStatus(user.VerificationStatus).CanClaimDiscounts() {
		return nil, helpers.NewForbiddenError("Student verification is required to claim discounts")
	}

	metadata := []byte("{}")
	if len(p.Metadata) > 0 {
		metadata, err = json.Marshal(p.Metadata)
		if err != nil {
			return nil, helpers.NewBadRequestError("Invalid claim metadata")
		}
	}

	var claim db.DiscountClaim
	err = s.txRunner.RunInTx(ctx, func(qtx db.Querier) error {
		discount, err := qtx.GetDiscount(ctx, p.DiscountID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return helpers.NewNotFoundError("Discount not found")
			}
			return fmt.Errorf("failed to get discount: %w", err)
		}

		result, err := s.eligibility.evaluate(ctx, qtx, discount, user, p.Location)
		if err != nil {
			return err
		}
		if !result.Allowed {
			return helpers.NewBadRequestError(result.Reason)
		}

		now := s.now()
		active, err := qtx.GetActiveClaimForUser(ctx, db.GetActiveClaimForUserParams{
			DiscountID: discount.ID,
			UserID:     user.ID,
		})
		switch {
		case err == nil && claimExpired(active, now):
			// The sweeper has not reached this claim yet; retire it so the
			// partial unique index admits the new one.
			if _, err := qtx.ExpireDiscountClaim(ctx, active.ID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("failed to expire stale claim: %w", err)
			}
		case err == nil:
			return helpers.NewConflictError("You already have an active claim for this discount")
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("failed to check active claims: %w", err)
		}

		code, err := s.uniqueClaimCode(ctx, qtx, now)
		if err != nil {
			return err
		}

		if _, err := qtx.IncrementDiscountClaimCount(ctx, discount.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return helpers.NewBadRequestError("Discount usage limit has been reached")
			}
			return fmt.Errorf("failed to increment claim count: %w", err)
		}

		expiryHours := discount.ClaimExpiryHours
		if expiryHours <= 0 {
			expiryHours = constants.DefaultClaimExpiryHours
		}

		createParams := db.CreateDiscountClaimParams{
			DiscountID: discount.ID,
			UserID:     user.ID,
			ClaimCode:  code,
			ClaimedAt:  helpers.TimeToNullableTimestamptz(now),
			ExpiresAt:  helpers.TimeToNullableTimestamptz(now.Add(time.Duration(expiryHours) * time.Hour)),
			Metadata:   metadata,
		}
		if p.Location != nil {
			createParams.ClaimLatitude = helpers.Float64Ptr(p.Location.Latitude)
			createParams.ClaimLongitude = helpers.Float64Ptr(p.Location.Longitude)
		}

		claim, err = qtx.CreateDiscountClaim(ctx, createParams)
		if err != nil {
			if constraint, ok := helpers.UniqueViolationConstraint(err); ok {
				if constraint == constants.ConstraintOneActiveClaim {
					return helpers.NewConflictError("You already have an active claim for this discount")
				}
				return helpers.NewConflictError("Claim code collision, please retry")
			}
			return fmt.Errorf("failed to create claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ClaimsIssued.Inc()
	s.logger.Info("discount claimed",
		zap.String("claim_id", claim.ID.String()),
		zap.String("discount_id", claim.DiscountID.String()),
		zap.String("user_id", claim.UserID.String()))

	return &claim, nil
}

// claimExpired reports whether a claim is past its expiry at now and may
// still move to expired.
func claimExpired(claim db.DiscountClaim, now time.Time) bool {
	if !business.ClaimStatus(claim.Status).CanTransitionTo(business.ClaimStatusExpired) {
		return false
	}
	return claim.ExpiresAt.Valid && now.After(claim.ExpiresAt.Time)
}

// uniqueClaimCode draws codes until one is unused, giving up after a fixed
// number of collisions.
func (s *ClaimService) uniqueClaimCode(ctx context.Context, q db.Querier, now time.Time) (string, error) {
	for attempt := 1; attempt <= constants.ClaimCodeMaxAttempts; attempt++ {
		code, err := s.generateCode(now)
		if err != nil {
			return "", fmt.Errorf("failed to generate claim code: %w", err)
		}
		exists, err := q.ClaimCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check claim code: %w", err)
		}
		if !exists {
			return code, nil
		}
		s.logger.Warn("claim code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}
	return "", fmt.Errorf("failed to generate a unique claim code after %d attempts", constants.ClaimCodeMaxAttempts)
}

// GetClaimByCode returns a claim visible to the caller: the owning student, the
// partner that owns the discount, or an admin.
func (s *ClaimService) GetClaimByCode(ctx context.Context, code string, actorID uuid.UUID, role string) (*db.DiscountClaim, error) {
	claim, err := s.queries.GetDiscountClaimByCode(ctx, NormalizeClaimCode(code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Claim not found")
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	switch role {
	case constants.AdminRole:
		return &claim, nil
	case constants.PartnerRole:
		discount, err := s.queries.GetDiscount(ctx, claim.DiscountID)
		if err != nil {
			return nil, fmt.Errorf("failed to get discount: %w", err)
		}
		if discount.PartnerID == actorID {
			return &claim, nil
		}
	default:
		if claim.UserID == actorID {
			return &claim, nil
		}
	}
	return nil, helpers.NewForbiddenError("You do not have access to this claim")
}

// ListUserClaims returns a page of the user's claims, newest first
func (s *ClaimService) ListUserClaims(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]db.DiscountClaim, error) {
	claims, err := s.queries.ListUserClaims(ctx, db.ListUserClaimsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user claims: %w", err)
	}
	return claims, nil
}

// NormalizeClaimCode trims and upper-cases a user-entered claim code
func NormalizeClaimCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
