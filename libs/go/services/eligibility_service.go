package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/metrics"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// EligibilityService decides whether a user may claim a discount.
type EligibilityService struct {
	queries  db.Querier
	now      func() time.Time
	location *time.Location
	logger   *zap.Logger
}

// NewEligibilityService creates a new eligibility service
func NewEligibilityService(queries db.Querier, opts ...Option) *EligibilityService {
	o := applyOptions(opts)
	return &EligibilityService{
		queries:  queries,
		now:      o.now,
		location: o.location,
		logger:   logger.Log,
	}
}

// CheckEligibility loads the discount and user and evaluates them.
func (s *EligibilityService) CheckEligibility(ctx context.Context, discountID, userID uuid.UUID, location *business.Location) (business.EligibilityResult, error) {
	discount, err := s.queries.GetDiscount(ctx, discountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.EligibilityResult{}, helpers.NewNotFoundError("Discount not found")
		}
		return business.EligibilityResult{}, fmt.Errorf("failed to get discount: %w", err)
	}

	user, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.EligibilityResult{}, helpers.NewNotFoundError("User not found")
		}
		return business.EligibilityResult{}, fmt.Errorf("failed to get user: %w", err)
	}

	return s.Evaluate(ctx, discount, user, location)
}

// Evaluate runs the eligibility checks in order and reports the first failure.
func (s *EligibilityService) Evaluate(ctx context.Context, discount db.Discount, user db.User, location *business.Location) (business.EligibilityResult, error) {
	return s.evaluate(ctx, s.queries, discount, user, location)
}

func (s *EligibilityService) evaluate(ctx context.Context, q db.Querier, discount db.Discount, user db.User, location *business.Location) (business.EligibilityResult, error) {
	result, err := s.runChecks(ctx, q, discount, user, location)
	if err != nil {
		return business.EligibilityResult{}, err
	}
	if !result.Allowed {
		metrics.EligibilityDenied.WithLabelValues(string(result.Code)).Inc()
		s.logger.Debug("discount eligibility denied",
			zap.String("discount_id", discount.ID.String()),
			zap.String("user_id", user.ID.String()),
			zap.String("code", string(result.Code)))
	}
	return result, nil
}

func (s *EligibilityService) runChecks(ctx context.Context, q db.Querier, discount db.Discount, user db.User, location *business.Location) (business.EligibilityResult, error) {
	now := s.now()
	local := now.In(s.location)

	if !discount.IsActive {
		return business.Denied(business.EligibilityInactive, "Discount is not active"), nil
	}

	if discount.ApprovalStatus != string(business.ApprovalApproved) {
		return business.Denied(business.EligibilityNotApproved, "Discount is not approved"), nil
	}

	if discount.StartDate.Valid && now.Before(discount.StartDate.Time) {
		return business.Denied(business.EligibilityNotStarted, "Discount has not started yet"), nil
	}
	if discount.EndDate.Valid && now.After(discount.EndDate.Time) {
		return business.Denied(business.EligibilityEnded, "Discount has expired"), nil
	}

	if discount.ActiveTimeStart.Valid && discount.ActiveTimeEnd.Valid {
		start, err := helpers.ParseClockMinutes(discount.ActiveTimeStart.String)
		if err != nil {
			return business.EligibilityResult{}, fmt.Errorf("discount %s has invalid active_time_start: %w", discount.ID, err)
		}
		end, err := helpers.ParseClockMinutes(discount.ActiveTimeEnd.String)
		if err != nil {
			return business.EligibilityResult{}, fmt.Errorf("discount %s has invalid active_time_end: %w", discount.ID, err)
		}
		if !helpers.WithinClockWindow(local, start, end) {
			return business.Denied(business.EligibilityOutsideHours,
				fmt.Sprintf("Discount is only available between %s and %s", discount.ActiveTimeStart.String, discount.ActiveTimeEnd.String)), nil
		}
	}

	if len(discount.ActiveDaysOfWeek) > 0 && !slices.Contains(discount.ActiveDaysOfWeek, int32(local.Weekday())) {
		return business.Denied(business.EligibilityWrongDay, "Discount is not available today"), nil
	}

	if len(discount.UniversityIds) > 0 && user.UniversityID.Valid {
		if !slices.Contains(discount.UniversityIds, uuid.UUID(user.UniversityID.Bytes)) {
			return business.Denied(business.EligibilityUniversity, "Discount is not available for your university"), nil
		}
	}

	if discount.MinCourseYear.Valid {
		if !user.CourseYear.Valid || user.CourseYear.Int32 < discount.MinCourseYear.Int32 {
			return business.Denied(business.EligibilityCourseYear,
				fmt.Sprintf("Discount requires course year %d or above", discount.MinCourseYear.Int32)), nil
		}
	}

	if discount.IsFirstTimeOnly {
		redemptions, err := q.CountUserRedemptions(ctx, user.ID)
		if err != nil {
			return business.EligibilityResult{}, fmt.Errorf("failed to count user redemptions: %w", err)
		}
		if redemptions > 0 {
			return business.Denied(business.EligibilityFirstTimeOnly, "Discount is only available to first-time users"), nil
		}
	}

	if discount.RequiresLocation && discount.Latitude != nil && discount.Longitude != nil {
		if location == nil {
			return business.Denied(business.EligibilityLocationRequired, "Location is required for this discount"), nil
		}
		radius := helpers.Float64Value(discount.LocationRadius)
		distance := helpers.HaversineMeters(*discount.Latitude, *discount.Longitude, location.Latitude, location.Longitude)
		// a geofence without a usable radius admits nobody
		if radius <= 0 || distance > radius {
			return business.Denied(business.EligibilityOutOfRange, "You are too far from the discount location"), nil
		}
	}

	quota, err := s.checkUserQuota(ctx, q, discount, user.ID, local)
	if err != nil {
		return business.EligibilityResult{}, err
	}
	if !quota.Allowed {
		return quota, nil
	}

	if discount.TotalUsageLimit.Valid && discount.CurrentUsageCount >= discount.TotalUsageLimit.Int32 {
		return business.Denied(business.EligibilityTotalLimitReached, "Discount usage limit has been reached"), nil
	}

	return business.Eligible(), nil
}

// checkUserQuota compares the user's claims in the current period against the
// cap configured for the discount's usage limit type.
func (s *EligibilityService) checkUserQuota(ctx context.Context, q db.Querier, discount db.Discount, userID uuid.UUID, local time.Time) (business.EligibilityResult, error) {
	var (
		since  time.Time
		limit  = discount.UsageLimitPerUser
		period string
	)

	switch discount.UsageLimitType {
	case constants.UsageLimitUnlimited:
		return business.Eligible(), nil
	case constants.UsageLimitOneTime:
		limit = 1
	case constants.UsageLimitDaily:
		since, period = helpers.StartOfDay(local), "today"
		limit = periodLimit(discount.DailyUsageLimit.Valid, discount.DailyUsageLimit.Int32, limit)
	case constants.UsageLimitWeekly:
		since, period = helpers.StartOfWeek(local), "this week"
		limit = periodLimit(discount.WeeklyUsageLimit.Valid, discount.WeeklyUsageLimit.Int32, limit)
	case constants.UsageLimitMonthly:
		since, period = helpers.StartOfMonth(local), "this month"
		limit = periodLimit(discount.MonthlyUsageLimit.Valid, discount.MonthlyUsageLimit.Int32, limit)
	}

	var (
		count int64
		err   error
	)
	if since.IsZero() {
		count, err = q.CountUserClaimsForDiscount(ctx, db.CountUserClaimsForDiscountParams{
			DiscountID: discount.ID,
			UserID:     userID,
		})
	} else {
		count, err = q.CountUserClaimsForDiscountSince(ctx, db.CountUserClaimsForDiscountSinceParams{
			DiscountID: discount.ID,
			UserID:     userID,
			ClaimedAt:  helpers.TimeToNullableTimestamptz(since),
		})
	}
	if err != nil {
		return business.EligibilityResult{}, fmt.Errorf("failed to count user claims: %w", err)
	}

	if count >= int64(limit) {
		reason := "You have reached the usage limit for this discount"
		if period != "" {
			reason = fmt.Sprintf("You have reached the usage limit for this discount %s", period)
		}
		return business.Denied(business.EligibilityUserLimitReached, reason), nil
	}
	return business.Eligible(), nil
}

func periodLimit(valid bool, value, fallback int32) int32 {
	if valid {
		return value
	}
	return fallback
}
