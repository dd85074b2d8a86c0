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

const (
	maxSlugAttempts     = 20
	maxTitleLength      = 200
	maxClaimExpiryHours = 24 * 30
)

// DiscountService handles discount management for partners and the public catalogue
type DiscountService struct {
	queries db.Querier
	audit   *AuditService
	logger  *zap.Logger
}

// NewDiscountService creates a new discount service
func NewDiscountService(queries db.Querier, audit *AuditService) *DiscountService {
	return &DiscountService{
		queries: queries,
		audit:   audit,
		logger:  logger.Log,
	}
}

// CreateDiscount validates the terms and stores a new discount awaiting approval
func (s *DiscountService) CreateDiscount(ctx context.Context, p params.CreateDiscountParams) (*db.Discount, error) {
	terms, err := normalizeDiscountTerms(p.Terms)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, terms.Title)
	if err != nil {
		return nil, err
	}

	status := business.ApprovalPending
	if p.AutoApprove {
		status = business.ApprovalApproved
	}

	discount, err := s.queries.CreateDiscount(ctx, db.CreateDiscountParams{
		PartnerID:          p.PartnerID,
		BrandID:            helpers.UUIDPtrToNullable(p.BrandID),
		CategoryID:         helpers.UUIDPtrToNullable(p.CategoryID),
		Title:              terms.Title,
		Slug:               slug,
		Description:        helpers.StringToNullableText(terms.Description),
		PromoCode:          helpers.StringPtrToNullableText(terms.PromoCode),
		DiscountType:       terms.DiscountType,
		DiscountValue:      terms.DiscountValue,
		MinPurchaseAmount:  terms.MinPurchaseAmount,
		MaxDiscountAmount:  terms.MaxDiscountAmount,
		CashbackPercentage: terms.CashbackPercentage,
		MaxCashbackAmount:  terms.MaxCashbackAmount,
		StartDate:          helpers.TimeToNullableTimestamptz(terms.StartDate),
		EndDate:            helpers.TimeToNullableTimestamptz(terms.EndDate),
		ActiveTimeStart:    helpers.StringPtrToNullableText(terms.ActiveTimeStart),
		ActiveTimeEnd:      helpers.StringPtrToNullableText(terms.ActiveTimeEnd),
		ActiveDaysOfWeek:   terms.ActiveDaysOfWeek,
		UniversityIds:      terms.UniversityIDs,
		MinCourseYear:      helpers.Int32PtrToNullableInt4(terms.MinCourseYear),
		IsFirstTimeOnly:    terms.IsFirstTimeOnly,
		RequiresLocation:   terms.RequiresLocation,
		Latitude:           terms.Latitude,
		Longitude:          terms.Longitude,
		LocationRadius:     terms.LocationRadius,
		UsageLimitPerUser:  terms.UsageLimitPerUser,
		UsageLimitType:     terms.UsageLimitType,
		DailyUsageLimit:    helpers.Int32PtrToNullableInt4(terms.DailyUsageLimit),
		WeeklyUsageLimit:   helpers.Int32PtrToNullableInt4(terms.WeeklyUsageLimit),
		MonthlyUsageLimit:  helpers.Int32PtrToNullableInt4(terms.MonthlyUsageLimit),
		TotalUsageLimit:    helpers.Int32PtrToNullableInt4(terms.TotalUsageLimit),
		ClaimExpiryHours:   terms.ClaimExpiryHours,
		IsFeatured:         terms.IsFeatured,
		ApprovalStatus:     string(status),
	})
	if err != nil {
		if conflict := uniqueDiscountConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to create discount: %w", err)
	}

	s.audit.Record(ctx, p.PartnerID, constants.AuditDiscountCreated, constants.EntityDiscount, discount.ID, map[string]interface{}{
		"approval_status": discount.ApprovalStatus,
	})
	s.logger.Info("discount created",
		zap.String("discount_id", discount.ID.String()),
		zap.String("partner_id", p.PartnerID.String()),
		zap.String("approval_status", discount.ApprovalStatus))

	return &discount, nil
}

// UpdateDiscount replaces the terms of a discount. Partner edits send the
// discount back to moderation; admin edits keep its approval status.
func (s *DiscountService) UpdateDiscount(ctx context.Context, p params.UpdateDiscountParams) (*db.Discount, error) {
	existing, err := s.getOwned(ctx, p.DiscountID, p.ActorID, p.ActorRole)
	if err != nil {
		return nil, err
	}

	terms, err := normalizeDiscountTerms(p.Terms)
	if err != nil {
		return nil, err
	}

	status := existing.ApprovalStatus
	if p.ActorRole != constants.AdminRole {
		status = string(business.ApprovalPending)
	}

	updated, err := s.queries.UpdateDiscount(ctx, db.UpdateDiscountParams{
		ID:                 existing.ID,
		Title:              terms.Title,
		Description:        helpers.StringToNullableText(terms.Description),
		PromoCode:          helpers.StringPtrToNullableText(terms.PromoCode),
		DiscountType:       terms.DiscountType,
		DiscountValue:      terms.DiscountValue,
		MinPurchaseAmount:  terms.MinPurchaseAmount,
		MaxDiscountAmount:  terms.MaxDiscountAmount,
		CashbackPercentage: terms.CashbackPercentage,
		MaxCashbackAmount:  terms.MaxCashbackAmount,
		StartDate:          helpers.TimeToNullableTimestamptz(terms.StartDate),
		EndDate:            helpers.TimeToNullableTimestamptz(terms.EndDate),
		ActiveTimeStart:    helpers.StringPtrToNullableText(terms.ActiveTimeStart),
		ActiveTimeEnd:      helpers.StringPtrToNullableText(terms.ActiveTimeEnd),
		ActiveDaysOfWeek:   terms.ActiveDaysOfWeek,
		UniversityIds:      terms.UniversityIDs,
		MinCourseYear:      helpers.Int32PtrToNullableInt4(terms.MinCourseYear),
		IsFirstTimeOnly:    terms.IsFirstTimeOnly,
		RequiresLocation:   terms.RequiresLocation,
		Latitude:           terms.Latitude,
		Longitude:          terms.Longitude,
		LocationRadius:     terms.LocationRadius,
		UsageLimitPerUser:  terms.UsageLimitPerUser,
		UsageLimitType:     terms.UsageLimitType,
		DailyUsageLimit:    helpers.Int32PtrToNullableInt4(terms.DailyUsageLimit),
		WeeklyUsageLimit:   helpers.Int32PtrToNullableInt4(terms.WeeklyUsageLimit),
		MonthlyUsageLimit:  helpers.Int32PtrToNullableInt4(terms.MonthlyUsageLimit),
		TotalUsageLimit:    helpers.Int32PtrToNullableInt4(terms.TotalUsageLimit),
		ClaimExpiryHours:   terms.ClaimExpiryHours,
		IsFeatured:         terms.IsFeatured,
		ApprovalStatus:     status,
	})
	if err != nil {
		if conflict := uniqueDiscountConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to update discount: %w", err)
	}

	s.audit.Record(ctx, p.ActorID, constants.AuditDiscountUpdated, constants.EntityDiscount, updated.ID, map[string]interface{}{
		"previous_status": existing.ApprovalStatus,
		"approval_status": updated.ApprovalStatus,
	})
	return &updated, nil
}

// DeleteDiscount soft-deletes a discount owned by the actor
func (s *DiscountService) DeleteDiscount(ctx context.Context, discountID, actorID uuid.UUID, role string) error {
	if _, err := s.getOwned(ctx, discountID, actorID, role); err != nil {
		return err
	}
	if _, err := s.queries.SoftDeleteDiscount(ctx, discountID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return helpers.NewNotFoundError("Discount not found")
		}
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	s.audit.Record(ctx, actorID, constants.AuditDiscountDeleted, constants.EntityDiscount, discountID, nil)
	return nil
}

// GetDiscount returns a discount and counts the view
func (s *DiscountService) GetDiscount(ctx context.Context, discountID uuid.UUID) (*db.Discount, error) {
	discount, err := s.queries.GetDiscount(ctx, discountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Discount not found")
		}
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}
	s.countView(ctx, discount.ID)
	return &discount, nil
}

// GetDiscountBySlug returns a discount by slug and counts the view
func (s *DiscountService) GetDiscountBySlug(ctx context.Context, slug string) (*db.Discount, error) {
	discount, err := s.queries.GetDiscountBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Discount not found")
		}
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}
	s.countView(ctx, discount.ID)
	return &discount, nil
}

// TrackClick increments the click counter of a discount
func (s *DiscountService) TrackClick(ctx context.Context, discountID uuid.UUID) error {
	if _, err := s.queries.GetDiscount(ctx, discountID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return helpers.NewNotFoundError("Discount not found")
		}
		return fmt.Errorf("failed to get discount: %w", err)
	}
	if err := s.queries.IncrementDiscountClickCount(ctx, discountID); err != nil {
		return fmt.Errorf("failed to track click: %w", err)
	}
	return nil
}

// ListDiscounts returns live approved discounts matching the filters, with the total count
func (s *DiscountService) ListDiscounts(ctx context.Context, p params.ListDiscountsParams) ([]db.Discount, int64, error) {
	search := strings.TrimSpace(p.Search)
	discounts, err := s.queries.ListDiscounts(ctx, db.ListDiscountsParams{
		CategoryID: helpers.UUIDPtrToNullable(p.CategoryID),
		BrandID:    helpers.UUIDPtrToNullable(p.BrandID),
		Featured:   helpers.BoolPtrToNullable(p.Featured),
		Search:     helpers.StringToNullableText(search),
		RowLimit:   p.Limit,
		RowOffset:  p.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list discounts: %w", err)
	}

	total, err := s.queries.CountDiscounts(ctx, db.CountDiscountsParams{
		CategoryID: helpers.UUIDPtrToNullable(p.CategoryID),
		BrandID:    helpers.UUIDPtrToNullable(p.BrandID),
		Featured:   helpers.BoolPtrToNullable(p.Featured),
		Search:     helpers.StringToNullableText(search),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count discounts: %w", err)
	}
	return discounts, total, nil
}

// ListPartnerDiscounts returns every discount owned by a partner, including inactive ones
func (s *DiscountService) ListPartnerDiscounts(ctx context.Context, partnerID uuid.UUID, limit, offset int32) ([]db.Discount, int64, error) {
	discounts, err := s.queries.ListPartnerDiscounts(ctx, db.ListPartnerDiscountsParams{
		PartnerID: partnerID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list partner discounts: %w", err)
	}
	total, err := s.queries.CountPartnerDiscounts(ctx, partnerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count partner discounts: %w", err)
	}
	return discounts, total, nil
}

// ListDiscountClaims returns the claims made against a discount owned by the actor
func (s *DiscountService) ListDiscountClaims(ctx context.Context, discountID, actorID uuid.UUID, role string, limit, offset int32) ([]db.DiscountClaim, error) {
	if _, err := s.getOwned(ctx, discountID, actorID, role); err != nil {
		return nil, err
	}
	claims, err := s.queries.ListDiscountClaims(ctx, db.ListDiscountClaimsParams{
		DiscountID: discountID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list discount claims: %w", err)
	}
	return claims, nil
}

// GetStats returns platform-wide discount totals
func (s *DiscountService) GetStats(ctx context.Context) (*db.GetDiscountStatsRow, error) {
	stats, err := s.queries.GetDiscountStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get discount stats: %w", err)
	}
	return &stats, nil
}

func (s *DiscountService) getOwned(ctx context.Context, discountID, actorID uuid.UUID, role string) (db.Discount, error) {
	discount, err := s.queries.GetDiscount(ctx, discountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Discount{}, helpers.NewNotFoundError("Discount not found")
		}
		return db.Discount{}, fmt.Errorf("failed to get discount: %w", err)
	}
	if role != constants.AdminRole && discount.PartnerID != actorID {
		return db.Discount{}, helpers.NewForbiddenError("You do not own this discount")
	}
	return discount, nil
}

func (s *DiscountService) countView(ctx context.Context, discountID uuid.UUID) {
	if err := s.queries.IncrementDiscountViewCount(ctx, discountID); err != nil {
		s.logger.Warn("failed to increment view count", zap.String("discount_id", discountID.String()), zap.Error(err))
	}
}

func (s *DiscountService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := helpers.Slugify(title)
	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts+1; attempt++ {
		exists, err := s.queries.DiscountSlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}

func uniqueDiscountConflict(err error) error {
	constraint, ok := helpers.UniqueViolationConstraint(err)
	if !ok {
		return nil
	}
	switch constraint {
	case constants.ConstraintDiscountPromoCode:
		return helpers.NewConflictError("Promo code already exists")
	case constants.ConstraintDiscountSlug:
		return helpers.NewConflictError("Discount slug already exists")
	default:
		return helpers.NewConflictError("Discount already exists")
	}
}

// normalizeDiscountTerms applies defaults and rejects inconsistent terms.
func normalizeDiscountTerms(t params.DiscountTerms) (params.DiscountTerms, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Title == "" {
		return t, helpers.NewBadRequestError("Title is required")
	}
	if len(t.Title) > maxTitleLength {
		return t, helpers.NewBadRequestError(fmt.Sprintf("Title must be at most %d characters", maxTitleLength))
	}
	if t.PromoCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*t.PromoCode))
		if code == "" {
			t.PromoCode = nil
		} else {
			t.PromoCode = &code
		}
	}

	switch t.DiscountType {
	case constants.DiscountTypePercentage:
		if t.DiscountValue <= 0 || t.DiscountValue > 100 {
			return t, helpers.NewBadRequestError("Percentage discount value must be between 0 and 100")
		}
	case constants.DiscountTypeFixedAmount:
		if t.DiscountValue <= 0 {
			return t, helpers.NewBadRequestError("Fixed discount value must be positive")
		}
	case constants.DiscountTypeCashback:
		if t.CashbackPercentage == nil || *t.CashbackPercentage <= 0 || *t.CashbackPercentage > 100 {
			return t, helpers.NewBadRequestError("Cashback percentage must be between 0 and 100")
		}
	case constants.DiscountTypePromoCode:
		if t.PromoCode == nil {
			return t, helpers.NewBadRequestError("Promo code discounts require a promo code")
		}
	case constants.DiscountTypeBuyOneGetOne, constants.DiscountTypeFreeItem:
	default:
		return t, helpers.NewBadRequestError(fmt.Sprintf("Unsupported discount type %q", t.DiscountType))
	}
	if t.DiscountValue < 0 {
		return t, helpers.NewBadRequestError("Discount value cannot be negative")
	}
	for name, v := range map[string]*float64{
		"min_purchase_amount": t.MinPurchaseAmount,
		"max_discount_amount": t.MaxDiscountAmount,
		"max_cashback_amount": t.MaxCashbackAmount,
	} {
		if v != nil && *v < 0 {
			return t, helpers.NewBadRequestError(fmt.Sprintf("%s cannot be negative", name))
		}
	}

	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return t, helpers.NewBadRequestError("Start and end dates are required")
	}
	if !t.EndDate.After(t.StartDate) {
		return t, helpers.NewBadRequestError("End date must be after start date")
	}

	if (t.ActiveTimeStart == nil) != (t.ActiveTimeEnd == nil) {
		return t, helpers.NewBadRequestError("Active time start and end must be set together")
	}
	if t.ActiveTimeStart != nil {
		if _, err := helpers.ParseClockMinutes(*t.ActiveTimeStart); err != nil {
			return t, helpers.NewBadRequestError("Active time start must be HH:mm")
		}
		if _, err := helpers.ParseClockMinutes(*t.ActiveTimeEnd); err != nil {
			return t, helpers.NewBadRequestError("Active time end must be HH:mm")
		}
	}
	for _, day := range t.ActiveDaysOfWeek {
		if day < 0 || day > 6 {
			return t, helpers.NewBadRequestError("Active days of week must be between 0 (Sunday) and 6")
		}
	}
	if t.ActiveDaysOfWeek == nil {
		t.ActiveDaysOfWeek = []int32{}
	}
	if t.UniversityIDs == nil {
		t.UniversityIDs = []uuid.UUID{}
	}

	if t.MinCourseYear != nil && *t.MinCourseYear < 1 {
		return t, helpers.NewBadRequestError("Minimum course year must be at least 1")
	}

	if t.RequiresLocation {
		if t.Latitude == nil || t.Longitude == nil || t.LocationRadius == nil {
			return t, helpers.NewBadRequestError("Location-restricted discounts need latitude, longitude and radius")
		}
		if !helpers.IsValidCoordinate(*t.Latitude, *t.Longitude) {
			return t, helpers.NewBadRequestError("Invalid location coordinates")
		}
		if *t.LocationRadius <= 0 {
			return t, helpers.NewBadRequestError("Location radius must be positive")
		}
	}

	if t.UsageLimitType == "" {
		t.UsageLimitType = constants.UsageLimitOneTime
	}
	switch t.UsageLimitType {
	case constants.UsageLimitOneTime, constants.UsageLimitDaily, constants.UsageLimitWeekly,
		constants.UsageLimitMonthly, constants.UsageLimitUnlimited:
	default:
		return t, helpers.NewBadRequestError(fmt.Sprintf("Unsupported usage limit type %q", t.UsageLimitType))
	}
	if t.UsageLimitPerUser == 0 {
		t.UsageLimitPerUser = constants.DefaultUsageLimitPerUser
	}
	if t.UsageLimitPerUser < 0 {
		return t, helpers.NewBadRequestError("Usage limit per user must be positive")
	}
	for name, v := range map[string]*int32{
		"daily_usage_limit":   t.DailyUsageLimit,
		"weekly_usage_limit":  t.WeeklyUsageLimit,
		"monthly_usage_limit": t.MonthlyUsageLimit,
		"total_usage_limit":   t.TotalUsageLimit,
	} {
		if v != nil && *v < 1 {
			return t, helpers.NewBadRequestError(fmt.Sprintf("%s must be at least 1", name))
		}
	}

	if t.ClaimExpiryHours == 0 {
		t.ClaimExpiryHours = constants.DefaultClaimExpiryHours
	}
	if t.ClaimExpiryHours < 0 || t.ClaimExpiryHours > maxClaimExpiryHours {
		return t, helpers.NewBadRequestError(fmt.Sprintf("Claim expiry must be between 1 and %d hours", maxClaimExpiryHours))
	}

	return t, nil
}
