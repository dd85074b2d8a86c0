package params

import (
	"time"

	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
)

// DiscountTerms are the owner-editable terms of a discount
type DiscountTerms struct {
	Title              string
	Description        string
	PromoCode          *string
	DiscountType       string
	DiscountValue      float64
	MinPurchaseAmount  *float64
	MaxDiscountAmount  *float64
	CashbackPercentage *float64
	MaxCashbackAmount  *float64
	StartDate          time.Time
	EndDate            time.Time
	ActiveTimeStart    *string
	ActiveTimeEnd      *string
	ActiveDaysOfWeek   []int32
	UniversityIDs      []uuid.UUID
	MinCourseYear      *int32
	IsFirstTimeOnly    bool
	RequiresLocation   bool
	Latitude           *float64
	Longitude          *float64
	LocationRadius     *float64
	UsageLimitPerUser  int32
	UsageLimitType     string
	DailyUsageLimit    *int32
	WeeklyUsageLimit   *int32
	MonthlyUsageLimit  *int32
	TotalUsageLimit    *int32
	ClaimExpiryHours   int32
	IsFeatured         bool
}

// CreateDiscountParams contains parameters for creating a discount
type CreateDiscountParams struct {
	PartnerID   uuid.UUID
	BrandID     *uuid.UUID
	CategoryID  *uuid.UUID
	// AutoApprove skips moderation for admin-created discounts
	AutoApprove bool
	Terms       DiscountTerms
}

// UpdateDiscountParams contains parameters for replacing a discount's terms
type UpdateDiscountParams struct {
	DiscountID uuid.UUID
	ActorID    uuid.UUID
	ActorRole  string
	Terms      DiscountTerms
}

// ListDiscountsParams contains filters for the public discount listing
type ListDiscountsParams struct {
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	Featured   *bool
	Search     string
	Limit      int32
	Offset     int32
}

// ReviewDiscountParams contains parameters for an approval decision
type ReviewDiscountParams struct {
	DiscountID uuid.UUID
	ReviewerID uuid.UUID
	Reason     string
}

// RecommendParams contains parameters for personalised recommendations
type RecommendParams struct {
	UserID   uuid.UUID
	Location *business.Location
	Limit    int
}
