package requests

import "time"

// DiscountTermsRequest is the body shared by create and update
type DiscountTermsRequest struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description"`
	PromoCode          *string   `json:"promo_code,omitempty"`
	DiscountType       string    `json:"discount_type" binding:"required"`
	DiscountValue      float64   `json:"discount_value"`
	MinPurchaseAmount  *float64  `json:"min_purchase_amount,omitempty"`
	MaxDiscountAmount  *float64  `json:"max_discount_amount,omitempty"`
	CashbackPercentage *float64  `json:"cashback_percentage,omitempty"`
	MaxCashbackAmount  *float64  `json:"max_cashback_amount,omitempty"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
	ActiveTimeStart    *string   `json:"active_time_start,omitempty"`
	ActiveTimeEnd      *string   `json:"active_time_end,omitempty"`
	ActiveDaysOfWeek   []int32   `json:"active_days_of_week,omitempty"`
	UniversityIDs      []string  `json:"university_ids,omitempty"`
	MinCourseYear      *int32    `json:"min_course_year,omitempty"`
	IsFirstTimeOnly    bool      `json:"is_first_time_only"`
	RequiresLocation   bool      `json:"requires_location"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	LocationRadius     *float64  `json:"location_radius,omitempty"`
	UsageLimitPerUser  int32     `json:"usage_limit_per_user"`
	UsageLimitType     string    `json:"usage_limit_type"`
	DailyUsageLimit    *int32    `json:"daily_usage_limit,omitempty"`
	WeeklyUsageLimit   *int32    `json:"weekly_usage_limit,omitempty"`
	MonthlyUsageLimit  *int32    `json:"monthly_usage_limit,omitempty"`
	TotalUsageLimit    *int32    `json:"total_usage_limit,omitempty"`
	ClaimExpiryHours   int32     `json:"claim_expiry_hours"`
	IsFeatured         bool      `json:"is_featured"`
}

// CreateDiscountRequest represents the request body for creating a discount
type CreateDiscountRequest struct {
	BrandID    string `json:"brand_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	DiscountTermsRequest
}

// UpdateDiscountRequest represents the request body for replacing a discount's terms
type UpdateDiscountRequest struct {
	DiscountTermsRequest
}

// RejectDiscountRequest carries the reason an admin rejected a discount
type RejectDiscountRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ClaimDiscountRequest represents the request body for claiming a discount
type ClaimDiscountRequest struct {
	Latitude  *float64               `json:"latitude,omitempty"`
	Longitude *float64               `json:"longitude,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" swaggertype:"object"`
}

// RedeemClaimRequest represents the request body for redeeming a claim
type RedeemClaimRequest struct {
	TransactionAmount float64  `json:"transaction_amount"`
	DiscountAmount    *float64 `json:"discount_amount,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
}
