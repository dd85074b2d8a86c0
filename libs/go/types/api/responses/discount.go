package responses

// DiscountResponse represents the API response for a discount
type DiscountResponse struct {
	ID                 string   `json:"id"`
	Object             string   `json:"object"`
	PartnerID          string   `json:"partner_id"`
	BrandID            *string  `json:"brand_id,omitempty"`
	CategoryID         *string  `json:"category_id,omitempty"`
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description,omitempty"`
	PromoCode          *string  `json:"promo_code,omitempty"`
	DiscountType       string   `json:"discount_type"`
	DiscountValue      float64  `json:"discount_value"`
	MinPurchaseAmount  *float64 `json:"min_purchase_amount,omitempty"`
	MaxDiscountAmount  *float64 `json:"max_discount_amount,omitempty"`
	CashbackPercentage *float64 `json:"cashback_percentage,omitempty"`
	MaxCashbackAmount  *float64 `json:"max_cashback_amount,omitempty"`
	StartDate          int64    `json:"start_date"`
	EndDate            int64    `json:"end_date"`
	ActiveTimeStart    *string  `json:"active_time_start,omitempty"`
	ActiveTimeEnd      *string  `json:"active_time_end,omitempty"`
	ActiveDaysOfWeek   []int32  `json:"active_days_of_week,omitempty"`
	UniversityIDs      []string `json:"university_ids,omitempty"`
	MinCourseYear      *int32   `json:"min_course_year,omitempty"`
	IsFirstTimeOnly    bool     `json:"is_first_time_only"`
	RequiresLocation   bool     `json:"requires_location"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	LocationRadius     *float64 `json:"location_radius,omitempty"`
	UsageLimitPerUser  int32    `json:"usage_limit_per_user"`
	UsageLimitType     string   `json:"usage_limit_type"`
	TotalUsageLimit    *int32   `json:"total_usage_limit,omitempty"`
	CurrentUsageCount  int32    `json:"current_usage_count"`
	ClaimExpiryHours   int32    `json:"claim_expiry_hours"`
	IsActive           bool     `json:"is_active"`
	IsFeatured         bool     `json:"is_featured"`
	ApprovalStatus     string   `json:"approval_status"`
	RejectionReason    *string  `json:"rejection_reason,omitempty"`
	ViewCount          int32    `json:"view_count"`
	ClickCount         int32    `json:"click_count"`
	ClaimCount         int32    `json:"claim_count"`
	RedemptionCount    int32    `json:"redemption_count"`
	TotalSavings       float64  `json:"total_savings"`
	CreatedAt          int64    `json:"created_at"`
	UpdatedAt          int64    `json:"updated_at"`
}

// ClaimResponse represents the API response for a discount claim
type ClaimResponse struct {
	ID                string   `json:"id"`
	Object            string   `json:"object"`
	DiscountID        string   `json:"discount_id"`
	UserID            string   `json:"user_id"`
	ClaimCode         string   `json:"claim_code"`
	Status            string   `json:"status"`
	ClaimedAt         int64    `json:"claimed_at"`
	ExpiresAt         int64    `json:"expires_at"`
	RedeemedAt        *int64   `json:"redeemed_at,omitempty"`
	RedeemedBy        *string  `json:"redeemed_by,omitempty"`
	TransactionAmount *float64 `json:"transaction_amount,omitempty"`
	DiscountAmount    *float64 `json:"discount_amount,omitempty"`
	CashbackAmount    *float64 `json:"cashback_amount,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// RedemptionResponse represents the API response for a completed redemption
type RedemptionResponse struct {
	Claim          ClaimResponse `json:"claim"`
	DiscountAmount float64       `json:"discount_amount"`
	CashbackAmount *float64      `json:"cashback_amount,omitempty"`
	TotalSavings   float64       `json:"total_savings"`
}

// EligibilityResponse represents the API response for an eligibility check
type EligibilityResponse struct {
	DiscountID string `json:"discount_id"`
	Eligible   bool   `json:"eligible"`
	Code       string `json:"code"`
	Reason     string `json:"reason,omitempty"`
}

// DiscountStatsResponse represents platform-wide discount statistics
type DiscountStatsResponse struct {
	TotalDiscounts    int64   `json:"total_discounts"`
	ActiveDiscounts   int64   `json:"active_discounts"`
	PendingDiscounts  int64   `json:"pending_discounts"`
	ApprovedDiscounts int64   `json:"approved_discounts"`
	RejectedDiscounts int64   `json:"rejected_discounts"`
	TotalClaims       int64   `json:"total_claims"`
	TotalRedemptions  int64   `json:"total_redemptions"`
	TotalSavings      float64 `json:"total_savings"`
	RedemptionRate    float64 `json:"redemption_rate"`
}
