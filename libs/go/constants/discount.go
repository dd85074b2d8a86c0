package constants

import "time"

// Discount types
const (
	DiscountTypePercentage   = "percentage"
	DiscountTypeFixedAmount  = "fixed_amount"
	DiscountTypePromoCode    = "promo_code"
	DiscountTypeBuyOneGetOne = "buy_one_get_one"
	DiscountTypeFreeItem     = "free_item"
	DiscountTypeCashback     = "cashback"
)

// Usage limit types
const (
	UsageLimitOneTime   = "one_time"
	UsageLimitDaily     = "daily"
	UsageLimitWeekly    = "weekly"
	UsageLimitMonthly   = "monthly"
	UsageLimitUnlimited = "unlimited"
)

// Claim issuance and redemption
const (
	ClaimCodePrefix          = "STU"
	ClaimCodeMaxAttempts     = 5
	DefaultClaimExpiryHours  = 24
	DefaultUsageLimitPerUser = 1
	RedemptionVelocityWindow = 24 * time.Hour
	RedemptionVelocityLimit  = 10
	MaxTransactionRetries    = 3
	EarthRadiusMeters        = 6371000.0
)

// Recommendation scoring weights
const (
	RecommendationHistorySize     = 50
	RecommendationCandidateFactor = 2
	RecommendationDefaultLimit    = 10
	RecommendationMaxLimit        = 50
	ScoreWeightDiscountValue      = 0.3
	ScoreWeightBrandRating        = 20.0
	ScoreBonusExpiringSoon        = 15.0
	ScoreBonusCategoryAffinity    = 15.0
	ScoreBonusBrandAffinity       = 10.0
	ScoreBonusNearby              = 20.0
	ScoreBonusFeatured            = 10.0
	ExpiringSoonWindow            = 7 * 24 * time.Hour
	NearbyRadiusMeters            = 5000.0
	RecommendationCacheTTL        = 5 * time.Minute
)

// Student verification
const (
	VerificationCodeTTL             = 30 * time.Minute
	VerificationMaxAttempts         = 5
	VerificationValidity            = 365 * 24 * time.Hour
	VerificationGracePeriod         = 14 * 24 * time.Hour
	VerificationReminderLead        = 30 * 24 * time.Hour
	FraudScoreReviewThreshold       = 40
	FraudScoreSuspendThreshold      = 70
	FraudScoreMax                   = 100
	FraudScoreUnknownDomain         = 25
	FraudScoreUniversityMismatch    = 25
	FraudScorePerFailedAttempt      = 10
	FraudScoreFreeFailedAttempts    = 2
	FraudScoreDuplicateStudentEmail = 40
	FraudScoreClaimVelocity         = 20
	FraudClaimVelocityLimit         = 10
)

// Sweeps
const (
	SweepLockKey   = "campusperks:sweeper:lock"
	SweepLockTTL   = 5 * time.Minute
	SweepBatchSize = 500
)
