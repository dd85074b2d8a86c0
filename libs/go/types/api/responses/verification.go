package responses

import "encoding/json"

// VerificationResponse represents a single verification attempt
type VerificationResponse struct {
	ID              string  `json:"id"`
	Object          string  `json:"object"`
	UserID          string  `json:"user_id"`
	Method          string  `json:"method"`
	StudentEmail    *string `json:"student_email,omitempty"`
	UniversityID    *string `json:"university_id,omitempty"`
	DocumentURL     *string `json:"document_url,omitempty"`
	Status          string  `json:"status"`
	Attempts        int32   `json:"attempts"`
	FraudScore      int32   `json:"fraud_score"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       int64   `json:"created_at"`
}

// VerificationStatusResponse summarises a student's verification state
type VerificationStatusResponse struct {
	UserID             string                `json:"user_id"`
	Status             string                `json:"status"`
	UniversityID       *string               `json:"university_id,omitempty"`
	StudentEmail       *string               `json:"student_email,omitempty"`
	VerifiedAt         *int64                `json:"verified_at,omitempty"`
	ExpiresAt          *int64                `json:"expires_at,omitempty"`
	GracePeriodEndsAt  *int64                `json:"grace_period_ends_at,omitempty"`
	CanClaimDiscounts  bool                  `json:"can_claim_discounts"`
	LatestVerification *VerificationResponse `json:"latest_verification,omitempty"`
}

// FraudAlertResponse represents a fraud alert
type FraudAlertResponse struct {
	ID         string          `json:"id"`
	Object     string          `json:"object"`
	UserID     string          `json:"user_id"`
	DiscountID *string         `json:"discount_id,omitempty"`
	ClaimID    *string         `json:"claim_id,omitempty"`
	AlertType  string          `json:"alert_type"`
	Severity   string          `json:"severity"`
	Score      int32           `json:"score"`
	Details    json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	Status     string          `json:"status"`
	CreatedAt  int64           `json:"created_at"`
}

// SweepResponse reports the rows touched by a maintenance sweep
type SweepResponse struct {
	ExpiredClaims          int64 `json:"expired_claims"`
	DeactivatedDiscounts   int64 `json:"deactivated_discounts"`
	GracePeriodsStarted    int   `json:"grace_periods_started"`
	VerificationsExpired   int   `json:"verifications_expired"`
	ReverificationReminded int   `json:"reverification_reminded"`
}
