package business

import (
	"fmt"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/google/uuid"
)

// VerificationStatus is a student's identity verification state
type VerificationStatus string

const (
	VerificationUnverified    VerificationStatus = "unverified"
	VerificationPendingEmail  VerificationStatus = "pending_email"
	VerificationPendingReview VerificationStatus = "pending_review"
	VerificationVerified      VerificationStatus = "verified"
	VerificationGracePeriod   VerificationStatus = "grace_period"
	VerificationExpired       VerificationStatus = "expired"
	VerificationRejected      VerificationStatus = "rejected"
	VerificationSuspended     VerificationStatus = "suspended"
)

var verificationTransitions = map[VerificationStatus][]VerificationStatus{
	VerificationUnverified:    {VerificationPendingEmail, VerificationPendingReview},
	VerificationPendingEmail:  {VerificationPendingEmail, VerificationVerified, VerificationPendingReview, VerificationSuspended},
	VerificationPendingReview: {VerificationVerified, VerificationRejected, VerificationSuspended},
	VerificationVerified:      {VerificationGracePeriod, VerificationSuspended, VerificationPendingEmail, VerificationPendingReview},
	VerificationGracePeriod:   {VerificationExpired, VerificationSuspended, VerificationPendingEmail, VerificationPendingReview},
	VerificationExpired:       {VerificationPendingEmail, VerificationPendingReview},
	VerificationRejected:      {VerificationPendingEmail, VerificationPendingReview},
	VerificationSuspended:     {},
}

// ParseVerificationStatus validates a stored verification status
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	st := VerificationStatus(s)
	if _, ok := verificationTransitions[st]; !ok {
		return "", fmt.Errorf("unknown verification status %q", s)
	}
	return st, nil
}

// CanTransitionTo reports whether the verification table allows from -> to.
func (s VerificationStatus) CanTransitionTo(to VerificationStatus) bool {
	return allowed(verificationTransitions[s], to)
}

// CanClaimDiscounts reports whether the status grants access to student discounts.
func (s VerificationStatus) CanClaimDiscounts() bool {
	return s == VerificationVerified || s == VerificationGracePeriod
}

// VerificationMethod is how a student proves enrollment
type VerificationMethod string

const (
	VerificationMethodEmail    VerificationMethod = "email"
	VerificationMethodDocument VerificationMethod = "document"
)

// FraudSeverity grades a fraud alert
type FraudSeverity string

const (
	FraudSeverityLow    FraudSeverity = "low"
	FraudSeverityMedium FraudSeverity = "medium"
	FraudSeverityHigh   FraudSeverity = "high"
)

// Fraud alert types
const (
	FraudAlertVerification       = "verification_risk"
	FraudAlertRedemptionVelocity = "redemption_velocity"
)

// FraudAssessment is a scored set of risk signals
type FraudAssessment struct {
	Score   int      `json:"score"`
	Signals []string `json:"signals"`
}

// Add records a signal and its weight
func (a *FraudAssessment) Add(signal string, weight int) {
	a.Score += weight
	a.Signals = append(a.Signals, signal)
}

// Capped returns the score limited to max
func (a FraudAssessment) Capped(max int) int {
	if a.Score > max {
		return max
	}
	return a.Score
}

// FraudAlertInput describes an alert to raise against a user.
type FraudAlertInput struct {
	UserID     uuid.UUID
	DiscountID *uuid.UUID
	ClaimID    *uuid.UUID
	AlertType  string
	Severity   FraudSeverity
	Score      int
	Details    map[string]interface{}
}

// VerificationOutcome is the user and verification record after a decision.
type VerificationOutcome struct {
	User         db.User
	Verification db.StudentVerification
	Assessment   FraudAssessment
}
