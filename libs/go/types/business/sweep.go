package business

// SweepResult counts the rows touched by one scheduled sweep run.
type SweepResult struct {
	Skipped                bool  `json:"skipped"`
	ExpiredClaims          int64 `json:"expired_claims"`
	DeactivatedDiscounts   int64 `json:"deactivated_discounts"`
	GracePeriodsStarted    int   `json:"grace_periods_started"`
	VerificationsExpired   int   `json:"verifications_expired"`
	ReverificationReminded int   `json:"reverification_reminded"`
}
