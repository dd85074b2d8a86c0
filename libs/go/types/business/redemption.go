package business

import (
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/google/uuid"
)

// RedemptionAmounts holds the monetary outcome of a redemption, rounded to cents.
type RedemptionAmounts struct {
	TransactionAmount float64  `json:"transaction_amount"`
	DiscountAmount    float64  `json:"discount_amount"`
	CashbackAmount    *float64 `json:"cashback_amount,omitempty"`
}

// Savings is the total benefit credited to the user and discount counters
func (a RedemptionAmounts) Savings() float64 {
	savings := a.DiscountAmount
	if a.CashbackAmount != nil {
		savings += *a.CashbackAmount
	}
	return savings
}

// RedemptionEvent is published after a redemption commits.
type RedemptionEvent struct {
	ClaimID    uuid.UUID         `json:"claim_id"`
	DiscountID uuid.UUID         `json:"discount_id"`
	UserID     uuid.UUID         `json:"user_id"`
	PartnerID  uuid.UUID         `json:"partner_id"`
	ClaimCode  string            `json:"claim_code"`
	Amounts    RedemptionAmounts `json:"amounts"`
}

// RedemptionResult is returned by a successful redemption.
type RedemptionResult struct {
	Claim    db.DiscountClaim
	Discount db.Discount
	Amounts  RedemptionAmounts
}
