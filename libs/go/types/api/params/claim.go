package params

import (
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
)

// ClaimDiscountParams contains parameters for issuing a claim
type ClaimDiscountParams struct {
	DiscountID uuid.UUID
	UserID     uuid.UUID
	Location   *business.Location
	Metadata   map[string]interface{}
}

// RedeemClaimParams contains parameters for redeeming a claim at a partner
type RedeemClaimParams struct {
	ClaimCode         string
	ActorID           uuid.UUID
	ActorRole         string
	TransactionAmount float64
	// DiscountAmount overrides the computed amount when set
	DiscountAmount    *float64
	Notes             string
	Location          *business.Location
}
