package interfaces

import (
	"context"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
)

// EligibilityService evaluates whether a user may claim a discount
type EligibilityService interface {
	CheckEligibility(ctx context.Context, discountID, userID uuid.UUID, location *business.Location) (business.EligibilityResult, error)
}

// ClaimService issues and looks up discount claims
type ClaimService interface {
	ClaimDiscount(ctx context.Context, params params.ClaimDiscountParams) (*db.DiscountClaim, error)
	GetClaimByCode(ctx context.Context, code string, actorID uuid.UUID, role string) (*db.DiscountClaim, error)
	ListUserClaims(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]db.DiscountClaim, error)
}

// RedemptionService redeems claims at partner locations
type RedemptionService interface {
	RedeemClaim(ctx context.Context, params params.RedeemClaimParams) (*business.RedemptionResult, error)
}

// ApprovalService moderates partner discounts
type ApprovalService interface {
	ApproveDiscount(ctx context.Context, params params.ReviewDiscountParams) (*db.Discount, error)
	RejectDiscount(ctx context.Context, params params.ReviewDiscountParams) (*db.Discount, error)
	ListPendingDiscounts(ctx context.Context, limit, offset int32) ([]db.Discount, int64, error)
}

// RecommendationService ranks discounts for a student
type RecommendationService interface {
	Recommend(ctx context.Context, params params.RecommendParams) ([]db.Discount, error)
}

// DiscountService manages the discount catalogue
type DiscountService interface {
	CreateDiscount(ctx context.Context, params params.CreateDiscountParams) (*db.Discount, error)
	UpdateDiscount(ctx context.Context, params params.UpdateDiscountParams) (*db.Discount, error)
	DeleteDiscount(ctx context.Context, discountID, actorID uuid.UUID, role string) error
	GetDiscount(ctx context.Context, discountID uuid.UUID) (*db.Discount, error)
	GetDiscountBySlug(ctx context.Context, slug string) (*db.Discount, error)
	TrackClick(ctx context.Context, discountID uuid.UUID) error
	ListDiscounts(ctx context.Context, params params.ListDiscountsParams) ([]db.Discount, int64, error)
	ListPartnerDiscounts(ctx context.Context, partnerID uuid.UUID, limit, offset int32) ([]db.Discount, int64, error)
	ListDiscountClaims(ctx context.Context, discountID, actorID uuid.UUID, role string, limit, offset int32) ([]db.DiscountClaim, error)
	GetStats(ctx context.Context) (*db.GetDiscountStatsRow, error)
}

// VerificationService runs student identity verification
type VerificationService interface {
	StartEmailVerification(ctx context.Context, params params.StartEmailVerificationParams) (*db.StudentVerification, error)
	ConfirmEmailVerification(ctx context.Context, params params.ConfirmEmailVerificationParams) (*business.VerificationOutcome, error)
	SubmitDocument(ctx context.Context, params params.SubmitDocumentParams) (*db.StudentVerification, error)
	ReviewVerification(ctx context.Context, params params.ReviewVerificationParams) (*business.VerificationOutcome, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*db.User, *db.StudentVerification, error)
	ListPendingReviews(ctx context.Context, limit, offset int32) ([]db.StudentVerification, error)
}

// FraudService manages fraud alerts
type FraudService interface {
	ListAlerts(ctx context.Context, status string, limit, offset int32) ([]db.FraudAlert, error)
	ResolveAlert(ctx context.Context, alertID, resolverID uuid.UUID) (*db.FraudAlert, error)
}

// SweepService runs the scheduled maintenance sweeps
type SweepService interface {
	RunAll(ctx context.Context) (business.SweepResult, error)
}
