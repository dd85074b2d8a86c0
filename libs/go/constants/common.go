package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs and metrics
	ServiceName = "campusperks-api"

	// User roles
	AdminRole   = "admin"
	PartnerRole = "partner"
	StudentRole = "student"

	// Audit entity types
	EntityDiscount     = "discount"
	EntityClaim        = "discount_claim"
	EntityVerification = "student_verification"
	EntityFraudAlert   = "fraud_alert"
)

// Constraint names referenced when mapping unique violations
const (
	ConstraintDiscountSlug      = "discounts_slug_key"
	ConstraintDiscountPromoCode = "discounts_promo_code_key"
	ConstraintClaimCode         = "discount_claims_claim_code_key"
	ConstraintOneActiveClaim    = "idx_discount_claims_one_active"
)

// Audit actions
const (
	AuditDiscountCreated       = "discount.created"
	AuditDiscountUpdated       = "discount.updated"
	AuditDiscountDeleted       = "discount.deleted"
	AuditDiscountApproved      = "discount.approved"
	AuditDiscountRejected      = "discount.rejected"
	AuditClaimRedeemed         = "claim.redeemed"
	AuditVerificationDecided   = "verification.decided"
	AuditVerificationSuspended = "verification.suspended"
	AuditFraudAlertResolved    = "fraud_alert.resolved"
)

// Listing pagination
const (
	DefaultPageSize int32 = 10
	MaxPageSize     int32 = 100
)
