package handlers

import (
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
)

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	discountService       interfaces.DiscountService
	eligibilityService    interfaces.EligibilityService
	claimService          interfaces.ClaimService
	redemptionService     interfaces.RedemptionService
	approvalService       interfaces.ApprovalService
	recommendationService interfaces.RecommendationService
	verificationService   interfaces.VerificationService
	fraudService          interfaces.FraudService
	healthDB              Pinger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	DiscountService       interfaces.DiscountService
	EligibilityService    interfaces.EligibilityService
	ClaimService          interfaces.ClaimService
	RedemptionService     interfaces.RedemptionService
	ApprovalService       interfaces.ApprovalService
	RecommendationService interfaces.RecommendationService
	VerificationService   interfaces.VerificationService
	FraudService          interfaces.FraudService

	// HealthDB is pinged by /health; optional
	HealthDB Pinger
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	return &HandlerFactory{
		discountService:       config.DiscountService,
		eligibilityService:    config.EligibilityService,
		claimService:          config.ClaimService,
		redemptionService:     config.RedemptionService,
		approvalService:       config.ApprovalService,
		recommendationService: config.RecommendationService,
		verificationService:   config.VerificationService,
		fraudService:          config.FraudService,
		healthDB:              config.HealthDB,
	}
}

// NewDiscountHandler creates the catalogue and partner handler
func (f *HandlerFactory) NewDiscountHandler() *DiscountHandler {
	return NewDiscountHandler(f.discountService, f.eligibilityService, f.recommendationService)
}

// NewClaimHandler creates the claim and redemption handler
func (f *HandlerFactory) NewClaimHandler() *ClaimHandler {
	return NewClaimHandler(f.claimService, f.redemptionService)
}

// NewApprovalHandler creates the moderation handler
func (f *HandlerFactory) NewApprovalHandler() *ApprovalHandler {
	return NewApprovalHandler(f.approvalService)
}

// NewVerificationHandler creates the student verification handler
func (f *HandlerFactory) NewVerificationHandler() *VerificationHandler {
	return NewVerificationHandler(f.verificationService)
}

// NewFraudHandler creates the fraud alert handler
func (f *HandlerFactory) NewFraudHandler() *FraudHandler {
	return NewFraudHandler(f.fraudService)
}

// NewHealthHandler creates the health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler(f.healthDB)
}
