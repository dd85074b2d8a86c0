package middleware

import (
	"fmt"
)

const defaultMaxBodySize = 64 * 1024

var discountTypes = []string{"percentage", "fixed_amount", "promo_code", "buy_one_get_one", "free_item", "cashback"}

var usageLimitTypes = []string{"one_time", "daily", "weekly", "monthly", "unlimited"}

func latitudeRule(field string) ValidationRule {
	return ValidationRule{Field: field, Type: "number", Min: float64Ptr(-90), Max: float64Ptr(90)}
}

func longitudeRule(field string) ValidationRule {
	return ValidationRule{Field: field, Type: "number", Min: float64Ptr(-180), Max: float64Ptr(180)}
}

func nonNegativeRule(field string) ValidationRule {
	return ValidationRule{Field: field, Type: "number", Min: float64Ptr(0)}
}

func positiveIntRule(field string) ValidationRule {
	return ValidationRule{Field: field, Type: "integer", Min: float64Ptr(1)}
}

func weekdaysCustom(value interface{}) error {
	days, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("must be an array")
	}
	for _, d := range days {
		n, ok := d.(float64)
		if !ok || n != float64(int(n)) || n < 0 || n > 6 {
			return fmt.Errorf("days must be integers from 0 (Sunday) to 6 (Saturday)")
		}
	}
	return nil
}

func uuidListCustom(value interface{}) error {
	ids, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("must be an array")
	}
	for _, id := range ids {
		if validateType(id, ValidationRule{Type: "uuid"}) != nil {
			return fmt.Errorf("must contain valid UUIDs")
		}
	}
	return nil
}

// discountTermRules are shared by create and update
var discountTermRules = []ValidationRule{
	{Field: "title", Type: "string", Required: true, MinLength: 3, MaxLength: 200, Sanitize: true},
	{Field: "description", Type: "string", MaxLength: 5000, Sanitize: true},
	{Field: "promo_code", Type: "string", MinLength: 3, MaxLength: 50, Sanitize: true},
	{Field: "discount_type", Type: "string", Required: true, AllowedValues: discountTypes},
	nonNegativeRule("discount_value"),
	nonNegativeRule("min_purchase_amount"),
	nonNegativeRule("max_discount_amount"),
	{Field: "cashback_percentage", Type: "number", Min: float64Ptr(0), Max: float64Ptr(100)},
	nonNegativeRule("max_cashback_amount"),
	{Field: "start_date", Type: "time", Required: true},
	{Field: "end_date", Type: "time", Required: true},
	{Field: "active_time_start", Type: "string", Pattern: ClockRegex},
	{Field: "active_time_end", Type: "string", Pattern: ClockRegex},
	{Field: "active_days_of_week", Type: "array", Custom: weekdaysCustom},
	{Field: "university_ids", Type: "array", Custom: uuidListCustom},
	positiveIntRule("min_course_year"),
	{Field: "is_first_time_only", Type: "boolean"},
	{Field: "requires_location", Type: "boolean"},
	latitudeRule("latitude"),
	longitudeRule("longitude"),
	{Field: "location_radius", Type: "number", Min: float64Ptr(1)},
	{Field: "usage_limit_per_user", Type: "integer", Min: float64Ptr(0)},
	{Field: "usage_limit_type", Type: "string", AllowedValues: usageLimitTypes},
	positiveIntRule("daily_usage_limit"),
	positiveIntRule("weekly_usage_limit"),
	positiveIntRule("monthly_usage_limit"),
	positiveIntRule("total_usage_limit"),
	{Field: "claim_expiry_hours", Type: "integer", Min: float64Ptr(0), Max: float64Ptr(24 * 365)},
	{Field: "is_featured", Type: "boolean"},
}

// CreateDiscountValidation validates POST /discounts/partner
var CreateDiscountValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: append([]ValidationRule{
		{Field: "brand_id", Type: "uuid"},
		{Field: "category_id", Type: "uuid"},
	}, discountTermRules...),
}

// UpdateDiscountValidation validates PUT /discounts/partner/:discount_id
var UpdateDiscountValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules:       discountTermRules,
}

// RejectDiscountValidation validates POST /discounts/admin/:discount_id/reject
var RejectDiscountValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "reason", Type: "string", Required: true, MinLength: 1, MaxLength: 1000, Sanitize: true},
	},
}

// ClaimDiscountValidation validates POST /discounts/:discount_id/claim
var ClaimDiscountValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		latitudeRule("latitude"),
		longitudeRule("longitude"),
		{Field: "metadata", Type: "object"},
	},
}

// RedeemClaimValidation validates POST /discounts/claims/:code/redeem
var RedeemClaimValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "transaction_amount", Type: "number", Required: true, Min: float64Ptr(0)},
		nonNegativeRule("discount_amount"),
		{Field: "notes", Type: "string", MaxLength: 1000, Sanitize: true},
		latitudeRule("latitude"),
		longitudeRule("longitude"),
	},
}

// StartEmailVerificationValidation validates POST /verification/email/start
var StartEmailVerificationValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "student_email", Type: "email", Required: true},
		{Field: "university_id", Type: "uuid"},
	},
}

// ConfirmEmailVerificationValidation validates POST /verification/email/confirm
var ConfirmEmailVerificationValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", Required: true, MinLength: 6, MaxLength: 6, Sanitize: true},
	},
}

// SubmitDocumentValidation validates POST /verification/document
var SubmitDocumentValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "document_url", Type: "url", Required: true},
		{Field: "university_id", Type: "uuid", Required: true},
	},
}

// ReviewVerificationValidation validates POST /verification/admin/:verification_id/review
var ReviewVerificationValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "approve", Type: "boolean", Required: true},
		{Field: "reason", Type: "string", MaxLength: 1000, Sanitize: true},
	},
}

var paginationRules = []ValidationRule{
	positiveIntRule("page"),
	{Field: "limit", Type: "integer", Min: float64Ptr(1), Max: float64Ptr(100)},
	{Field: "offset", Type: "integer", Min: float64Ptr(0)},
}

// ListDiscountsQueryValidation validates GET /discounts
var ListDiscountsQueryValidation = ValidationConfig{
	Rules: append([]ValidationRule{
		{Field: "category_id", Type: "uuid"},
		{Field: "brand_id", Type: "uuid"},
		{Field: "featured", Type: "string", AllowedValues: []string{"true", "false"}},
		{Field: "search", Type: "string", MaxLength: 100},
	}, paginationRules...),
}

// PaginationQueryValidation validates list endpoints that only page
var PaginationQueryValidation = ValidationConfig{
	Rules: paginationRules,
}

// LocationQueryValidation validates endpoints taking optional lat/lng
var LocationQueryValidation = ValidationConfig{
	Rules: []ValidationRule{
		latitudeRule("lat"),
		longitudeRule("lng"),
		{Field: "limit", Type: "integer", Min: float64Ptr(1), Max: float64Ptr(100)},
	},
}

// FraudAlertsQueryValidation validates GET /fraud-alerts
var FraudAlertsQueryValidation = ValidationConfig{
	Rules: append([]ValidationRule{
		{Field: "status", Type: "string", AllowedValues: []string{"open", "resolved"}},
	}, paginationRules...),
}
