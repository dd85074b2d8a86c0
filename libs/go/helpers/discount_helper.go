package helpers

import (
	"encoding/json"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/types/api/responses"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/jackc/pgx/v5/pgtype"
)

func uuidPtrString(id pgtype.UUID) *string {
	if p := NullableUUIDToPtr(id); p != nil {
		s := p.String()
		return &s
	}
	return nil
}

func unixPtr(t pgtype.Timestamptz) *int64 {
	if !t.Valid {
		return nil
	}
	v := t.Time.Unix()
	return &v
}

// ToDiscountResponse converts a discount row to its API representation
func ToDiscountResponse(d db.Discount) responses.DiscountResponse {
	universityIDs := make([]string, 0, len(d.UniversityIds))
	for _, id := range d.UniversityIds {
		universityIDs = append(universityIDs, id.String())
	}

	return responses.DiscountResponse{
		ID:                 d.ID.String(),
		Object:             "discount",
		PartnerID:          d.PartnerID.String(),
		BrandID:            uuidPtrString(d.BrandID),
		CategoryID:         uuidPtrString(d.CategoryID),
		Title:              d.Title,
		Slug:               d.Slug,
		Description:        d.Description.String,
		PromoCode:          NullableTextToPtr(d.PromoCode),
		DiscountType:       d.DiscountType,
		DiscountValue:      d.DiscountValue,
		MinPurchaseAmount:  d.MinPurchaseAmount,
		MaxDiscountAmount:  d.MaxDiscountAmount,
		CashbackPercentage: d.CashbackPercentage,
		MaxCashbackAmount:  d.MaxCashbackAmount,
		StartDate:          d.StartDate.Time.Unix(),
		EndDate:            d.EndDate.Time.Unix(),
		ActiveTimeStart:    NullableTextToPtr(d.ActiveTimeStart),
		ActiveTimeEnd:      NullableTextToPtr(d.ActiveTimeEnd),
		ActiveDaysOfWeek:   d.ActiveDaysOfWeek,
		UniversityIDs:      universityIDs,
		MinCourseYear:      NullableInt4ToPtr(d.MinCourseYear),
		IsFirstTimeOnly:    d.IsFirstTimeOnly,
		RequiresLocation:   d.RequiresLocation,
		Latitude:           d.Latitude,
		Longitude:          d.Longitude,
		LocationRadius:     d.LocationRadius,
		UsageLimitPerUser:  d.UsageLimitPerUser,
		UsageLimitType:     d.UsageLimitType,
		TotalUsageLimit:    NullableInt4ToPtr(d.TotalUsageLimit),
		CurrentUsageCount:  d.CurrentUsageCount,
		ClaimExpiryHours:   d.ClaimExpiryHours,
		IsActive:           d.IsActive,
		IsFeatured:         d.IsFeatured,
		ApprovalStatus:     d.ApprovalStatus,
		RejectionReason:    NullableTextToPtr(d.RejectionReason),
		ViewCount:          d.ViewCount,
		ClickCount:         d.ClickCount,
		ClaimCount:         d.ClaimCount,
		RedemptionCount:    d.RedemptionCount,
		TotalSavings:       d.TotalSavings,
		CreatedAt:          d.CreatedAt.Time.Unix(),
		UpdatedAt:          d.UpdatedAt.Time.Unix(),
	}
}

// ToDiscountResponses converts a slice of discount rows
func ToDiscountResponses(discounts []db.Discount) []responses.DiscountResponse {
	out := make([]responses.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, ToDiscountResponse(d))
	}
	return out
}

// ToClaimResponse converts a claim row to its API representation
func ToClaimResponse(c db.DiscountClaim) responses.ClaimResponse {
	return responses.ClaimResponse{
		ID:                c.ID.String(),
		Object:            "discount_claim",
		DiscountID:        c.DiscountID.String(),
		UserID:            c.UserID.String(),
		ClaimCode:         c.ClaimCode,
		Status:            c.Status,
		ClaimedAt:         c.ClaimedAt.Time.Unix(),
		ExpiresAt:         c.ExpiresAt.Time.Unix(),
		RedeemedAt:        unixPtr(c.RedeemedAt),
		RedeemedBy:        uuidPtrString(c.RedeemedBy),
		TransactionAmount: c.TransactionAmount,
		DiscountAmount:    c.DiscountAmount,
		CashbackAmount:    c.CashbackAmount,
		Notes:             NullableTextToPtr(c.Notes),
	}
}

// ToClaimResponses converts a slice of claim rows
func ToClaimResponses(claims []db.DiscountClaim) []responses.ClaimResponse {
	out := make([]responses.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, ToClaimResponse(c))
	}
	return out
}

// ToRedemptionResponse combines the redeemed claim with its computed amounts
func ToRedemptionResponse(c db.DiscountClaim, amounts business.RedemptionAmounts) responses.RedemptionResponse {
	return responses.RedemptionResponse{
		Claim:          ToClaimResponse(c),
		DiscountAmount: amounts.DiscountAmount,
		CashbackAmount: amounts.CashbackAmount,
		TotalSavings:   RoundMoney(amounts.Savings()),
	}
}

// ToStatsResponse converts aggregate discount statistics
func ToStatsResponse(s db.GetDiscountStatsRow) responses.DiscountStatsResponse {
	var rate float64
	if s.TotalClaims > 0 {
		rate = RoundMoney(float64(s.TotalRedemptions) / float64(s.TotalClaims) * 100)
	}
	return responses.DiscountStatsResponse{
		TotalDiscounts:    s.TotalDiscounts,
		ActiveDiscounts:   s.ActiveDiscounts,
		PendingDiscounts:  s.PendingDiscounts,
		ApprovedDiscounts: s.ApprovedDiscounts,
		RejectedDiscounts: s.RejectedDiscounts,
		TotalClaims:       s.TotalClaims,
		TotalRedemptions:  s.TotalRedemptions,
		TotalSavings:      s.TotalSavings,
		RedemptionRate:    rate,
	}
}

// ToVerificationResponse converts a verification row
func ToVerificationResponse(v db.StudentVerification) responses.VerificationResponse {
	return responses.VerificationResponse{
		ID:              v.ID.String(),
		Object:          "student_verification",
		UserID:          v.UserID.String(),
		Method:          v.Method,
		StudentEmail:    NullableTextToPtr(v.StudentEmail),
		UniversityID:    uuidPtrString(v.UniversityID),
		DocumentURL:     NullableTextToPtr(v.DocumentUrl),
		Status:          v.Status,
		Attempts:        v.Attempts,
		FraudScore:      v.FraudScore,
		RejectionReason: NullableTextToPtr(v.RejectionReason),
		CreatedAt:       v.CreatedAt.Time.Unix(),
	}
}

// ToVerificationStatusResponse summarises a user's verification state
func ToVerificationStatusResponse(u db.User, latest *db.StudentVerification) responses.VerificationStatusResponse {
	resp := responses.VerificationStatusResponse{
		UserID:            u.ID.String(),
		Status:            u.VerificationStatus,
		UniversityID:      uuidPtrString(u.UniversityID),
		StudentEmail:      NullableTextToPtr(u.StudentEmail),
		VerifiedAt:        unixPtr(u.VerifiedAt),
		ExpiresAt:         unixPtr(u.VerificationExpiresAt),
		GracePeriodEndsAt: unixPtr(u.GracePeriodEndsAt),
		CanClaimDiscounts: business.VerificationStatus(u.VerificationStatus).CanClaimDiscounts(),
	}
	if latest != nil {
		v := ToVerificationResponse(*latest)
		resp.LatestVerification = &v
	}
	return resp
}

// ToFraudAlertResponse converts a fraud alert row
func ToFraudAlertResponse(a db.FraudAlert) responses.FraudAlertResponse {
	return responses.FraudAlertResponse{
		ID:         a.ID.String(),
		Object:     "fraud_alert",
		UserID:     a.UserID.String(),
		DiscountID: uuidPtrString(a.DiscountID),
		ClaimID:    uuidPtrString(a.ClaimID),
		AlertType:  a.AlertType,
		Severity:   a.Severity,
		Score:      a.Score,
		Details:    json.RawMessage(a.Details),
		Status:     a.Status,
		CreatedAt:  a.CreatedAt.Time.Unix(),
	}
}
