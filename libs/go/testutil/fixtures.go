package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/campusperks/campusperks-api/libs/go/db"
)

// FixedNow is the reference instant used by service tests: Wednesday 2025-03-12 14:00 UTC.
var FixedNow = time.Date(2025, time.March, 12, 14, 0, 0, 0, time.UTC)

// Clock returns a time source pinned to t
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// CreateTestDiscount returns an active, approved, one-time percentage discount
// that is open for thirty days either side of now.
func CreateTestDiscount(partnerID uuid.UUID, now time.Time) db.Discount {
	return db.Discount{
		ID:                uuid.New(),
		PartnerID:         partnerID,
		Title:             "20% off textbooks",
		Slug:              "20-off-textbooks",
		DiscountType:      "percentage",
		DiscountValue:     20,
		StartDate:         ts(now.AddDate(0, 0, -30)),
		EndDate:           ts(now.AddDate(0, 0, 30)),
		ActiveDaysOfWeek:  []int32{},
		UniversityIds:     []uuid.UUID{},
		UsageLimitPerUser: 1,
		UsageLimitType:    "one_time",
		ClaimExpiryHours:  24,
		IsActive:          true,
		ApprovalStatus:    "approved",
		CreatedAt:         ts(now.AddDate(0, 0, -30)),
		UpdatedAt:         ts(now.AddDate(0, 0, -30)),
	}
}

// CreateTestUser returns a user with the given role and verification status.
func CreateTestUser(role, status string) db.User {
	return db.User{
		ID:                 uuid.New(),
		Email:              "student@example.com",
		FullName:           "Test Student",
		Role:               role,
		VerificationStatus: status,
	}
}

// CreateVerifiedStudent returns a verified student enrolled at universityID in courseYear.
func CreateVerifiedStudent(universityID uuid.UUID, courseYear int32, now time.Time) db.User {
	u := CreateTestUser("student", "verified")
	u.UniversityID = pgtype.UUID{Bytes: universityID, Valid: true}
	u.CourseYear = pgtype.Int4{Int32: courseYear, Valid: true}
	u.VerifiedAt = ts(now.AddDate(0, -1, 0))
	u.VerificationExpiresAt = ts(now.AddDate(0, 11, 0))
	return u
}

// CreateTestClaim returns an open claim that expires expiresIn after now.
func CreateTestClaim(discountID, userID uuid.UUID, code string, now time.Time, expiresIn time.Duration) db.DiscountClaim {
	return db.DiscountClaim{
		ID:         uuid.New(),
		DiscountID: discountID,
		UserID:     userID,
		ClaimCode:  code,
		Status:     "claimed",
		ClaimedAt:  ts(now),
		ExpiresAt:  ts(now.Add(expiresIn)),
		Metadata:   []byte("{}"),
		CreatedAt:  ts(now),
		UpdatedAt:  ts(now),
	}
}

// CreateTestUniversity returns a university owning the given email domains.
func CreateTestUniversity(name string, domains ...string) db.University {
	return db.University{
		ID:           uuid.New(),
		Name:         name,
		EmailDomains: domains,
	}
}
