package params

import "github.com/google/uuid"

// StartEmailVerificationParams contains parameters for sending a verification code
type StartEmailVerificationParams struct {
	UserID       uuid.UUID
	StudentEmail string
	UniversityID *uuid.UUID
}

// ConfirmEmailVerificationParams contains the code a student received
type ConfirmEmailVerificationParams struct {
	UserID uuid.UUID
	Code   string
}

// SubmitDocumentParams contains parameters for manual document verification
type SubmitDocumentParams struct {
	UserID       uuid.UUID
	DocumentURL  string
	UniversityID uuid.UUID
}

// ReviewVerificationParams contains an admin decision on a pending verification
type ReviewVerificationParams struct {
	VerificationID uuid.UUID
	ReviewerID     uuid.UUID
	Approve        bool
	Reason         string
}
