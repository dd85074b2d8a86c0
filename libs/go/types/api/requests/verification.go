package requests

// StartEmailVerificationRequest represents the request body for starting email verification
type StartEmailVerificationRequest struct {
	StudentEmail string `json:"student_email" binding:"required"`
	UniversityID string `json:"university_id,omitempty"`
}

// ConfirmEmailVerificationRequest represents the request body for confirming a code
type ConfirmEmailVerificationRequest struct {
	Code string `json:"code" binding:"required"`
}

// SubmitDocumentRequest represents the request body for document verification
type SubmitDocumentRequest struct {
	DocumentURL  string `json:"document_url" binding:"required"`
	UniversityID string `json:"university_id" binding:"required"`
}

// ReviewVerificationRequest represents an admin decision
type ReviewVerificationRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty"`
}
