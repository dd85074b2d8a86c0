package business

import "github.com/google/uuid"

// EmailJobType selects the message a mail worker renders
type EmailJobType string

const (
	EmailJobVerificationCode   EmailJobType = "verification_code"
	EmailJobVerificationResult EmailJobType = "verification_result"
	EmailJobReverifyReminder   EmailJobType = "reverification_reminder"
	EmailJobGracePeriodStarted EmailJobType = "grace_period_started"
	EmailJobDiscountReviewed   EmailJobType = "discount_reviewed"
	EmailJobRedemptionReceipt  EmailJobType = "redemption_receipt"
)

// EmailJob is the queued unit of work for the mail worker.
type EmailJob struct {
	ID       uuid.UUID         `json:"id"`
	Type     EmailJobType      `json:"type"`
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Data     map[string]string `json:"data"`
	Attempts int               `json:"attempts"`
}
