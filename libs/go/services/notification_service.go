package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService turns domain events into queued email jobs. Enqueue
// failures are logged and never propagate.
type NotificationService struct {
	queue  interfaces.JobQueue
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(queue interfaces.JobQueue) *NotificationService {
	return &NotificationService{
		queue:  queue,
		logger: logger.Log,
	}
}

// VerificationCode sends the one-time code for student email verification
func (s *NotificationService) VerificationCode(ctx context.Context, to, code string, expiresAt time.Time) {
	s.enqueue(ctx, business.EmailJob{
		Type:    business.EmailJobVerificationCode,
		To:      to,
		Subject: "Your student verification code",
		Data: map[string]string{
			"code":       code,
			"expires_at": expiresAt.UTC().Format(time.RFC3339),
		},
	})
}

// VerificationResult tells the student the outcome of a verification
func (s *NotificationService) VerificationResult(ctx context.Context, to string, status business.VerificationStatus, reason string) {
	s.enqueue(ctx, business.EmailJob{
		Type:    business.EmailJobVerificationResult,
		To:      to,
		Subject: "Your student verification status",
		Data: map[string]string{
			"status": string(status),
			"reason": reason,
		},
	})
}

// ReverificationReminder warns that the student's verification is about to lapse
func (s *NotificationService) ReverificationReminder(ctx context.Context, to string, expiresAt time.Time) {
	s.enqueue(ctx, business.EmailJob{
		Type:    business.EmailJobReverifyReminder,
		To:      to,
		Subject: "Please re-verify your student status",
		Data: map[string]string{
			"expires_at": expiresAt.UTC().Format(time.RFC3339),
		},
	})
}

// GracePeriodStarted tells the student their verification lapsed
func (s *NotificationService) GracePeriodStarted(ctx context.Context, to string, endsAt time.Time) {
	s.enqueue(ctx, business.EmailJob{
		Type:    business.EmailJobGracePeriodStarted,
		To:      to,
		Subject: "Your student verification has expired",
		Data: map[string]string{
			"grace_period_ends_at": endsAt.UTC().Format(time.RFC3339),
		},
	})
}

// DiscountReviewed tells the partner an approval decision was made
func (s *NotificationService) DiscountReviewed(ctx context.Context, to, title string, status business.ApprovalStatus, reason string) {
	s.enqueue(ctx, business.EmailJob{
		Type:    business.EmailJobDiscountReviewed,
		To:      to,
		Subject: fmt.Sprintf("Your discount %q was %s", title, status),
		Data: map[string]string{
			"title":  title,
			"status": string(status),
			"reason": reason,
		},
	})
}

// RedemptionReceipt confirms a redemption to the student
func (s *NotificationService) RedemptionReceipt(ctx context.Context, to, title, claimCode string, amounts business.RedemptionAmounts) {
	data := map[string]string{
		"title":              title,
		"claim_code":         claimCode,
		"transaction_amount": fmt.Sprintf("%.2f", amounts.TransactionAmount),
		"discount_amount":    fmt.Sprintf("%.2f", amounts.DiscountAmount),
		"savings":            fmt.Sprintf("%.2f", amounts.Savings()),
	}
	if amounts.CashbackAmount != nil {
		data["cashback_amount"] = fmt.Sprintf("%.2f", *amounts.CashbackAmount)
	}
	s.enqueue(ctx, business.EmailJob{
		Type:    business.EmailJobRedemptionReceipt,
		To:      to,
		Subject: fmt.Sprintf("You saved %.2f on %s", amounts.Savings(), title),
		Data:    data,
	})
}

func (s *NotificationService) enqueue(ctx context.Context, job business.EmailJob) {
	if job.To == "" {
		return
	}
	job.ID = uuid.New()
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("failed to enqueue email job",
			zap.String("job_id", job.ID.String()),
			zap.String("type", string(job.Type)),
			zap.Error(err))
	}
}
