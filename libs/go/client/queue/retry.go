package queue

import (
	"context"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/metrics"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryPolicy bounds delivery attempts for one job
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy is three attempts with exponential backoff from two seconds.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:     3,
	InitialInterval: 2 * time.Second,
	MaxInterval:     30 * time.Second,
}

// DeliverWithRetry sends job through sender, retrying failures per policy.
func DeliverWithRetry(ctx context.Context, sender interfaces.EmailSender, job business.EmailJob, policy RetryPolicy) error {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = policy.InitialInterval
	expBackoff.MaxInterval = policy.MaxInterval
	expBackoff.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++
		job.Attempts = attempt
		err := sender.Send(ctx, job)
		if err != nil {
			logger.Log.Warn("email delivery attempt failed",
				zap.String("job_id", job.ID.String()),
				zap.String("type", string(job.Type)),
				zap.Int("attempt", attempt),
				zap.Error(err))
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(policy.MaxAttempts-1)), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		metrics.EmailJobs.WithLabelValues(string(job.Type), "failed").Inc()
		return err
	}

	metrics.EmailJobs.WithLabelValues(string(job.Type), "sent").Inc()
	return nil
}
