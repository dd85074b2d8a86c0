// Package mailworker consumes email jobs from SQS and delivers them through
// Resend.
package mailworker

import (
	"context"

	"github.com/campusperks/campusperks-api/libs/go/client/queue"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Application holds the mail worker dependencies
type Application struct {
	sender interfaces.EmailSender
	policy queue.RetryPolicy
	logger *zap.Logger
}

// recordResult is the outcome of one SQS record
type recordResult struct {
	MessageID string
	JobID     string
	Delivered bool
	Dropped   bool
	Err       error
}

// NewApplication creates the mail worker application
func NewApplication(sender interfaces.EmailSender, policy queue.RetryPolicy) *Application {
	return &Application{sender: sender, policy: policy, logger: logger.Log}
}

// HandleSQSEvent delivers each record. Records that still fail after the
// retry policy are reported as batch item failures so SQS redelivers only
// those. Malformed records are dropped.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("mail worker handling SQS event", zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	delivered, dropped := 0, 0

	for _, record := range event.Records {
		result := app.processRecord(ctx, record)
		switch {
		case result.Delivered:
			delivered++
		case result.Dropped:
			dropped++
		default:
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	app.logger.Info("mail worker batch completed",
		zap.Int("total", len(event.Records)),
		zap.Int("delivered", delivered),
		zap.Int("dropped", dropped),
		zap.Int("failed", len(response.BatchItemFailures)))

	return response, nil
}

func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) recordResult {
	result := recordResult{MessageID: record.MessageId}

	job, err := queue.DecodeJob(record.Body)
	if err != nil {
		result.Dropped = true
		result.Err = errors.Wrapf(err, "message %s", record.MessageId)
		app.logger.Error("dropping malformed email job",
			zap.String("message_id", record.MessageId),
			zap.Error(result.Err))
		return result
	}
	result.JobID = job.ID.String()

	if err := queue.DeliverWithRetry(ctx, app.sender, job, app.policy); err != nil {
		result.Err = errors.Wrapf(err, "deliver job %s", job.ID)
		app.logger.Error("email job delivery failed, returning to queue",
			zap.String("message_id", record.MessageId),
			zap.String("job_id", result.JobID),
			zap.String("type", string(job.Type)),
			zap.String("receive_count", record.Attributes["ApproximateReceiveCount"]),
			zap.Error(result.Err))
		return result
	}

	result.Delivered = true
	return result
}
