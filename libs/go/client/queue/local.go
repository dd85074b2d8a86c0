package queue

import (
	"context"
	"sync"

	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalJobQueue delivers jobs on background goroutines. It backs the local
// stage, where no SQS queue or mail worker is running.
type LocalJobQueue struct {
	sender interfaces.EmailSender
	policy RetryPolicy
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewLocalJobQueue creates an in-process job queue
func NewLocalJobQueue(sender interfaces.EmailSender, policy RetryPolicy) *LocalJobQueue {
	return &LocalJobQueue{sender: sender, policy: policy, logger: logger.Log}
}

// Enqueue implements interfaces.JobQueue. It never blocks on delivery.
func (q *LocalJobQueue) Enqueue(_ context.Context, job business.EmailJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		// detached from the request context so delivery outlives the response
		if err := DeliverWithRetry(context.Background(), q.sender, job, q.policy); err != nil {
			q.logger.Error("email job dropped after retries",
				zap.String("job_id", job.ID.String()),
				zap.String("type", string(job.Type)),
				zap.Error(err))
		}
	}()
	return nil
}

// Wait blocks until in-flight deliveries finish
func (q *LocalJobQueue) Wait() {
	q.wg.Wait()
}
