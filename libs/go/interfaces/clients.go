package interfaces

import (
	"context"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/types/business"
)

// JobQueue accepts email jobs for asynchronous delivery.
type JobQueue interface {
	Enqueue(ctx context.Context, job business.EmailJob) error
}

// EmailSender renders and delivers a single email job.
type EmailSender interface {
	Send(ctx context.Context, job business.EmailJob) error
}

// Cache is a byte-oriented key/value cache with expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Locker grants short-lived exclusive leases across processes.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool, err error)
}
