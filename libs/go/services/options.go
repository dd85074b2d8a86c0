package services

import (
	"time"
)

// Option configures the clock and time zone of the discount services.
type Option func(*serviceOptions)

type serviceOptions struct {
	now      func() time.Time
	location *time.Location
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}

// WithLocation sets the platform time zone used for time-of-day, weekday and
// calendar-period rules.
func WithLocation(loc *time.Location) Option {
	return func(o *serviceOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

func applyOptions(opts []Option) serviceOptions {
	o := serviceOptions{now: time.Now, location: time.UTC}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
