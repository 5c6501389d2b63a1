package circuit_breaker

import "time"

func WithClock(now func() time.Time) Option {
	return withClock(now)
}
