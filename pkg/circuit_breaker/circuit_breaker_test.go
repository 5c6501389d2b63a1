package circuit_breaker_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/court-booking/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var (
	successfulService = func() error { return nil }
	errService        = errors.New("service error")
	failingService    = func() error { return errService }
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	type fields struct {
		recordLength     int
		timeout          time.Duration
		percentile       float64
		recoveryRequests int
	}

	tests := []struct {
		name      string
		fields    fields
		calls     []func() error
		wantState circuit_breaker.Status
	}{
		{
			name:      "stays closed on success",
			fields:    fields{recordLength: 10, timeout: time.Second, percentile: 0.3, recoveryRequests: 2},
			calls:     []func() error{successfulService, successfulService, successfulService},
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "stays closed below percentile",
			fields:    fields{recordLength: 10, timeout: time.Second, percentile: 0.3, recoveryRequests: 2},
			calls:     []func() error{failingService, failingService, successfulService},
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "opens at percentile",
			fields:    fields{recordLength: 10, timeout: time.Second, percentile: 0.3, recoveryRequests: 2},
			calls:     []func() error{failingService, failingService, failingService},
			wantState: circuit_breaker.Open,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(tt.fields.recordLength, tt.fields.timeout, tt.fields.percentile, tt.fields.recoveryRequests)
			for _, call := range tt.calls {
				_ = cb.Call(call)
			}
			require.Equal(t, tt.wantState, cb.State())
		})
	}
}

func Test_circuitBreaker_Recovery(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)}
	var transitions []string
	cb := circuit_breaker.New(4, time.Second, 0.5, 2,
		circuit_breaker.WithClock(clock.Now),
		circuit_breaker.WithOnStateChange(func(from, to circuit_breaker.Status) {
			transitions = append(transitions, from.String()+"->"+to.String())
		}),
	)

	require.ErrorIs(t, cb.Call(failingService), errService)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.False(t, called)

	clock.Advance(2 * time.Second)
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.Closed, cb.State())

	require.Equal(t, []string{"closed->open", "open->half-open", "half-open->closed"}, transitions)
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)}
	cb := circuit_breaker.New(2, time.Second, 0.5, 3, circuit_breaker.WithClock(clock.Now))

	_ = cb.Call(failingService)
	require.Equal(t, circuit_breaker.Open, cb.State())

	clock.Advance(2 * time.Second)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(successfulService))
}
