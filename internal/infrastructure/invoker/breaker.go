package invoker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = gobreaker.ErrOpenState

// BreakerConfig holds configuration for the circuit breaker.
type BreakerConfig struct {
	// Name identifies this breaker in metrics and logs.
	Name string

	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32

	// Interval clears the closed-state counts; 0 never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before moving to half-open.
	Timeout time.Duration

	// FailureRatio trips the breaker once MinRequests have been seen.
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerConfig returns the defaults used for the gateway.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// BreakerInvoker wraps a RemoteInvoker with circuit breaker protection. Carrier
// faults count as successes: the carrier answered, the request was wrong.
type BreakerInvoker struct {
	next    ports.RemoteInvoker
	breaker *gobreaker.CircuitBreaker[*ports.Response]
}

// NewBreakerInvoker wraps next.
func NewBreakerInvoker(next ports.RemoteInvoker, cfg BreakerConfig, log zerolog.Logger) *BreakerInvoker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			var fault *ports.RemoteFault
			return err == nil || errors.As(err, &fault) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	return &BreakerInvoker{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*ports.Response](settings),
	}
}

// Invoke runs the call through the breaker.
func (b *BreakerInvoker) Invoke(ctx context.Context, op ports.Operation, docs ...any) (*ports.Response, error) {
	return b.breaker.Execute(func() (*ports.Response, error) {
		return b.next.Invoke(ctx, op, docs...)
	})
}

// State returns the current state of the circuit breaker.
func (b *BreakerInvoker) State() gobreaker.State {
	return b.breaker.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
