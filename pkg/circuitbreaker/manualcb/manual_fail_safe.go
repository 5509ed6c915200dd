package manualcb

import (
	"time"

	"github.com/AugurML/augur-client/pkg/metric"
	fscb "github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/rs/zerolog/log"
)

// failsafeBreaker wraps a failsafe-go circuit breaker behind the
// manual permit/record surface: the caller asks for a permit before
// executing and records the outcome afterwards.
type failsafeBreaker struct {
	breaker fscb.CircuitBreaker[any]
}

func NewManualFailsafeBreaker(config *CBConfig) *failsafeBreaker {
	cb := fscb.Builder[any]().
		WithFailureRateThreshold(uint(config.FailureRateThreshold), uint(config.FailureExecutionThreshold), time.Duration(config.FailureThresholdingPeriodInMS)*time.Millisecond).
		WithSuccessThresholdRatio(uint(config.SuccessRatioThreshold), uint(config.SuccessThresholdingCapacity)).
		WithDelay(time.Duration(config.WithDelayInMS) * time.Millisecond).
		OnStateChanged(func(event fscb.StateChangedEvent) {
			log.Debug().Msgf("Circuit Breaker '%s' changed state from %s to %s\n", config.CBName, event.OldState, event.NewState)
			metric.Incr("CB_STATE_CHANGED", []string{"name", config.CBName, "from", event.OldState.String(), "to", event.NewState.String()})
		}).
		Build()
	return &failsafeBreaker{
		breaker: cb,
	}
}

// IsAllowed returns true if a request is permitted.
func (b *failsafeBreaker) IsAllowed() bool {
	return b.breaker.TryAcquirePermit()
}

// RecordSuccess records a successful execution.
func (b *failsafeBreaker) RecordSuccess() {
	b.breaker.RecordSuccess()
}

// RecordFailure records a failed execution.
func (b *failsafeBreaker) RecordFailure() {
	b.breaker.RecordFailure()
}
