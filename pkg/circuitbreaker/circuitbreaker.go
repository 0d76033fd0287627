package circuitbreaker

import (
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var (
	// MaxNumOfFailingRequests is the number of requests after which the
	// breaker starts evaluating the failing ratio.
	MaxNumOfFailingRequests = 10
	// FailingRatio is the ratio of failed requests that trips the breaker.
	FailingRatio = 0.6
)

// NewCircuitBreaker is a factory function returning a *gobreaker.CircuitBreaker
// with a default state-changing function that activates if the overall number
// of failing requests have reached a tweakable MaxNumOfFailingRequests cap and
// the failing ratio has met the FailingRatio.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return int(counts.Requests) > MaxNumOfFailingRequests && ratio >= FailingRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				log.Warnf("%s: too many failures, stop allowing requests", name)
			}
			if from == gobreaker.StateOpen && to == gobreaker.StateHalfOpen {
				log.Infof("%s: checking status", name)
			}
			if from == gobreaker.StateHalfOpen && to == gobreaker.StateClosed {
				log.Infof("%s: restart allowing requests", name)
			}
		},
	})
}
