package llmprovider

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures WithCircuitBreaker.
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	OnStateChange    func(name string, from, to string)
}

type breakerProvider struct {
	Provider
	cb *gobreaker.CircuitBreaker
}

// WithCircuitBreaker wraps p so that after FailureThreshold consecutive
// failures calls fail immediately with ErrCircuitOpen until OpenTimeout
// elapses. It never retries.
func WithCircuitBreaker(p Provider, s BreakerSettings) Provider {
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}
	if s.OnStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			s.OnStateChange(name, from.String(), to.String())
		}
	}

	return &breakerProvider{Provider: p, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *breakerProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.Provider.GenerateContent(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &ProviderError{Provider: b.Name(), Err: ErrCircuitOpen}
		}
		return nil, err
	}
	return out.(*Response), nil
}
