package llmprovider

import (
	"context"
	"fmt"
	"time"

	"montblanc-assistant/config"
	"montblanc-assistant/pkg/log"
	"montblanc-assistant/pkg/secret"
)

// BootstrapOptions are the collaborators needed to build the completion client.
type BootstrapOptions struct {
	LLM        *config.LLMConfig
	Store      secret.Store
	SecretName string
	Logger     log.Logger

	// OnBreakerStateChange is invoked when a provider circuit changes state.
	OnBreakerStateChange func(name, from, to string)
}

// NewLazyManager returns a Lazy generator that, on first use, fetches the API
// key from the secret store (when a provider needs it), initializes providers
// and wraps them in a Manager.
func NewLazyManager(opts BootstrapOptions) *Lazy {
	return NewLazy(func(ctx context.Context) (Generator, error) {
		var apiKey string
		if NeedsSecret(opts.LLM) {
			key, err := opts.Store.GetSecret(ctx, opts.SecretName)
			if err != nil {
				opts.Logger.Errorf(ctx, "pkg.llmprovider.NewLazyManager: failed to fetch API key %s: %v", opts.SecretName, err)
				return nil, fmt.Errorf("%w: %w", ErrCredentials, err)
			}
			apiKey = key
		}

		providers, err := InitializeProviders(opts.LLM, apiKey)
		if err != nil {
			return nil, err
		}

		if opts.LLM.CircuitBreaker.Enabled {
			openTimeout, _ := time.ParseDuration(opts.LLM.CircuitBreaker.OpenTimeout)
			for i, p := range providers {
				providers[i] = WithCircuitBreaker(p, BreakerSettings{
					FailureThreshold: uint32(opts.LLM.CircuitBreaker.FailureThreshold),
					OpenTimeout:      openTimeout,
					OnStateChange:    opts.OnBreakerStateChange,
				})
			}
		}

		retryDelay, _ := time.ParseDuration(opts.LLM.RetryDelay)

		opts.Logger.Infof(ctx, "pkg.llmprovider.NewLazyManager: initialized %d provider(s), primary=%s/%s",
			len(providers), providers[0].Name(), providers[0].Model())

		return NewManager(providers, &Config{
			FallbackEnabled: opts.LLM.FallbackEnabled,
			RetryAttempts:   opts.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
		}, opts.Logger), nil
	})
}
