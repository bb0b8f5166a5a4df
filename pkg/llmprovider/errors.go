package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrCredentials indicates the API key could not be retrieved
	ErrCredentials = errors.New("credentials unavailable")

	// ErrCircuitOpen indicates the provider is short-circuited after repeated failures
	ErrCircuitOpen = errors.New("provider circuit open")

	// ErrNotReady indicates the lazy client has not been built yet
	ErrNotReady = errors.New("completion client not initialized")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
