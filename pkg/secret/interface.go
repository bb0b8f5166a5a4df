package secret

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the secret (or the requested field) does not exist.
	ErrNotFound = errors.New("secret not found")

	// ErrUnavailable indicates the secret store could not be reached.
	ErrUnavailable = errors.New("secret store unavailable")
)

// Store retrieves named secrets.
// Implementations are safe for concurrent use.
type Store interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
