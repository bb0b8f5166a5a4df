package secret

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvStore reads secrets from process environment variables.
type EnvStore struct {
	lookup func(string) (string, bool)
}

// NewEnvStore creates a Store backed by os.LookupEnv.
func NewEnvStore() *EnvStore {
	return &EnvStore{lookup: os.LookupEnv}
}

// GetSecret returns the value of the environment variable called name.
func (s *EnvStore) GetSecret(ctx context.Context, name string) (string, error) {
	v, ok := s.lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("env %s: %w", name, ErrNotFound)
	}
	return v, nil
}
