package secret

import (
	"context"
	"fmt"
)

// Config selects and configures a Store backend.
type Config struct {
	Backend string // "env", "aws" or "vault"
	Key     string

	Vault     VaultConfig
	AWSRegion string
}

// New creates the Store selected by cfg.Backend.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "env":
		return NewEnvStore(), nil
	case "aws":
		return NewAWSStore(ctx, cfg.AWSRegion, cfg.Key)
	case "vault":
		vc := cfg.Vault
		if vc.Key == "" {
			vc.Key = cfg.Key
		}
		return NewVaultStore(vc)
	default:
		return nil, fmt.Errorf("unknown secret backend: %s", cfg.Backend)
	}
}
