package secret

import (
	"context"
	"fmt"
	"path"

	"github.com/hashicorp/vault/api"
)

// VaultConfig configures the Vault KV v2 backend.
type VaultConfig struct {
	Address   string
	Token     string
	MountPath string // KV v2 mount, "secret" by default
	Key       string // field inside the secret data
}

// VaultStore reads secrets from a HashiCorp Vault KV v2 engine.
type VaultStore struct {
	client    *api.Client
	mountPath string
	key       string
}

// NewVaultStore creates a Vault-backed Store.
func NewVaultStore(cfg VaultConfig) (*VaultStore, error) {
	vc := api.DefaultConfig()
	vc.Address = cfg.Address

	client, err := api.NewClient(vc)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to create client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	mount := cfg.MountPath
	if mount == "" {
		mount = "secret"
	}
	key := cfg.Key
	if key == "" {
		key = "api_key"
	}

	return &VaultStore{client: client, mountPath: mount, key: key}, nil
}

// GetSecret reads <mount>/data/<name> and returns the configured field.
func (s *VaultStore) GetSecret(ctx context.Context, name string) (string, error) {
	secret, err := s.client.Logical().ReadWithContext(ctx, path.Join(s.mountPath, "data", name))
	if err != nil {
		return "", fmt.Errorf("vault %s: %w: %v", name, ErrUnavailable, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault %s: %w", name, ErrNotFound)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("vault %s: %w", name, ErrNotFound)
	}

	value, ok := data[s.key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("vault %s: field %q: %w", name, s.key, ErrNotFound)
	}

	return value, nil
}
