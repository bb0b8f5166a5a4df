package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"},
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			}},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: false, Priority: 1, Model: "gpt-3.5-turbo"},
			}},
			wantErr: true,
		},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, tt.cfg.RetryAttempts, "retry attempts are clamped to a single try")
		})
	}
}

func TestValidateSecretConfig(t *testing.T) {
	assert.NoError(t, validateSecretConfig(SecretConfig{Backend: "env", Name: "OPENAI_API_KEY"}))
	assert.NoError(t, validateSecretConfig(SecretConfig{Backend: "aws", Name: "prod/openai"}))
	assert.Error(t, validateSecretConfig(SecretConfig{Backend: "vault", Name: "openai"}))
	assert.NoError(t, validateSecretConfig(SecretConfig{Backend: "vault", Name: "openai", VaultAddress: "http://vault:8200"}))
	assert.Error(t, validateSecretConfig(SecretConfig{Backend: "ssm", Name: "x"}))
	assert.Error(t, validateSecretConfig(SecretConfig{Backend: "env"}))
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("MONTBLANC_TEST_KEY", "sk-test")

	assert.Equal(t, "", expandEnvVar(""))
	assert.Equal(t, "literal", expandEnvVar("literal"))
	assert.Equal(t, "sk-test", expandEnvVar("${MONTBLANC_TEST_KEY}"))
	assert.Equal(t, "", expandEnvVar("${MONTBLANC_DEFINITELY_UNSET}"))
}
