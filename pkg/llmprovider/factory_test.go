package llmprovider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montblanc-assistant/config"
	"montblanc-assistant/pkg/llmprovider"
	"montblanc-assistant/pkg/log"
)

func TestInitializeProviders_SortsAndFilters(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g-key", Model: "gemini-2.5-flash"},
			{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo", Timeout: "10s"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "d", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg, "sk-from-secret")
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "openai", providers[0].Name())
	assert.Equal(t, "gpt-3.5-turbo", providers[0].Model())
	assert.Equal(t, "gemini", providers[1].Name())
}

func TestInitializeProviders_Errors(t *testing.T) {
	_, err := llmprovider.InitializeProviders(nil, "")
	assert.Error(t, err)

	_, err = llmprovider.InitializeProviders(&config.LLMConfig{}, "")
	assert.ErrorIs(t, err, llmprovider.ErrNoProvidersConfigured)

	_, err = llmprovider.InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "claude", Enabled: true, Priority: 1, APIKey: "k", Model: "x"},
	}}, "")
	assert.Error(t, err)

	_, err = llmprovider.InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"},
	}}, "")
	assert.Error(t, err, "no key inline and no key from the secret store")
}

type countingStore struct {
	calls int
	value string
	err   error
}

func (s *countingStore) GetSecret(ctx context.Context, name string) (string, error) {
	s.calls++
	return s.value, s.err
}

func TestNewLazyManager_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"model":"gpt-3.5-turbo","choices":[{"message":{"role":"assistant","content":"Hello"}}]}`))
	}))
	defer ts.Close()

	store := &countingStore{value: "sk-secret"}
	lazy := llmprovider.NewLazyManager(llmprovider.BootstrapOptions{
		LLM: &config.LLMConfig{
			RetryAttempts: 1,
			Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo", BaseURL: ts.URL},
			},
		},
		Store:      store,
		SecretName: "prod/openai",
		Logger:     log.NewNop(),
	})

	for i := 0; i < 3; i++ {
		resp, err := lazy.GenerateContent(context.Background(), &llmprovider.Request{
			Messages: []llmprovider.Message{{Role: llmprovider.RoleUser, Text: "こんにちは"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello", resp.Text)
	}

	assert.Equal(t, 1, store.calls, "secret is fetched once per process")
}

func TestNewLazyManager_SecretFailure(t *testing.T) {
	store := &countingStore{err: errors.New("store down")}
	lazy := llmprovider.NewLazyManager(llmprovider.BootstrapOptions{
		LLM: &config.LLMConfig{Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"},
		}},
		Store:      store,
		SecretName: "prod/openai",
		Logger:     log.NewNop(),
	})

	_, err := lazy.GenerateContent(context.Background(), &llmprovider.Request{})
	assert.ErrorIs(t, err, llmprovider.ErrCredentials)

	_, err = lazy.GenerateContent(context.Background(), &llmprovider.Request{})
	assert.Error(t, err)
	assert.Equal(t, 2, store.calls, "failed init is not cached")
}
