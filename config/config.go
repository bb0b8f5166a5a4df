package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Lambda host
	Lambda LambdaConfig

	// Credential retrieval for the completion service
	Secret SecretConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Skill behaviour
	Skill SkillConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LambdaConfig selects the wire format the Lambda entrypoint terminates.
type LambdaConfig struct {
	EventFormat string // "alexa" or "apigateway"
}

// SecretConfig describes where the completion-service API key lives.
type SecretConfig struct {
	Backend string // "vault", "aws" or "env"
	Name    string // secret id / vault path / env var name
	Key     string // field inside a structured secret (vault, JSON aws secret)

	VaultAddress   string
	VaultToken     string
	VaultMountPath string

	AWSRegion string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	CircuitBreaker  BreakerConfig    `yaml:"circuit_breaker"`
}

// BreakerConfig configures the circuit breaker placed in front of each provider.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      string
}

// ProviderConfig holds configuration for a single LLM provider.
// APIKey may be left empty, in which case the key is fetched from the
// secret store on first use.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// SkillConfig holds the response shaping and completion budgets.
type SkillConfig struct {
	CardTitle string
	Ask       CompletionBudget
	Translate CompletionBudget
}

// CompletionBudget bounds a single completion call.
type CompletionBudget struct {
	MaxTokens   int
	Temperature float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Lambda.EventFormat = viper.GetString("lambda.event_format")

	// Secrets. SECRET_NAME and AWS_REGION are what the Lambda runtime provides.
	cfg.Secret.Backend = viper.GetString("secret.backend")
	cfg.Secret.Name = viper.GetString("secret.name")
	if name := viper.GetString("secret_name"); name != "" {
		cfg.Secret.Name = name
	}
	cfg.Secret.Key = viper.GetString("secret.key")
	cfg.Secret.VaultAddress = viper.GetString("secret.vault.address")
	if addr := viper.GetString("vault_addr"); addr != "" {
		cfg.Secret.VaultAddress = addr
	}
	cfg.Secret.VaultToken = viper.GetString("secret.vault.token")
	if token := viper.GetString("vault_token"); token != "" {
		cfg.Secret.VaultToken = token
	}
	cfg.Secret.VaultMountPath = viper.GetString("secret.vault.mount_path")
	cfg.Secret.AWSRegion = viper.GetString("secret.aws.region")
	if region := viper.GetString("aws_region"); region != "" {
		cfg.Secret.AWSRegion = region
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.CircuitBreaker.Enabled = viper.GetBool("llm.circuit_breaker.enabled")
	cfg.LLM.CircuitBreaker.FailureThreshold = viper.GetInt("llm.circuit_breaker.failure_threshold")
	cfg.LLM.CircuitBreaker.OpenTimeout = viper.GetString("llm.circuit_breaker.open_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers list the skill talks to a single OpenAI model.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "openai",
			Enabled:  true,
			Priority: 1,
			APIKey:   os.Getenv("OPENAI_API_KEY"),
			Model:    "gpt-3.5-turbo",
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Skill
	cfg.Skill.CardTitle = viper.GetString("skill.card_title")
	cfg.Skill.Ask.MaxTokens = viper.GetInt("skill.ask.max_tokens")
	cfg.Skill.Ask.Temperature = viper.GetFloat64("skill.ask.temperature")
	cfg.Skill.Translate.MaxTokens = viper.GetInt("skill.translate.max_tokens")
	cfg.Skill.Translate.Temperature = viper.GetFloat64("skill.translate.temperature")

	if err := validateSecretConfig(cfg.Secret); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("lambda.event_format", "alexa")

	viper.SetDefault("secret.backend", "env")
	viper.SetDefault("secret.name", "OPENAI_API_KEY")
	viper.SetDefault("secret.key", "api_key")
	viper.SetDefault("secret.vault.mount_path", "secret")

	// No retries and no fallback: a voice turn has no retry budget.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "0s")
	viper.SetDefault("llm.circuit_breaker.enabled", false)
	viper.SetDefault("llm.circuit_breaker.failure_threshold", 5)
	viper.SetDefault("llm.circuit_breaker.open_timeout", "30s")

	viper.SetDefault("skill.card_title", "Montblanc - AI Assistant")
	viper.SetDefault("skill.ask.max_tokens", 300)
	viper.SetDefault("skill.ask.temperature", 0.7)
	viper.SetDefault("skill.translate.max_tokens", 100)
	viper.SetDefault("skill.translate.temperature", 0.2)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders mean "fetch from the secret store".
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}

	return nil
}

func validateSecretConfig(cfg SecretConfig) error {
	switch cfg.Backend {
	case "env", "aws":
	case "vault":
		if cfg.VaultAddress == "" {
			return fmt.Errorf("secret backend vault: address is required")
		}
	default:
		return fmt.Errorf("unknown secret backend: %q", cfg.Backend)
	}
	if cfg.Name == "" {
		return fmt.Errorf("secret name is required")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
