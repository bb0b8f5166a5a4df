package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"

	"montblanc-assistant/config"
	"montblanc-assistant/internal/metrics"
	skillLambda "montblanc-assistant/internal/skill/delivery/lambda"
	"montblanc-assistant/internal/skill/usecase"
	"montblanc-assistant/pkg/llmprovider"
	"montblanc-assistant/pkg/log"
	"montblanc-assistant/pkg/secret"
)

// Event formats accepted by lambda.event_format.
const (
	eventFormatAlexa      = "alexa"
	eventFormatAPIGateway = "apigateway"
)

// main runs the skill inside the AWS Lambda runtime. The completion client
// is shared by every invocation served by this process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting Montblanc Assistant Lambda (format=%s)", cfg.Lambda.EventFormat)

	store, err := secret.New(ctx, secret.Config{
		Backend: cfg.Secret.Backend,
		Key:     cfg.Secret.Key,
		Vault: secret.VaultConfig{
			Address:   cfg.Secret.VaultAddress,
			Token:     cfg.Secret.VaultToken,
			MountPath: cfg.Secret.VaultMountPath,
		},
		AWSRegion: cfg.Secret.AWSRegion,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize secret store: ", err)
	}

	llm := llmprovider.NewLazyManager(llmprovider.BootstrapOptions{
		LLM:                  &cfg.LLM,
		Store:                store,
		SecretName:           cfg.Secret.Name,
		Logger:               logger,
		OnBreakerStateChange: metrics.ObserveBreakerTransition,
	})

	h := skillLambda.New(logger, usecase.New(logger, llm, usecase.OptionsFromConfig(cfg.Skill)))

	switch cfg.Lambda.EventFormat {
	case eventFormatAlexa:
		lambda.Start(h.HandleAlexa)
	case eventFormatAPIGateway:
		lambda.Start(h.HandleAPIGateway)
	default:
		logger.Fatalf(ctx, "Unknown lambda.event_format %q", cfg.Lambda.EventFormat)
	}
}
