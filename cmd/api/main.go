package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"montblanc-assistant/config"
	_ "montblanc-assistant/docs" // Swagger docs
	"montblanc-assistant/internal/httpserver"
	"montblanc-assistant/internal/metrics"
	skillHTTP "montblanc-assistant/internal/skill/delivery/http"
	"montblanc-assistant/internal/skill/usecase"
	"montblanc-assistant/pkg/llmprovider"
	"montblanc-assistant/pkg/log"
	"montblanc-assistant/pkg/secret"
)

// @title       Montblanc Assistant API
// @description Voice assistant skill backed by a chat completion service.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Montblanc Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Secret backend: %s", cfg.Secret.Backend)

	// 3. Secret store
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
		logger.Error(ctx, "Failed to initialize secret store: ", err)
		return
	}

	// 4. Completion client, built on first use
	llm := llmprovider.NewLazyManager(llmprovider.BootstrapOptions{
		LLM:                  &cfg.LLM,
		Store:                store,
		SecretName:           cfg.Secret.Name,
		Logger:               logger,
		OnBreakerStateChange: metrics.ObserveBreakerTransition,
	})

	// 5. Skill
	skillUC := usecase.New(logger, llm, usecase.OptionsFromConfig(cfg.Skill))

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		SkillHandler: skillHTTP.New(logger, skillUC),
		Ready:        llm.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
