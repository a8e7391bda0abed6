package main

import (
	"context"
	"fmt"
	"time"

	"legal-research-assistant/config"
	_ "legal-research-assistant/docs" // Swagger docs
	"legal-research-assistant/internal/httpserver"
	"legal-research-assistant/internal/intent"
	researchUC "legal-research-assistant/internal/research/usecase"
	"legal-research-assistant/internal/search"
	"legal-research-assistant/internal/tools"
	"legal-research-assistant/internal/tools/toolset"
	"legal-research-assistant/pkg/datemath"
	"legal-research-assistant/pkg/llmprovider"
	"legal-research-assistant/pkg/log"
)

// @title       Legal Research Assistant API
// @description Intent classification and domain routing for Ukrainian legal research queries.
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Legal Research Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	// 4. Planning pipeline
	completion := researchUC.NewCompletionService(manager)
	classifier := intent.NewClassifier(completion, logger)
	optimizer := search.NewOptimizer(completion, logger)

	timezone := cfg.Research.Timezone
	dateMath, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMath, _ = datemath.NewParser("UTC")
	}

	uc := researchUC.New(logger, classifier, optimizer, dateMath, cfg.Research.CacheSize)

	// 5. Tool registry
	registry := tools.NewRegistry()
	registry.Register(toolset.NewClassifyQueryTool(classifier))
	registry.Register(toolset.NewOptimizeQueryTool(optimizer))
	registry.Register(toolset.NewPlanResearchTool(uc))

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ResearchUseCase: uc,
		ToolRegistry:    registry,
		RateLimitRPS:    cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run (blocks until SIGINT/SIGTERM)
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
