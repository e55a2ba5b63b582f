// Command afyabuddy-api serves canned first-aid instructions over HTTP and
// optionally translates them through an external language model.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giygas/afyabuddy-api/catalog"
	"github.com/giygas/afyabuddy-api/config"
	"github.com/giygas/afyabuddy-api/handlers"
	"github.com/giygas/afyabuddy-api/health"
	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/logging"
	"github.com/giygas/afyabuddy-api/resolver"
	"github.com/giygas/afyabuddy-api/responder"
	"github.com/giygas/afyabuddy-api/scheduler"
	"github.com/giygas/afyabuddy-api/server"
	"github.com/giygas/afyabuddy-api/translation"
	"github.com/giygas/afyabuddy-api/validation"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	loggingService := logging.InitLogger(logging.Options{
		LogDir:         cfg.LogDir,
		Env:            cfg.Env,
		Level:          cfg.LogLevel,
		RetentionWeeks: cfg.LogRetentionWeeks,
		MaxFileSize:    cfg.MaxLogFileSize,
	})
	defer loggingService.Close()

	logging.Info("Configuration loaded",
		"env", cfg.Env.String(),
		"source_language", cfg.SourceLanguage,
		"translation_enabled", cfg.TranslationEnabled(),
	)

	// Catalog and synonym table are checked once; bad data stops the process
	conditions, err := catalog.Default()
	if err != nil {
		logging.Error("Invalid condition catalog", "error", err)
		os.Exit(1)
	}
	keywordResolver, err := resolver.New(resolver.DefaultSynonyms(), conditions)
	if err != nil {
		logging.Error("Invalid synonym table", "error", err)
		os.Exit(1)
	}
	logCatalogReport(conditions, keywordResolver)

	ctx := context.Background()
	translator, cache, backend := buildTranslator(ctx, cfg)
	if closer, ok := cache.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	adapter := translation.NewAdapter(translator, translation.Options{
		SourceLanguage: cfg.SourceLanguage,
		Timeout:        cfg.TranslationTimeout,
		Concurrency:    cfg.TranslationConcurrency,
	})

	healthChecker := health.NewHealthChecker(conditions, health.Options{
		TranslatorBackend: backend,
		SourceLanguage:    adapter.SourceLanguage(),
		Cache:             cache,
		StartTime:         time.Now(),
	})

	httpHandler := handlers.NewHTTPHandler(
		responder.New(conditions, keywordResolver),
		adapter,
		conditions,
		validation.NewCatalogValidator(),
		healthChecker,
	)

	rateLimiter := server.NewRateLimiter()
	srv := server.NewServer(cfg, httpHandler, rateLimiter)

	var prewarmLanguages []string
	if cfg.TranslationEnabled() {
		prewarmLanguages = cfg.PrewarmLanguages
	}
	jobs := scheduler.NewScheduler(conditions, adapter, scheduler.Options{
		Languages:      prewarmLanguages,
		Schedule:       cfg.PrewarmSchedule,
		PrewarmOnStart: len(prewarmLanguages) > 0,
		Cleanup:        rateLimiter.Cleanup,
	})
	if err := jobs.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-quit:
	case err := <-serverErr:
		if err != nil {
			logging.Error("Server failed to start", "error", err)
		}
	}

	jobs.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Server shutdown failed", "error", err)
	}
}

// buildTranslator assembles the translator chain: OpenAI, metrics, then a
// cache in front so hits never reach the network. Without an API key every
// translation falls back to the source text.
func buildTranslator(ctx context.Context, cfg *config.Config) (interfaces.Translator, interfaces.TranslationCache, string) {
	if !cfg.TranslationEnabled() {
		logging.Warn("OPENAI_API_KEY not set, translation disabled")
		return translation.NoopTranslator{}, nil, "none"
	}

	var translator interfaces.Translator = translation.NewInstrumentedTranslator(
		translation.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL),
	)

	var cache interfaces.TranslationCache
	if cfg.RedisAddr != "" {
		redisCache, err := translation.NewRedisCache(ctx, translation.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TranslationCacheTTL,
		})
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory translation cache", "error", err)
		} else {
			cache = redisCache
		}
	}
	if cache == nil {
		cache = translation.NewMemoryCache(cfg.TranslationCacheTTL, 0)
	}

	logging.Info("Translation enabled", "model", cfg.OpenAIModel, "cache", cache.Backend())
	return translation.NewCachingTranslator(translator, cache, translation.DefaultCachePrefix), cache, "openai"
}

// logCatalogReport logs optional content missing from the catalog
func logCatalogReport(conditions *catalog.Catalog, r *resolver.Resolver) {
	report := validation.NewCatalogValidator().ReportCatalogQuality(conditions.All(), r.Entries())

	logging.Info("Condition catalog loaded", "conditions", report.Records, "synonyms", report.Synonyms)

	if len(report.WithoutProhibitions) > 0 {
		logging.Warn("Conditions without prohibitions", "conditions", report.WithoutProhibitions)
	}
	if len(report.WithoutEscalation) > 0 {
		logging.Warn("Conditions without escalation criteria", "conditions", report.WithoutEscalation)
	}
	if len(report.WithoutSymptoms) > 0 {
		logging.Debug("Conditions without symptoms", "conditions", report.WithoutSymptoms)
	}
	if len(report.ConditionsWithoutSynonym) > 0 {
		logging.Warn("Conditions unreachable from free text", "conditions", report.ConditionsWithoutSynonym)
	}
}
