package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/crosscheck"
	"github.com/ppiankov/crosscheck/internal/entity"
	"github.com/ppiankov/crosscheck/internal/extract"
	"github.com/ppiankov/crosscheck/internal/fetch"
	"github.com/ppiankov/crosscheck/internal/knowledge"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/narrative"
	"github.com/ppiankov/crosscheck/internal/pipeline"
	"github.com/ppiankov/crosscheck/internal/related"
	"github.com/ppiankov/crosscheck/internal/search"
	"github.com/ppiankov/crosscheck/internal/sentiment"
	"github.com/ppiankov/crosscheck/internal/verify"
	"github.com/ppiankov/crosscheck/internal/worker"
)

// loadConfig merges defaults, the config file, and environment credentials
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	_ = viper.Unmarshal(cfg)

	// credentials come from the environment, never the config file
	if key := os.Getenv("SERPER_API_KEY"); key != "" {
		cfg.Search.SerperAPIKey = key
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		cfg.Search.NewsAPIKey = key
	}
	cfg.Output.Verbose = verbose
	return cfg
}

// newLogger builds the process logger; verbose selects human-readable
// development output
func newLogger() (*zap.SugaredLogger, error) {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// configureNarrative fills narrative credentials from the environment
func configureNarrative(cfg *model.Config, provider, modelName string) error {
	cfg.Narrative.Provider = provider
	cfg.Narrative.Model = modelName

	switch provider {
	case "openai":
		cfg.Narrative.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Narrative.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Narrative.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Narrative.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Narrative.BaseURL = baseURL
		}
	}
	return nil
}

// buildAnalyzer wires the full pipeline from configuration
func buildAnalyzer(cfg *model.Config, log *zap.SugaredLogger) (*pipeline.Analyzer, error) {
	var store cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewDisk(cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			store = cache.NewMemory(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	recognizer := entity.NewRecognizer(cfg.Entity)
	kc := knowledge.NewClient(cfg.Knowledge, cfg.HTTP.UserAgent, store, limiter, log)

	serper := search.NewSerperClient(cfg.Search.SerperAPIKey, cfg.Search.Timeout, log)
	news := search.NewNewsAPIClient(cfg.Search.NewsAPIKey, cfg.Search.Timeout, log)
	wiki := search.NewWikipediaProvider(kc, log)
	feeds := search.NewRSSProvider(cfg.Search.NewsFeeds, log)
	aggregator := search.NewAggregator(serper, news, wiki, feeds, log)

	extractor := extract.NewClaimExtractor(recognizer)
	verifier := verify.NewVerifier(kc, log)
	checker := crosscheck.NewChecker(recognizer, extractor, verifier, kc, aggregator, log)

	fetcher := fetch.NewFetcher(cfg.HTTP, limiter, log)
	finder := related.NewFinder(serper, news, feeds, recognizer, log)

	completer, err := narrative.NewCompleter(cfg.Narrative)
	if err != nil {
		return nil, fmt.Errorf("narrative provider: %w", err)
	}
	narrator := narrative.NewSynthesizer(completer, log)

	return pipeline.NewAnalyzer(fetcher, finder, kc, sentiment.NewAnalyzer(), checker, narrator, cfg.Concurrency.ScrapeWorkers, log), nil
}
