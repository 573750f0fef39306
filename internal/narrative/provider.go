// Package narrative asks a generative model to synthesize a coarse verdict
// from the already-gathered evidence. The model never sees the raw web; its
// input is the cross-check output, sentiment, and risk level, and its
// verdict can only escalate the final risk, never soften it.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Completer is a minimal text-completion surface over a generative model
type Completer interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt and returns the raw model text
	Complete(ctx context.Context, prompt string) (string, error)
}

// Request bundles the evidence handed to the synthesizer
type Request struct {
	Query      string
	CrossCheck model.CrossCheckResult
	Sentiment  model.Sentiment
	RiskLevel  model.RiskLevel
}

// NewCompleter selects a provider from configuration. An empty provider
// name disables narrative synthesis and returns nil with no error.
func NewCompleter(cfg model.NarrativeConfig) (Completer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAICompleter(cfg)
	case "anthropic", "claude":
		return newAnthropicCompleter(cfg)
	case "ollama":
		return newOllamaCompleter(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown narrative provider: %s (supported: openai, anthropic, ollama)", cfg.Provider)
	}
}
