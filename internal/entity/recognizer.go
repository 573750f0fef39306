package entity

import (
	"context"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Entities holds the names a recognizer found in a piece of text
type Entities struct {
	Persons       []string
	Organizations []string
}

// Empty reports whether nothing was recognized
func (e Entities) Empty() bool {
	return len(e.Persons) == 0 && len(e.Organizations) == 0
}

// Mentions converts the recognized names into typed entity mentions
func (e Entities) Mentions() []model.EntityMention {
	mentions := make([]model.EntityMention, 0, len(e.Persons)+len(e.Organizations))
	for _, p := range e.Persons {
		mentions = append(mentions, model.EntityMention{Name: p, Kind: model.EntityPerson})
	}
	for _, o := range e.Organizations {
		mentions = append(mentions, model.EntityMention{Name: o, Kind: model.EntityOrganization})
	}
	return mentions
}

// Recognizer extracts person and organization names from text.
// Implementations are interchangeable: a remote model-backed service or the
// built-in capitalization heuristic. The implementation is selected once at
// startup and injected wherever names are needed.
type Recognizer interface {
	Recognize(ctx context.Context, text string) Entities
}

// NewRecognizer selects the recognizer implementation from configuration.
// A configured service URL selects the model-backed recognizer (which keeps
// the heuristic as its fallback, mirroring how a missing model degrades);
// otherwise the heuristic is used directly.
func NewRecognizer(cfg model.EntityConfig) Recognizer {
	heuristic := NewHeuristicRecognizer()
	if cfg.ServiceURL == "" {
		return heuristic
	}
	return NewServiceRecognizer(cfg.ServiceURL, cfg.Timeout, heuristic)
}

// dedupe removes duplicate names case-insensitively, preserving order
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, n := range names {
		key := normalizeKey(n)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, n)
	}
	return unique
}
