package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/knowledge"
	"github.com/ppiankov/crosscheck/internal/model"
)

const (
	wikiClaimHits      = 3
	personExtractChars = 4000
	personSnippetChars = 500
)

// WikipediaProvider turns knowledge-source lookups into claim evidence
type WikipediaProvider struct {
	client *knowledge.Client
	log    *zap.SugaredLogger
}

// NewWikipediaProvider creates the knowledge-backed evidence provider
func NewWikipediaProvider(client *knowledge.Client, log *zap.SugaredLogger) *WikipediaProvider {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &WikipediaProvider{client: client, log: log}
}

// SearchClaim runs a generic article search over the full claim text
func (p *WikipediaProvider) SearchClaim(ctx context.Context, claim string) []model.Evidence {
	articles, err := p.client.SearchArticles(ctx, claim, wikiClaimHits)
	if err != nil {
		p.log.Warnw("knowledge search failed", "error", err)
		return nil
	}

	var results []model.Evidence
	for _, a := range articles {
		results = append(results, model.Evidence{
			Platform: "Wikipedia",
			Title:    a.Title,
			Snippet:  a.Snippet,
			URL:      a.URL,
			Source:   "Wikipedia",
			Tier:     model.TierTrusted,
		})
	}
	return results
}

// PersonPages searches each person's own article directly. A name-by-name
// search avoids matching movies or songs that a search over the whole claim
// text could return, and the snippet carries real article content.
func (p *WikipediaProvider) PersonPages(ctx context.Context, names []string) []model.Evidence {
	var results []model.Evidence
	seen := make(map[string]bool)

	for _, name := range names {
		articles, err := p.client.SearchArticles(ctx, name, 1)
		if err != nil || len(articles) == 0 {
			continue
		}
		article := articles[0]
		if seen[article.Title] {
			continue
		}
		seen[article.Title] = true

		snippet := article.Snippet
		if text, err := p.client.ExtractText(ctx, article.Title, personExtractChars); err == nil && text != "" {
			snippet = text
			if len(snippet) > personSnippetChars {
				snippet = snippet[:personSnippetChars]
			}
		}
		results = append(results, model.Evidence{
			Platform: "Wikipedia",
			Title:    article.Title,
			Snippet:  snippet,
			URL:      article.URL,
			Source:   "Wikipedia",
			Tier:     model.TierTrusted,
			Stance:   model.StanceNeutral,
		})
		p.log.Infow("person article resolved", "person", name, "article", article.Title)
	}
	return results
}
