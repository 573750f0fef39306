package search

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/trust"
)

const rssSnippetChars = 200

// RSSProvider scans configured news feeds for items mentioning the query.
// It needs no credential, so it backstops the keyed news providers.
type RSSProvider struct {
	feeds  []string
	parser *gofeed.Parser
	log    *zap.SugaredLogger
}

// NewRSSProvider creates a feed-backed evidence provider
func NewRSSProvider(feeds []string, log *zap.SugaredLogger) *RSSProvider {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RSSProvider{
		feeds:  feeds,
		parser: gofeed.NewParser(),
		log:    log,
	}
}

// Enabled reports whether any feed is configured
func (p *RSSProvider) Enabled() bool { return len(p.feeds) > 0 }

// Matching fetches each feed and keeps items whose title or summary shares
// a word (4+ chars) with the query, up to limit items in total
func (p *RSSProvider) Matching(ctx context.Context, query string, limit int) []model.Evidence {
	if limit <= 0 {
		limit = 5
	}
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var results []model.Evidence
	for _, feedURL := range p.feeds {
		feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			p.log.Warnw("feed fetch failed", "feed", feedURL, "error", err)
			continue
		}
		for _, item := range feed.Items {
			if len(results) >= limit {
				return results
			}
			haystack := strings.ToLower(item.Title + " " + item.Description)
			if !containsAnyTerm(haystack, terms) {
				continue
			}
			snippet := item.Description
			if snippet == "" && item.Content != "" {
				snippet = item.Content
			}
			if len(snippet) > rssSnippetChars {
				snippet = snippet[:rssSnippetChars]
			}
			results = append(results, model.Evidence{
				Platform: "News Feed",
				Title:    item.Title,
				Snippet:  snippet,
				URL:      item.Link,
				Source:   feed.Title,
				Tier:     trust.TierFor(item.Link),
			})
		}
	}
	return results
}

// queryTerms keeps lowercase words long enough to be discriminating
func queryTerms(query string) []string {
	var terms []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) >= 4 {
			terms = append(terms, word)
		}
	}
	return terms
}

func containsAnyTerm(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}
