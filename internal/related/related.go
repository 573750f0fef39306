// Package related surfaces supplementary context alongside an analysis:
// headlines, fact-check pages, and entities mentioned in the content.
package related

import (
	"context"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/entity"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/search"
)

const (
	maxArticles   = 5
	maxFactChecks = 5
	maxEntities   = 20
	entityChars   = 5000
)

// Finder gathers related articles, fact-checks, and entities
type Finder struct {
	serper     *search.SerperClient
	news       *search.NewsAPIClient
	feeds      *search.RSSProvider
	recognizer entity.Recognizer
	log        *zap.SugaredLogger
}

// NewFinder wires the related-info collaborators
func NewFinder(serper *search.SerperClient, news *search.NewsAPIClient, feeds *search.RSSProvider, recognizer entity.Recognizer, log *zap.SugaredLogger) *Finder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Finder{serper: serper, news: news, feeds: feeds, recognizer: recognizer, log: log}
}

// Fetch assembles the related-info block. Web and news headlines are
// merged with URL dedupe, web results first; entities come from the
// analyzed content rather than the query.
func (f *Finder) Fetch(ctx context.Context, query, content string) model.RelatedInfo {
	var candidates []model.Evidence
	candidates = append(candidates, f.serper.General(ctx, query, maxArticles)...)
	if f.news.Enabled() {
		candidates = append(candidates, f.news.Search(ctx, query, maxArticles)...)
	} else if f.feeds != nil && f.feeds.Enabled() {
		candidates = append(candidates, f.feeds.Matching(ctx, query, maxArticles)...)
	}

	seen := make(map[string]bool)
	var articles []model.RelatedArticle
	for _, c := range candidates {
		if c.URL == "" || seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		articles = append(articles, model.RelatedArticle{Title: c.Title, URL: c.URL, Source: c.Source})
		if len(articles) >= maxArticles {
			break
		}
	}

	var factChecks []model.RelatedArticle
	for _, c := range f.serper.FactCheck(ctx, "fact check "+query) {
		factChecks = append(factChecks, model.RelatedArticle{Title: c.Title, URL: c.URL, Source: c.Source})
		if len(factChecks) >= maxFactChecks {
			break
		}
	}

	return model.RelatedInfo{
		Articles:   articles,
		FactChecks: factChecks,
		Entities:   f.entities(ctx, content),
	}
}

// TopicURLs returns candidate pages to scrape for a free-text topic
func (f *Finder) TopicURLs(ctx context.Context, query string, num int) []string {
	var urls []string
	for _, result := range f.serper.General(ctx, query, num) {
		if result.URL != "" {
			urls = append(urls, result.URL)
		}
		if len(urls) >= num {
			break
		}
	}
	return urls
}

func (f *Finder) entities(ctx context.Context, content string) []model.EntityMention {
	text := content
	if len(text) > entityChars {
		text = text[:entityChars]
	}
	mentions := f.recognizer.Recognize(ctx, text).Mentions()
	if len(mentions) > maxEntities {
		mentions = mentions[:maxEntities]
	}
	return mentions
}
