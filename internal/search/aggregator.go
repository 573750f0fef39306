package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Context carries per-analysis search state: people named in the query and
// the official websites resolved for detected organizations. It also
// accumulates the platform names actually consulted.
type Context struct {
	QueryPersons  []string
	OfficialSites map[string]string // org name -> official URL

	platforms []string
}

// NewContext starts a search context. The knowledge source platforms are
// always listed because the verifier consults them before any search runs.
func NewContext() *Context {
	return &Context{
		OfficialSites: make(map[string]string),
		platforms:     []string{"Wikipedia", "Wikidata"},
	}
}

// AddPlatform records a consulted platform once, preserving order
func (c *Context) AddPlatform(name string) {
	for _, p := range c.platforms {
		if p == name {
			return
		}
	}
	c.platforms = append(c.platforms, name)
}

// Platforms returns the consulted platform names in consultation order
func (c *Context) Platforms() []string { return c.platforms }

// Aggregator runs the evidence waterfall for one claim. Providers are
// consulted in a fixed priority order; each is best-effort and a failure
// just shortens the evidence list.
type Aggregator struct {
	serper *SerperClient
	news   *NewsAPIClient
	wiki   *WikipediaProvider
	feeds  *RSSProvider
	log    *zap.SugaredLogger
}

// NewAggregator wires the providers together
func NewAggregator(serper *SerperClient, news *NewsAPIClient, wiki *WikipediaProvider, feeds *RSSProvider, log *zap.SugaredLogger) *Aggregator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Aggregator{serper: serper, news: news, wiki: wiki, feeds: feeds, log: log}
}

// Gather collects evidence for a claim in priority order:
// person articles first, then keyed news, then official and government
// sites, then fact-checkers, then a generic knowledge search, and finally
// general web search as the fallback. Feed matches fill in when no news
// key is configured.
func (a *Aggregator) Gather(ctx context.Context, claim string, persons []string, sctx *Context) []model.Evidence {
	var sources []model.Evidence

	if len(persons) > 0 {
		personHits := a.wiki.PersonPages(ctx, persons)
		sources = append(sources, personHits...)
		a.log.Infow("person article evidence", "count", len(personHits), "persons", persons)
	}

	if a.news.Enabled() {
		newsHits := a.news.Search(ctx, claim, 5)
		sources = append(sources, newsHits...)
		if len(newsHits) > 0 {
			sctx.AddPlatform("NewsAPI")
		}
	} else if a.feeds != nil && a.feeds.Enabled() {
		feedHits := a.feeds.Matching(ctx, claim, 5)
		sources = append(sources, feedHits...)
		if len(feedHits) > 0 {
			sctx.AddPlatform("News Feeds")
		}
	}

	for org, siteURL := range sctx.OfficialSites {
		officialHits := a.serper.OfficialSite(ctx, claim, siteURL)
		sources = append(sources, officialHits...)
		a.log.Infow("official site evidence", "org", org, "count", len(officialHits))
	}

	if a.serper.Enabled() {
		govtHits := a.serper.GovtSites(ctx, claim)
		sources = append(sources, govtHits...)
		if len(govtHits) > 0 {
			sctx.AddPlatform("Government Sites")
		}

		sources = append(sources, a.serper.FactCheck(ctx, claim)...)
		sctx.AddPlatform("Fact-Check Sites")
	}

	wikiHits := a.wiki.SearchClaim(ctx, claim)
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		seen[s.Title] = true
	}
	for _, hit := range wikiHits {
		if !seen[hit.Title] {
			sources = append(sources, hit)
		}
	}

	if a.serper.Enabled() {
		sctx.AddPlatform("Google Search")
		sctx.AddPlatform("Google News")
		sources = append(sources, a.serper.General(ctx, claim, 3)...)
		sources = append(sources, a.serper.News(ctx, claim, 2)...)
	}

	return sources
}
