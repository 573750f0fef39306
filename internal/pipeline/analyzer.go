// Package pipeline runs the end-to-end analysis: input detection, content
// acquisition, signal extraction, cross-checking, risk scoring, and the
// optional narrative pass.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/coordination"
	"github.com/ppiankov/crosscheck/internal/crosscheck"
	"github.com/ppiankov/crosscheck/internal/fetch"
	"github.com/ppiankov/crosscheck/internal/knowledge"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/narrative"
	"github.com/ppiankov/crosscheck/internal/related"
	"github.com/ppiankov/crosscheck/internal/risk"
	"github.com/ppiankov/crosscheck/internal/sentiment"
	"github.com/ppiankov/crosscheck/internal/trust"
	"github.com/ppiankov/crosscheck/internal/worker"
)

// analysis failures the HTTP layer maps to client errors
var (
	ErrEmptyInput  = errors.New("input cannot be empty")
	ErrUnfetchable = errors.New("could not extract content from the provided URL")
)

const (
	inputTypeURL  = "url"
	inputTypeText = "text"

	topicURLCount   = 5
	minScrapedChars = 100
	minSnippetChars = 30
)

// Analyzer is the orchestrator for one full analysis
type Analyzer struct {
	fetcher       *fetch.Fetcher
	finder        *related.Finder
	knowledge     *knowledge.Client
	sentiment     *sentiment.Analyzer
	checker       *crosscheck.Checker
	narrator      *narrative.Synthesizer
	scrapeWorkers int
	log           *zap.SugaredLogger
}

// NewAnalyzer wires the pipeline stages
func NewAnalyzer(fetcher *fetch.Fetcher, finder *related.Finder, kc *knowledge.Client, sa *sentiment.Analyzer, checker *crosscheck.Checker, narrator *narrative.Synthesizer, scrapeWorkers int, log *zap.SugaredLogger) *Analyzer {
	if scrapeWorkers <= 0 {
		scrapeWorkers = 5
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Analyzer{
		fetcher:       fetcher,
		finder:        finder,
		knowledge:     kc,
		sentiment:     sa,
		checker:       checker,
		narrator:      narrator,
		scrapeWorkers: scrapeWorkers,
		log:           log,
	}
}

// Analyze runs the full pipeline over one input, which is either a URL to
// fetch or a text topic to research. Only an empty input or an unfetchable
// URL fail the analysis; every downstream signal degrades gracefully.
func (a *Analyzer) Analyze(ctx context.Context, input string) (*model.Analysis, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	a.log.Infow("analyzing input", "input", clip(input, 100))

	inputType := inputTypeText
	if fetch.IsURL(input) {
		inputType = inputTypeURL
	}
	a.log.Infow("input type detected", "type", inputType)

	var (
		content    string
		texts      []string
		sourceURLs []string
		query      string
	)

	if inputType == inputTypeURL {
		query = input
		text, err := a.fetcher.Text(ctx, input)
		if err != nil || text == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnfetchable, input)
		}
		content = text
		texts = []string{text}
		sourceURLs = []string{input}
	} else {
		query = input
		texts, sourceURLs = a.gatherTopic(ctx, query)
		if len(texts) == 0 {
			// last resort: analyze the query itself
			texts = []string{query}
		}
		content = strings.Join(texts, " ")
	}

	var trustScore float64
	if inputType == inputTypeURL {
		trustScore = trust.ScoreDomainTrust(input)
	} else {
		trustScore = trust.ScoreSources(sourceURLs)
	}
	a.log.Infow("source trust score", "score", trustScore)

	tone := a.sentiment.Analyze(content)
	a.log.Infow("sentiment", "positive", tone.Positive, "neutral", tone.Neutral, "negative", tone.Negative)

	coord := coordination.Detect(texts)
	a.log.Infow("coordination", "similarity", coord.SimilarityScore, "pairs", coord.CoordinatedPairs)

	crossCheck := a.checker.Analyze(ctx, content, query)
	a.log.Infow("cross-check done", "claims", crossCheck.ClaimsChecked, "reliability", crossCheck.OverallReliability)

	assessment := risk.Score(tone, coord.SimilarityScore, trustScore, crossCheck)
	a.log.Infow("risk level", "level", assessment.RiskLevel)

	relatedInfo := a.finder.Fetch(ctx, query, content)

	var narrativeVerdict *model.NarrativeVerdict
	if a.narrator.Enabled() {
		narrativeVerdict = a.narrator.Analyze(ctx, narrative.Request{
			Query:      query,
			CrossCheck: crossCheck,
			Sentiment:  tone,
			RiskLevel:  assessment.RiskLevel,
		})
		assessment = risk.Escalate(assessment, narrativeVerdict)
	}

	return &model.Analysis{
		ID:               uuid.NewString(),
		Input:            input,
		InputType:        inputType,
		SourceURLs:       sourceURLs,
		SourceTrustScore: trustScore,
		Sentiment:        tone,
		SimilarityScore:  coord.SimilarityScore,
		CrossCheck:       crossCheck,
		Risk:             assessment,
		Related:          relatedInfo,
		Narrative:        narrativeVerdict,
	}, nil
}

// scrapeJob fetches one candidate page for topic mode
type scrapeJob struct {
	fetcher *fetch.Fetcher
	url     string
}

type scrapeResult struct {
	url  string
	text string
	err  error
}

func (r scrapeResult) Err() error { return r.err }

func (j scrapeJob) Execute(ctx context.Context) worker.Result {
	text, err := j.fetcher.Text(ctx, j.url)
	return scrapeResult{url: j.url, text: text, err: err}
}

// gatherTopic researches a free-text topic: search for candidate pages,
// scrape them concurrently, and fall back to knowledge-source snippets
// when nothing scrapeable remains
func (a *Analyzer) gatherTopic(ctx context.Context, query string) (texts, sourceURLs []string) {
	urls := a.finder.TopicURLs(ctx, query, topicURLCount)
	a.log.Infow("topic urls", "urls", urls)

	if len(urls) > 0 {
		pool := worker.NewPoolWithContext(ctx, a.scrapeWorkers)
		pool.Start()
		for _, u := range urls {
			pool.Submit(scrapeJob{fetcher: a.fetcher, url: u})
		}
		for _, result := range pool.Wait() {
			scraped, ok := result.(scrapeResult)
			if !ok {
				continue
			}
			if scraped.err != nil {
				a.log.Warnw("scrape failed", "url", scraped.url, "error", scraped.err)
				continue
			}
			if len(scraped.text) > minScrapedChars {
				texts = append(texts, scraped.text)
				sourceURLs = append(sourceURLs, scraped.url)
			}
		}
	}
	if len(texts) > 0 {
		return texts, sourceURLs
	}

	a.log.Infow("no scrapeable pages, falling back to knowledge source")
	articles, err := a.knowledge.SearchArticles(ctx, query, 3)
	if err != nil {
		a.log.Warnw("knowledge fallback failed", "error", err)
		return nil, nil
	}
	for _, article := range articles {
		if len(article.Snippet) > minSnippetChars {
			texts = append(texts, article.Snippet)
			sourceURLs = append(sourceURLs, article.URL)
		}
	}
	return texts, sourceURLs
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
