package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/trust"
)

const newsAPIEverythingURL = "https://newsapi.org/v2/everything"

// NewsAPIClient queries the NewsAPI everything endpoint. It is the primary
// evidence source when a key is configured: pre-crawled, structured articles
// from a very wide pool of outlets.
type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// NewNewsAPIClient creates a NewsAPI client
func NewNewsAPIClient(apiKey string, timeout time.Duration, log *zap.SugaredLogger) *NewsAPIClient {
	if timeout == 0 {
		timeout = 12 * time.Second
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    newsAPIEverythingURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Enabled reports whether the client has a credential
func (c *NewsAPIClient) Enabled() bool { return c.apiKey != "" }

// Search returns up to pageSize recent articles matching the query,
// sorted by relevancy. Each result is tier-classified by its domain.
func (c *NewsAPIClient) Search(ctx context.Context, query string, pageSize int) []model.Evidence {
	if !c.Enabled() {
		return nil
	}
	if pageSize <= 0 {
		pageSize = 5
	}

	params := url.Values{
		"q":        {query},
		"pageSize": {fmt.Sprint(pageSize)},
		"sortBy":   {"relevancy"},
		"language": {"en"},
		"apiKey":   {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnw("newsapi search failed", "error", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnw("newsapi search failed", "status", resp.StatusCode)
		return nil
	}

	var data struct {
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Content     string `json:"content"`
			URL         string `json:"url"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.log.Warnw("newsapi decode failed", "error", err)
		return nil
	}

	var results []model.Evidence
	for i, article := range data.Articles {
		if i >= pageSize {
			break
		}
		snippet := article.Description
		if snippet == "" && len(article.Content) > 0 {
			snippet = article.Content
			if len(snippet) > 300 {
				snippet = snippet[:300]
			}
		}
		tier := trust.TierFor(trust.Domain(article.URL))
		results = append(results, model.Evidence{
			Platform: "NewsAPI (" + newsTierLabel(tier) + ")",
			Title:    article.Title,
			Snippet:  snippet,
			URL:      article.URL,
			Source:   article.Source.Name,
			Tier:     tier,
		})
	}
	c.log.Infow("newsapi results", "query", query, "count", len(results))
	return results
}

// newsTierLabel is the platform suffix for news results; unknown domains
// read as plain news rather than "Other"
func newsTierLabel(tier model.TrustTier) string {
	switch tier {
	case model.TierOfficial:
		return "Official/Govt"
	case model.TierTrusted:
		return "Trusted Media"
	default:
		return "News"
	}
}
