// Package search gathers claim evidence from web-search, news, knowledge
// and feed providers, and assembles it in a fixed priority order.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/trust"
)

const (
	serperSearchURL = "https://google.serper.dev/search"
	serperNewsURL   = "https://google.serper.dev/news"
)

// SerperClient queries the Serper.dev Google proxy. A client with no API key
// is disabled and returns empty results without any network calls.
type SerperClient struct {
	apiKey     string
	searchURL  string
	newsURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// NewSerperClient creates a Serper client
func NewSerperClient(apiKey string, timeout time.Duration, log *zap.SugaredLogger) *SerperClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SerperClient{
		apiKey:     apiKey,
		searchURL:  serperSearchURL,
		newsURL:    serperNewsURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Enabled reports whether the client has a credential
func (c *SerperClient) Enabled() bool { return c.apiKey != "" }

type serperResponse struct {
	KnowledgeGraph struct {
		Title             string `json:"title"`
		Description       string `json:"description"`
		DescriptionLink   string `json:"descriptionLink"`
		DescriptionSource string `json:"descriptionSource"`
		Website           string `json:"website"`
	} `json:"knowledgeGraph"`
	AnswerBox struct {
		Title       string `json:"title"`
		Answer      string `json:"answer"`
		Snippet     string `json:"snippet"`
		Link        string `json:"link"`
		DisplayLink string `json:"displayLink"`
	} `json:"answerBox"`
	Organic []struct {
		Title       string `json:"title"`
		Snippet     string `json:"snippet"`
		Link        string `json:"link"`
		DisplayLink string `json:"displayLink"`
	} `json:"organic"`
	News []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
		Source  string `json:"source"`
	} `json:"news"`
}

// General runs a web search and returns organic results plus any knowledge
// graph and answer box entries. The answer box, when present, leads.
func (c *SerperClient) General(ctx context.Context, query string, num int) []model.Evidence {
	if !c.Enabled() {
		return nil
	}
	data, err := c.post(ctx, c.searchURL, query, num)
	if err != nil {
		c.log.Warnw("general search failed", "error", err)
		return nil
	}

	var results []model.Evidence
	if kg := data.KnowledgeGraph; kg.Description != "" {
		link := kg.DescriptionLink
		if link == "" {
			link = kg.Website
		}
		source := kg.DescriptionSource
		if source == "" {
			source = "Google"
		}
		results = append(results, model.Evidence{
			Platform: "Google Knowledge Graph",
			Title:    kg.Title,
			Snippet:  kg.Description,
			URL:      link,
			Source:   source,
			Tier:     trust.TierFor(link),
		})
	}
	for i, item := range data.Organic {
		if i >= num {
			break
		}
		results = append(results, model.Evidence{
			Platform: "Google Search",
			Title:    item.Title,
			Snippet:  item.Snippet,
			URL:      item.Link,
			Source:   item.DisplayLink,
			Tier:     trust.TierFor(item.Link),
		})
	}
	if ab := data.AnswerBox; ab.Answer != "" || ab.Snippet != "" {
		title := ab.Title
		if title == "" {
			title = "Direct Answer"
		}
		snippet := ab.Answer
		if snippet == "" {
			snippet = ab.Snippet
		}
		source := ab.DisplayLink
		if source == "" {
			source = "Google"
		}
		answer := model.Evidence{
			Platform: "Google Answer Box",
			Title:    title,
			Snippet:  snippet,
			URL:      ab.Link,
			Source:   source,
			Tier:     trust.TierFor(ab.Link),
		}
		results = append([]model.Evidence{answer}, results...)
	}
	return results
}

// News runs a news search
func (c *SerperClient) News(ctx context.Context, query string, num int) []model.Evidence {
	if !c.Enabled() {
		return nil
	}
	data, err := c.post(ctx, c.newsURL, query, num)
	if err != nil {
		c.log.Warnw("news search failed", "error", err)
		return nil
	}

	var results []model.Evidence
	for i, item := range data.News {
		if i >= num {
			break
		}
		results = append(results, model.Evidence{
			Platform: "Google News",
			Title:    item.Title,
			Snippet:  item.Snippet,
			URL:      item.Link,
			Source:   item.Source,
			Tier:     trust.TierFor(item.Link),
		})
	}
	return results
}

// FactCheck searches dedicated fact-checking sites only
func (c *SerperClient) FactCheck(ctx context.Context, query string) []model.Evidence {
	if !c.Enabled() {
		return nil
	}
	filters := make([]string, 0, len(trust.FactCheckDomains))
	for _, d := range trust.FactCheckDomains {
		filters = append(filters, "site:"+d)
	}
	data, err := c.post(ctx, c.searchURL, query+" "+strings.Join(filters, " OR "), 5)
	if err != nil {
		c.log.Warnw("fact-check search failed", "error", err)
		return nil
	}

	var results []model.Evidence
	for i, item := range data.Organic {
		if i >= 5 {
			break
		}
		results = append(results, model.Evidence{
			Platform: "Fact-Check Site",
			Title:    item.Title,
			Snippet:  item.Snippet,
			URL:      item.Link,
			Source:   item.DisplayLink,
			Tier:     trust.TierFor(item.Link),
		})
	}
	return results
}

// GovtSites searches government and regulatory sites only. Results are
// pinned to the official tier regardless of domain classification.
func (c *SerperClient) GovtSites(ctx context.Context, query string) []model.Evidence {
	if !c.Enabled() {
		return nil
	}
	filters := make([]string, 0, len(trust.GovtDomains))
	for _, d := range trust.GovtDomains {
		filters = append(filters, "site:"+d)
	}
	data, err := c.post(ctx, c.searchURL, query+" "+strings.Join(filters, " OR "), 5)
	if err != nil {
		c.log.Warnw("government site search failed", "error", err)
		return nil
	}

	var results []model.Evidence
	for i, item := range data.Organic {
		if i >= 5 {
			break
		}
		results = append(results, model.Evidence{
			Platform: "Government/Official",
			Title:    item.Title,
			Snippet:  item.Snippet,
			URL:      item.Link,
			Source:   item.DisplayLink,
			Tier:     model.TierOfficial,
		})
	}
	return results
}

// OfficialSite searches inside one organization's own website. Results are
// pinned to the official tier.
func (c *SerperClient) OfficialSite(ctx context.Context, query, officialURL string) []model.Evidence {
	if !c.Enabled() {
		return nil
	}
	parsed, err := url.Parse(officialURL)
	if err != nil || parsed.Host == "" {
		return nil
	}
	domain := strings.TrimPrefix(parsed.Host, "www.")

	data, err := c.post(ctx, c.searchURL, fmt.Sprintf("site:%s %s", domain, query), 3)
	if err != nil {
		c.log.Warnw("official site search failed", "domain", domain, "error", err)
		return nil
	}

	var results []model.Evidence
	for i, item := range data.Organic {
		if i >= 3 {
			break
		}
		results = append(results, model.Evidence{
			Platform: "Official Site (" + domain + ")",
			Title:    item.Title,
			Snippet:  item.Snippet,
			URL:      item.Link,
			Source:   domain,
			Tier:     model.TierOfficial,
		})
	}
	return results
}

func (c *SerperClient) post(ctx context.Context, endpoint, query string, num int) (*serperResponse, error) {
	body, err := json.Marshal(map[string]any{"q": query, "num": num})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var data serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &data, nil
}
