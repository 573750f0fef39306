// Package fetch retrieves web pages and reduces them to readable text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/worker"
)

// elements whose text is chrome, not content
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"footer":   true,
	"header":   true,
	"iframe":   true,
	"noscript": true,
}

// Fetcher downloads pages politely: per-domain rate limiting, robots.txt
// when configured, bounded body reads. Failures surface as errors; callers
// treat a failed page as simply absent.
type Fetcher struct {
	httpClient *http.Client
	robots     *RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBody    int64
	maxChars   int
	log        *zap.SugaredLogger
}

// NewFetcher creates a page fetcher
func NewFetcher(cfg model.HTTPConfig, limiter *worker.Limiter, log *zap.SugaredLogger) *Fetcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	var robots *RobotsChecker
	if cfg.RespectRobots {
		robots = NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		robots:     robots,
		limiter:    limiter,
		userAgent:  cfg.UserAgent,
		maxBody:    cfg.MaxBodyBytes,
		maxChars:   cfg.MaxTextChars,
		log:        log,
	}
}

// Text fetches a URL and returns its visible text, whitespace-collapsed
// and capped at the configured character limit
func (f *Fetcher) Text(ctx context.Context, rawURL string) (string, error) {
	if f.robots != nil && !f.robots.Allowed(ctx, rawURL) {
		return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := ExtractText(string(body))
	if f.maxChars > 0 && len(text) > f.maxChars {
		text = text[:f.maxChars]
	}
	f.log.Debugw("fetched page", "url", rawURL, "chars", len(text))
	return text, nil
}

// ExtractText strips an HTML document to its visible text. Navigation,
// scripting, and boilerplate containers are skipped whole; remaining text
// nodes are joined and whitespace-collapsed.
func ExtractText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
