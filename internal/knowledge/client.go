// Package knowledge resolves entities and typed facts from the structured
// knowledge source (Wikipedia for articles, Wikidata for property claims).
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/worker"
)

// Wikidata property IDs the verifier relies on
const (
	PropSpouse           = "P26"
	PropPartner          = "P451"
	PropDeathDate        = "P570"
	PropCEO              = "P169"
	PropChairperson      = "P488"
	PropHeadOfState      = "P35"
	PropHeadOfGovernment = "P6"
	PropFounder          = "P112"
	PropOfficialWebsite  = "P856"
)

// roleProperties lists leadership properties with their human-readable
// role names, in the fixed order leadership facts are reported
var roleProperties = []struct {
	prop string
	role string
}{
	{PropCEO, "CEO"},
	{PropChairperson, "Chairperson"},
	{PropHeadOfState, "Head of State"},
	{PropHeadOfGovernment, "Head of Government"},
	{PropFounder, "Founder"},
}

// Article is one knowledge-source page hit
type Article struct {
	Title   string
	URL     string
	Snippet string
}

// Client talks to the knowledge source. All methods are best-effort network
// calls with bounded timeouts; callers treat errors as "no facts available".
type Client struct {
	httpClient *http.Client
	apiBase    string
	entityBase string
	pageBase   string
	userAgent  string
	store      cache.Cache
	cacheTTL   time.Duration
	limiter    *worker.Limiter
	log        *zap.SugaredLogger
}

// NewClient creates a knowledge client
func NewClient(cfg model.KnowledgeConfig, userAgent string, store cache.Cache, limiter *worker.Limiter, log *zap.SugaredLogger) *Client {
	if store == nil {
		store = cache.Nop{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiBase:    cfg.WikipediaBaseURL,
		entityBase: cfg.WikidataBaseURL,
		pageBase:   pageBaseFrom(cfg.WikipediaBaseURL),
		userAgent:  userAgent,
		store:      store,
		cacheTTL:   cfg.CacheTTL,
		limiter:    limiter,
		log:        log,
	}
}

// pageBaseFrom derives the article URL prefix from the API endpoint
// (https://en.wikipedia.org/w/api.php -> https://en.wikipedia.org/wiki/)
func pageBaseFrom(apiBase string) string {
	parsed, err := url.Parse(apiBase)
	if err != nil || parsed.Host == "" {
		return "https://en.wikipedia.org/wiki/"
	}
	return parsed.Scheme + "://" + parsed.Host + "/wiki/"
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// SearchArticles searches the knowledge source and returns up to limit hits
func (c *Client) SearchArticles(ctx context.Context, query string, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = 3
	}
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {fmt.Sprint(limit)},
		"srprop":   {"snippet"},
		"format":   {"json"},
	}

	var payload struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.apiBase+"?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("article search: %w", err)
	}

	articles := make([]Article, 0, len(payload.Query.Search))
	for _, hit := range payload.Query.Search {
		snippet := html.UnescapeString(tagPattern.ReplaceAllString(hit.Snippet, ""))
		articles = append(articles, Article{
			Title:   hit.Title,
			URL:     c.pageBase + strings.ReplaceAll(hit.Title, " ", "_"),
			Snippet: snippet,
		})
	}
	return articles, nil
}

// ExtractText fetches the plain-text extract of an article, capped at chars
func (c *Client) ExtractText(ctx context.Context, title string, chars int) (string, error) {
	if chars <= 0 {
		chars = 3000
	}
	params := url.Values{
		"action":      {"query"},
		"titles":      {title},
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"exchars":     {fmt.Sprint(chars)},
		"format":      {"json"},
	}

	var payload struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.apiBase+"?"+params.Encode(), &payload); err != nil {
		return "", fmt.Errorf("extract fetch: %w", err)
	}
	for _, page := range payload.Query.Pages {
		return page.Extract, nil
	}
	return "", nil
}

// ResolveEntity resolves an article title to its canonical entity ID.
// An empty ID with a nil error means the title has no entity record.
func (c *Client) ResolveEntity(ctx context.Context, title string) (string, error) {
	key := cache.Key("resolve", title)
	if data, ok := c.store.Get(key); ok {
		return string(data), nil
	}

	params := url.Values{
		"action": {"query"},
		"titles": {title},
		"prop":   {"pageprops"},
		"ppprop": {"wikibase_item"},
		"format": {"json"},
	}

	var payload struct {
		Query struct {
			Pages map[string]struct {
				PageProps struct {
					WikibaseItem string `json:"wikibase_item"`
				} `json:"pageprops"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.apiBase+"?"+params.Encode(), &payload); err != nil {
		return "", fmt.Errorf("entity resolve: %w", err)
	}

	qid := ""
	for _, page := range payload.Query.Pages {
		if page.PageProps.WikibaseItem != "" {
			qid = page.PageProps.WikibaseItem
		}
	}
	if qid != "" {
		_ = c.store.Set(key, []byte(qid), c.cacheTTL)
	}
	return qid, nil
}

// FactValues resolves the title to an entity and returns the values recorded
// for one property. Entity-valued claims are resolved to their labels,
// time-valued claims are cleaned to a YYYY-MM-DD date, string values pass
// through. An empty slice means the property is absent.
func (c *Client) FactValues(ctx context.Context, title, property string) ([]model.KnowledgeFact, error) {
	qid, err := c.ResolveEntity(ctx, title)
	if err != nil {
		return nil, err
	}
	if qid == "" {
		return nil, nil
	}

	claims, err := c.entityClaims(ctx, qid)
	if err != nil {
		return nil, err
	}

	var facts []model.KnowledgeFact
	for _, snak := range claims[property] {
		value, err := c.snakValue(ctx, snak)
		if err != nil || value == "" {
			continue
		}
		facts = append(facts, model.KnowledgeFact{Subject: title, Property: property, Value: value})
	}
	return facts, nil
}

// Spouses returns spouse and partner names for a person's article title
func (c *Client) Spouses(ctx context.Context, title string) ([]string, error) {
	var names []string
	for _, prop := range []string{PropSpouse, PropPartner} {
		facts, err := c.FactValues(ctx, title, prop)
		if err != nil {
			return nil, err
		}
		for _, f := range facts {
			names = append(names, f.Value)
		}
	}
	return names, nil
}

// DeathDate returns the recorded date of death, or "" when none exists
// (the person is alive as far as the knowledge source knows)
func (c *Client) DeathDate(ctx context.Context, title string) (string, error) {
	facts, err := c.FactValues(ctx, title, PropDeathDate)
	if err != nil {
		return "", err
	}
	if len(facts) == 0 {
		return "", nil
	}
	return facts[0].Value, nil
}

// Leaders returns known leadership facts (CEO, chairperson, founder, ...)
// for an organization's article title
func (c *Client) Leaders(ctx context.Context, title string) ([]model.KnowledgeFact, error) {
	var leaders []model.KnowledgeFact
	for _, rp := range roleProperties {
		facts, err := c.FactValues(ctx, title, rp.prop)
		if err != nil {
			return nil, err
		}
		for _, f := range facts {
			leaders = append(leaders, model.KnowledgeFact{Subject: title, Property: rp.role, Value: f.Value})
		}
	}
	return leaders, nil
}

// OfficialWebsite looks up the official website of a named entity by
// searching for its article and reading the official-website property
func (c *Client) OfficialWebsite(ctx context.Context, name string) (string, error) {
	key := cache.Key("official-site", name)
	if data, ok := c.store.Get(key); ok {
		return string(data), nil
	}

	articles, err := c.SearchArticles(ctx, name, 1)
	if err != nil || len(articles) == 0 {
		return "", err
	}

	facts, err := c.FactValues(ctx, articles[0].Title, PropOfficialWebsite)
	if err != nil || len(facts) == 0 {
		return "", err
	}

	site := facts[0].Value
	_ = c.store.Set(key, []byte(site), c.cacheTTL)
	c.log.Infow("resolved official website", "entity", name, "url", site)
	return site, nil
}

// ── Wikidata entity plumbing ────────────────────────────────────────────────

type snak struct {
	MainSnak struct {
		DataValue struct {
			Type  string          `json:"type"`
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

type entityRecord struct {
	Labels map[string]struct {
		Value string `json:"value"`
	} `json:"labels"`
	Claims map[string][]snak `json:"claims"`
}

// entityClaims fetches (and caches) the full claim set for an entity
func (c *Client) entityClaims(ctx context.Context, qid string) (map[string][]snak, error) {
	record, err := c.entity(ctx, qid)
	if err != nil {
		return nil, err
	}
	return record.Claims, nil
}

// Label returns the English label of an entity ID
func (c *Client) Label(ctx context.Context, qid string) (string, error) {
	record, err := c.entity(ctx, qid)
	if err != nil {
		return "", err
	}
	if en, ok := record.Labels["en"]; ok {
		return en.Value, nil
	}
	return "", nil
}

func (c *Client) entity(ctx context.Context, qid string) (*entityRecord, error) {
	key := cache.Key("entity", qid)

	var body []byte
	if data, ok := c.store.Get(key); ok {
		body = data
	} else {
		data, err := c.getBody(ctx, fmt.Sprintf("%s/%s.json", c.entityBase, qid))
		if err != nil {
			return nil, fmt.Errorf("entity fetch %s: %w", qid, err)
		}
		body = data
		_ = c.store.Set(key, body, c.cacheTTL)
	}

	var payload struct {
		Entities map[string]entityRecord `json:"entities"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("entity decode %s: %w", qid, err)
	}
	record, ok := payload.Entities[qid]
	if !ok {
		return nil, fmt.Errorf("entity %s: not in response", qid)
	}
	return &record, nil
}

// snakValue turns one claim value into a plain string: entity references
// become labels, times become dates, strings pass through
func (c *Client) snakValue(ctx context.Context, s snak) (string, error) {
	raw := s.MainSnak.DataValue.Value
	if len(raw) == 0 {
		return "", nil
	}

	switch s.MainSnak.DataValue.Type {
	case "wikibase-entityid":
		var ref struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &ref); err != nil || ref.ID == "" {
			return "", err
		}
		return c.Label(ctx, ref.ID)
	case "time":
		var t struct {
			Time string `json:"time"`
		}
		if err := json.Unmarshal(raw, &t); err != nil {
			return "", err
		}
		// "+1945-04-30T00:00:00Z" -> "1945-04-30"
		cleaned := strings.TrimPrefix(t.Time, "+")
		if idx := strings.Index(cleaned, "T"); idx > 0 {
			cleaned = cleaned[:idx]
		}
		return cleaned, nil
	default:
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return "", err
		}
		return str, nil
	}
}

// ── HTTP plumbing ───────────────────────────────────────────────────────────

func (c *Client) getBody(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 4_000_000))
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	body, err := c.getBody(ctx, rawURL)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
