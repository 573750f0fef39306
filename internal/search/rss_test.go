package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Wire Service</title>
    <item>
      <title>Acme merger talks collapse</title>
      <link>https://www.reuters.com/business/acme-merger</link>
      <description>Negotiations over the Acme merger ended without a deal.</description>
    </item>
    <item>
      <title>Local festival draws record crowd</title>
      <link>https://example.com/festival</link>
      <description>Sunny weather brought thousands to the park.</description>
    </item>
    <item>
      <title>Regulator reviews Acme filings</title>
      <link>https://example.com/acme-review</link>
      <description>The filing review covers the failed merger period.</description>
    </item>
  </channel>
</rss>`

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeedXML))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSProviderEnabled(t *testing.T) {
	if NewRSSProvider(nil, nil).Enabled() {
		t.Error("provider with no feeds should be disabled")
	}
	if !NewRSSProvider([]string{"https://example.com/feed"}, nil).Enabled() {
		t.Error("provider with a feed should be enabled")
	}
}

func TestRSSProviderMatching(t *testing.T) {
	srv := feedServer(t)
	provider := NewRSSProvider([]string{srv.URL}, nil)

	results := provider.Matching(context.Background(), "acme merger", 5)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	first := results[0]
	if first.Title != "Acme merger talks collapse" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Platform != "News Feed" {
		t.Errorf("platform = %q", first.Platform)
	}
	if first.Source != "Wire Service" {
		t.Errorf("source = %q", first.Source)
	}
	if first.Tier != model.TierTrusted {
		t.Errorf("tier = %v, want %v for reuters link", first.Tier, model.TierTrusted)
	}
	if results[1].Title != "Regulator reviews Acme filings" {
		t.Errorf("second title = %q", results[1].Title)
	}
}

func TestRSSProviderMatchingLimit(t *testing.T) {
	srv := feedServer(t)
	provider := NewRSSProvider([]string{srv.URL}, nil)

	results := provider.Matching(context.Background(), "acme merger", 1)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
}

func TestRSSProviderShortQueryTerms(t *testing.T) {
	srv := feedServer(t)
	provider := NewRSSProvider([]string{srv.URL}, nil)

	// every word shorter than four chars leaves nothing to match on
	if results := provider.Matching(context.Background(), "is it on", 5); results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestRSSProviderDeadFeed(t *testing.T) {
	provider := NewRSSProvider([]string{"http://127.0.0.1:1/feed"}, nil)
	if results := provider.Matching(context.Background(), "acme merger", 5); len(results) != 0 {
		t.Errorf("results = %v, want none from unreachable feed", results)
	}
}
