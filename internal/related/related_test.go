package related

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ppiankov/crosscheck/internal/entity"
	"github.com/ppiankov/crosscheck/internal/search"
)

const relatedFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Wire Service</title>
    <item>
      <title>Acme merger talks collapse</title>
      <link>https://example.com/acme-merger</link>
      <description>Negotiations over the Acme merger ended without a deal.</description>
    </item>
    <item>
      <title>Acme merger talks collapse</title>
      <link>https://example.com/acme-merger</link>
      <description>Duplicate syndication of the same story.</description>
    </item>
  </channel>
</rss>`

// disabledFinder has no credentials, so only the feed backstop and the
// heuristic recognizer contribute
func disabledFinder(t *testing.T, feeds []string) *Finder {
	t.Helper()
	serper := search.NewSerperClient("", 2*time.Second, nil)
	news := search.NewNewsAPIClient("", 2*time.Second, nil)
	rss := search.NewRSSProvider(feeds, nil)
	return NewFinder(serper, news, rss, entity.NewHeuristicRecognizer(), nil)
}

func TestFetchFeedFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(relatedFeedXML))
	}))
	defer srv.Close()

	finder := disabledFinder(t, []string{srv.URL})
	info := finder.Fetch(context.Background(), "acme merger", "John Smith announced the Acme merger had collapsed.")

	if len(info.Articles) != 1 {
		t.Fatalf("articles = %d, want 1 after URL dedupe", len(info.Articles))
	}
	if info.Articles[0].URL != "https://example.com/acme-merger" {
		t.Errorf("article url = %q", info.Articles[0].URL)
	}
	if info.Articles[0].Source != "Wire Service" {
		t.Errorf("article source = %q", info.Articles[0].Source)
	}
	if len(info.FactChecks) != 0 {
		t.Errorf("fact checks = %d, want none without a search credential", len(info.FactChecks))
	}
	found := false
	for _, mention := range info.Entities {
		if mention.Name == "John Smith" {
			found = true
		}
	}
	if !found {
		t.Errorf("entities = %+v, want John Smith from the content", info.Entities)
	}
}

func TestFetchNoProviders(t *testing.T) {
	finder := disabledFinder(t, nil)
	info := finder.Fetch(context.Background(), "acme merger", "")

	if len(info.Articles) != 0 || len(info.FactChecks) != 0 {
		t.Errorf("related info = %+v, want empty with everything disabled", info)
	}
}

func TestTopicURLsDisabled(t *testing.T) {
	finder := disabledFinder(t, nil)
	if urls := finder.TopicURLs(context.Background(), "acme merger", 5); len(urls) != 0 {
		t.Errorf("urls = %v, want none without a search credential", urls)
	}
}
