package knowledge

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ppiankov/crosscheck/internal/cache"
	"github.com/ppiankov/crosscheck/internal/model"
)

// testClient wires a Client against fake Wikipedia and Wikidata endpoints
func testClient(t *testing.T, api, entity http.HandlerFunc) *Client {
	t.Helper()
	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)
	entitySrv := httptest.NewServer(entity)
	t.Cleanup(entitySrv.Close)

	return NewClient(model.KnowledgeConfig{
		WikipediaBaseURL: apiSrv.URL,
		WikidataBaseURL:  entitySrv.URL,
		Timeout:          5 * time.Second,
		CacheTTL:         time.Minute,
	}, "test-agent", cache.NewMemory(time.Minute, time.Minute), nil, nil)
}

func TestSearchArticles(t *testing.T) {
	api := func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("srsearch"); got != "albert einstein" {
			t.Errorf("srsearch = %q", got)
		}
		fmt.Fprint(w, `{"query":{"search":[
			{"title":"Albert Einstein","snippet":"<span class=\"searchmatch\">Einstein</span> was a physicist"},
			{"title":"Einstein family","snippet":"relatives"}
		]}}`)
	}

	c := testClient(t, api, func(w http.ResponseWriter, r *http.Request) {})
	articles, err := c.SearchArticles(context.Background(), "albert einstein", 3)
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Title != "Albert Einstein" {
		t.Errorf("title = %q", articles[0].Title)
	}
	if articles[0].Snippet != "Einstein was a physicist" {
		t.Errorf("snippet not stripped of markup: %q", articles[0].Snippet)
	}
	if articles[1].URL == articles[0].URL {
		t.Error("article URLs should differ per title")
	}
}

func TestExtractText(t *testing.T) {
	api := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"736":{"extract":"Albert Einstein was a theoretical physicist."}}}}`)
	}
	c := testClient(t, api, func(w http.ResponseWriter, r *http.Request) {})

	text, err := c.ExtractText(context.Background(), "Albert Einstein", 500)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Albert Einstein was a theoretical physicist." {
		t.Errorf("extract = %q", text)
	}
}

func TestResolveEntityCaches(t *testing.T) {
	calls := 0
	api := func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"query":{"pages":{"736":{"pageprops":{"wikibase_item":"Q937"}}}}}`)
	}
	c := testClient(t, api, func(w http.ResponseWriter, r *http.Request) {})

	for i := 0; i < 2; i++ {
		qid, err := c.ResolveEntity(context.Background(), "Albert Einstein")
		if err != nil {
			t.Fatalf("ResolveEntity: %v", err)
		}
		if qid != "Q937" {
			t.Errorf("qid = %q, want Q937", qid)
		}
	}
	if calls != 1 {
		t.Errorf("API called %d times, want 1 (second resolve cached)", calls)
	}
}

// entityFixture serves a Wikidata-style record with a death date and
// an entity-valued spouse claim
func entityFixture(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/Q937.json":
		fmt.Fprint(w, `{"entities":{"Q937":{
			"labels":{"en":{"value":"Albert Einstein"}},
			"claims":{
				"P570":[{"mainsnak":{"datavalue":{"type":"time","value":{"time":"+1955-04-18T00:00:00Z"}}}}],
				"P26":[{"mainsnak":{"datavalue":{"type":"wikibase-entityid","value":{"id":"Q76361"}}}}]
			}}}}`)
	case "/Q76361.json":
		fmt.Fprint(w, `{"entities":{"Q76361":{"labels":{"en":{"value":"Elsa Einstein"}},"claims":{}}}}`)
	default:
		http.NotFound(w, r)
	}
}

func TestDeathDate(t *testing.T) {
	api := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"736":{"pageprops":{"wikibase_item":"Q937"}}}}}`)
	}
	c := testClient(t, api, entityFixture)

	date, err := c.DeathDate(context.Background(), "Albert Einstein")
	if err != nil {
		t.Fatalf("DeathDate: %v", err)
	}
	if date != "1955-04-18" {
		t.Errorf("death date = %q, want 1955-04-18", date)
	}
}

func TestSpousesResolveLabels(t *testing.T) {
	api := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"736":{"pageprops":{"wikibase_item":"Q937"}}}}}`)
	}
	c := testClient(t, api, entityFixture)

	spouses, err := c.Spouses(context.Background(), "Albert Einstein")
	if err != nil {
		t.Fatalf("Spouses: %v", err)
	}
	if len(spouses) != 1 || spouses[0] != "Elsa Einstein" {
		t.Errorf("spouses = %v, want [Elsa Einstein]", spouses)
	}
}

func TestLeadersStableOrder(t *testing.T) {
	api := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"100":{"pageprops":{"wikibase_item":"Q100"}}}}}`)
	}
	entity := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Q100.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"entities":{"Q100":{
			"labels":{"en":{"value":"Acme Corp"}},
			"claims":{
				"P112":[{"mainsnak":{"datavalue":{"type":"string","value":"Fiona Founder"}}}],
				"P169":[{"mainsnak":{"datavalue":{"type":"string","value":"Chris Chief"}}}]
			}}}}`)
	}
	c := testClient(t, api, entity)

	for i := 0; i < 3; i++ {
		leaders, err := c.Leaders(context.Background(), "Acme Corp")
		if err != nil {
			t.Fatalf("Leaders: %v", err)
		}
		if len(leaders) != 2 {
			t.Fatalf("leaders = %v, want 2 facts", leaders)
		}
		if leaders[0].Property != "CEO" || leaders[0].Value != "Chris Chief" {
			t.Errorf("first fact = %+v, want the CEO", leaders[0])
		}
		if leaders[1].Property != "Founder" || leaders[1].Value != "Fiona Founder" {
			t.Errorf("second fact = %+v, want the founder", leaders[1])
		}
	}
}

func TestFactValuesNoEntity(t *testing.T) {
	api := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"-1":{}}}}`)
	}
	c := testClient(t, api, func(w http.ResponseWriter, r *http.Request) {
		t.Error("entity endpoint should not be called without a resolved ID")
	})

	facts, err := c.FactValues(context.Background(), "No Such Page", PropSpouse)
	if err != nil {
		t.Fatalf("FactValues: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("facts = %v, want none", facts)
	}
}

func TestPageBaseFrom(t *testing.T) {
	tests := []struct {
		api  string
		want string
	}{
		{"https://en.wikipedia.org/w/api.php", "https://en.wikipedia.org/wiki/"},
		{"http://localhost:9999/w/api.php", "http://localhost:9999/wiki/"},
		{"not a url", "https://en.wikipedia.org/wiki/"},
	}
	for _, tt := range tests {
		if got := pageBaseFrom(tt.api); got != tt.want {
			t.Errorf("pageBaseFrom(%q) = %q, want %q", tt.api, got, tt.want)
		}
	}
}
