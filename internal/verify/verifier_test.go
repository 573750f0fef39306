package verify

import (
	"context"
	"strings"
	"testing"

	"github.com/ppiankov/crosscheck/internal/knowledge"
	"github.com/ppiankov/crosscheck/internal/model"
)

// fakeSource implements KnowledgeSource with canned answers keyed by title
type fakeSource struct {
	articles map[string]knowledge.Article // search query -> article
	extracts map[string]string            // title -> text
	spouses  map[string][]string          // title -> spouse names
	deaths   map[string]string            // title -> death date, "" = alive
	leaders  map[string][]model.KnowledgeFact
}

func (f *fakeSource) SearchArticles(_ context.Context, query string, _ int) ([]knowledge.Article, error) {
	if a, ok := f.articles[query]; ok {
		return []knowledge.Article{a}, nil
	}
	return nil, nil
}

func (f *fakeSource) ExtractText(_ context.Context, title string, _ int) (string, error) {
	return f.extracts[title], nil
}

func (f *fakeSource) Spouses(_ context.Context, title string) ([]string, error) {
	return f.spouses[title], nil
}

func (f *fakeSource) DeathDate(_ context.Context, title string) (string, error) {
	return f.deaths[title], nil
}

func (f *fakeSource) Leaders(_ context.Context, title string) ([]model.KnowledgeFact, error) {
	return f.leaders[title], nil
}

func claimOf(text string) model.Claim {
	return model.Claim{Text: text, Origin: model.OriginQuery}
}

func TestPersonClaimDeathContradicted(t *testing.T) {
	src := &fakeSource{
		articles: map[string]knowledge.Article{
			"Rihanna": {Title: "Rihanna", URL: "https://en.wikipedia.org/wiki/Rihanna"},
		},
		extracts: map[string]string{"Rihanna": "Rihanna is a Barbadian singer."},
		deaths:   map[string]string{"Rihanna": ""},
	}
	v := NewVerifier(src, nil)

	got := v.PersonClaim(context.Background(), claimOf("rihanna dead"), []string{"Rihanna"})
	if got == nil {
		t.Fatal("expected a verdict")
	}
	if got.Verdict != model.VerdictLikelyFalse {
		t.Errorf("verdict = %v, want likely_false", got.Verdict)
	}
	if got.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", got.Confidence)
	}
	if !strings.Contains(got.CorrectedInfo, "NOT dead") {
		t.Errorf("corrected info should say the person is alive: %q", got.CorrectedInfo)
	}
	if got.Sources[0].Stance != model.StanceContradicts {
		t.Errorf("source stance = %v, want contradicts", got.Sources[0].Stance)
	}
}

func TestPersonClaimDeathConfirmed(t *testing.T) {
	src := &fakeSource{
		articles: map[string]knowledge.Article{
			"Albert Einstein": {Title: "Albert Einstein", URL: "https://en.wikipedia.org/wiki/Albert_Einstein"},
		},
		extracts: map[string]string{"Albert Einstein": "Albert Einstein was a physicist."},
		deaths:   map[string]string{"Albert Einstein": "1955-04-18"},
	}
	v := NewVerifier(src, nil)

	got := v.PersonClaim(context.Background(), claimOf("albert einstein died"), []string{"Albert Einstein"})
	if got == nil {
		t.Fatal("expected a verdict")
	}
	if got.Verdict != model.VerdictLikelyTrue {
		t.Errorf("verdict = %v, want likely_true", got.Verdict)
	}
	if got.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", got.Confidence)
	}
	if !strings.Contains(got.CorrectedInfo, "1955-04-18") {
		t.Errorf("corrected info should carry the recorded date: %q", got.CorrectedInfo)
	}
}

func TestPersonClaimMarriageContradicted(t *testing.T) {
	src := &fakeSource{
		articles: map[string]knowledge.Article{
			"Alice Star": {Title: "Alice Star", URL: "https://example.org/Alice_Star"},
			"Bob Actor":  {Title: "Bob Actor", URL: "https://example.org/Bob_Actor"},
		},
		extracts: map[string]string{"Alice Star": "Alice Star is a musician.", "Bob Actor": "Bob Actor is an actor."},
		spouses:  map[string][]string{"Alice Star": {"Carol Producer"}},
	}
	v := NewVerifier(src, nil)

	got := v.PersonClaim(context.Background(), claimOf("alice star married bob actor"),
		[]string{"Alice Star", "Bob Actor"})
	if got == nil {
		t.Fatal("expected a verdict")
	}
	if got.Verdict != model.VerdictLikelyFalse {
		t.Errorf("verdict = %v, want likely_false", got.Verdict)
	}
	if !strings.Contains(got.CorrectedInfo, "Carol Producer") {
		t.Errorf("corrected info should name the recorded spouse: %q", got.CorrectedInfo)
	}
}

func TestPersonClaimMarriageConfirmed(t *testing.T) {
	src := &fakeSource{
		articles: map[string]knowledge.Article{
			"Alice Star": {Title: "Alice Star", URL: "https://example.org/Alice_Star"},
			"Bob Actor":  {Title: "Bob Actor", URL: "https://example.org/Bob_Actor"},
		},
		extracts: map[string]string{"Alice Star": "text", "Bob Actor": "text"},
		spouses: map[string][]string{
			"Alice Star": {"Bob Actor"},
			"Bob Actor":  {"Alice Star"},
		},
	}
	v := NewVerifier(src, nil)

	got := v.PersonClaim(context.Background(), claimOf("alice star married bob actor"),
		[]string{"Alice Star", "Bob Actor"})
	if got == nil {
		t.Fatal("expected a verdict")
	}
	if got.Verdict != model.VerdictLikelyTrue {
		t.Errorf("verdict = %v, want likely_true", got.Verdict)
	}
}

func TestPersonClaimNoArticleReturnsNil(t *testing.T) {
	v := NewVerifier(&fakeSource{}, nil)
	got := v.PersonClaim(context.Background(), claimOf("unknown person dead"), []string{"Unknown Person"})
	if got != nil {
		t.Errorf("expected nil verdict when no article exists, got %+v", got)
	}
}

func TestOrgRoleClaimContradicted(t *testing.T) {
	src := &fakeSource{
		articles: map[string]knowledge.Article{
			"Apple company": {Title: "Apple Inc.", URL: "https://en.wikipedia.org/wiki/Apple_Inc."},
		},
		extracts: map[string]string{"Apple Inc.": "Apple Inc. is a technology company."},
		leaders: map[string][]model.KnowledgeFact{
			"Apple Inc.": {{Subject: "Apple Inc.", Property: "CEO", Value: "Tim Cook"}},
		},
	}
	v := NewVerifier(src, nil)

	got := v.OrgRoleClaim(context.Background(), claimOf("Elon Musk is the CEO of Apple"),
		[]string{"Elon Musk"}, []string{"Apple"})
	if got == nil {
		t.Fatal("expected a verdict")
	}
	if got.Verdict != model.VerdictLikelyFalse {
		t.Errorf("verdict = %v, want likely_false", got.Verdict)
	}
	if !strings.Contains(got.CorrectedInfo, "Tim Cook") {
		t.Errorf("corrected info should name the recorded CEO: %q", got.CorrectedInfo)
	}
}

func TestOrgRoleClaimConfirmed(t *testing.T) {
	src := &fakeSource{
		articles: map[string]knowledge.Article{
			"Apple company": {Title: "Apple Inc.", URL: "https://en.wikipedia.org/wiki/Apple_Inc."},
		},
		extracts: map[string]string{"Apple Inc.": "Apple Inc. is a technology company."},
		leaders: map[string][]model.KnowledgeFact{
			"Apple Inc.": {{Subject: "Apple Inc.", Property: "CEO", Value: "Tim Cook"}},
		},
	}
	v := NewVerifier(src, nil)

	got := v.OrgRoleClaim(context.Background(), claimOf("Tim Cook is the CEO of Apple"),
		[]string{"Tim Cook"}, []string{"Apple"})
	if got == nil {
		t.Fatal("expected a verdict")
	}
	if got.Verdict != model.VerdictLikelyTrue {
		t.Errorf("verdict = %v, want likely_true", got.Verdict)
	}
}

func TestOrgRoleClaimRequiresRoleWord(t *testing.T) {
	v := NewVerifier(&fakeSource{}, nil)
	got := v.OrgRoleClaim(context.Background(), claimOf("Tim Cook visited Apple"),
		[]string{"Tim Cook"}, []string{"Apple"})
	if got != nil {
		t.Errorf("expected nil for a claim without role vocabulary, got %+v", got)
	}
}

func TestNameAmong(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       bool
	}{
		{"Tim Cook", []string{"Tim Cook"}, true},
		{"tim cook", []string{"Timothy Donald Cook"}, false},
		{"Cook", []string{"Tim Cook"}, true},
		{"Tim Cook", []string{"Cook"}, true},
		{"Elon Musk", []string{"Tim Cook"}, false},
	}
	for _, tt := range tests {
		if got := nameAmong(tt.name, tt.candidates); got != tt.want {
			t.Errorf("nameAmong(%q, %v) = %v, want %v", tt.name, tt.candidates, got, tt.want)
		}
	}
}
