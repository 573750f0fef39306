package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/ppiankov/crosscheck/internal/entity"
	"github.com/ppiankov/crosscheck/internal/model"
)

func newExtractor() *ClaimExtractor {
	return NewClaimExtractor(entity.NewHeuristicRecognizer())
}

func TestExtractEmpty(t *testing.T) {
	e := newExtractor()
	if got := e.Extract(context.Background(), "   ", 5); got != nil {
		t.Errorf("Extract(blank) = %v, want nil", got)
	}
}

func TestExtractShortPersonAssertion(t *testing.T) {
	e := newExtractor()
	got := e.Extract(context.Background(), "Elon Musk resigned as CEO", 5)

	if len(got) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(got))
	}
	if got[0].Text != "Elon Musk resigned as CEO" {
		t.Errorf("claim text = %q", got[0].Text)
	}
	if got[0].Origin != model.OriginExtracted {
		t.Errorf("origin = %v, want extracted", got[0].Origin)
	}
}

func TestExtractShortTwoNames(t *testing.T) {
	e := newExtractor()
	// two person names imply a relational assertion even without
	// event vocabulary
	got := e.Extract(context.Background(), "Taylor Swift and Travis Kelce", 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(got))
	}
}

func TestExtractLongText(t *testing.T) {
	e := newExtractor()
	text := "The company reported a 40 percent increase in revenue according to its annual filing. " +
		"The weather was nice. " +
		"Researchers found that the drug was linked to 3 million cases worldwide according to the study. " +
		"I like coffee in the morning very much. " +
		"The survey showed that 70 percent of respondents confirmed the first result."

	got := e.Extract(context.Background(), text, 5)
	if len(got) == 0 {
		t.Fatal("expected claims from scored sentences")
	}
	for _, c := range got {
		if strings.Contains(c.Text, "weather was nice") {
			t.Errorf("low-signal sentence survived scoring: %q", c.Text)
		}
	}
}

func TestExtractFallsBackToTruncatedText(t *testing.T) {
	e := newExtractor()
	filler := strings.Repeat("plain words without any signal here ", 12)

	got := e.Extract(context.Background(), filler, 5)
	if len(got) != 1 {
		t.Fatalf("expected single fallback claim, got %d", len(got))
	}
	if len(got[0].Text) > shortInputLimit {
		t.Errorf("fallback claim length %d exceeds limit", len(got[0].Text))
	}
}

func TestExtractRespectsMaxClaims(t *testing.T) {
	e := newExtractor()
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("Study number ")
		sb.WriteString(strings.Repeat("x", i+1))
		sb.WriteString(" found that 50 percent of participants confirmed the report. ")
	}

	got := e.Extract(context.Background(), sb.String(), 3)
	if len(got) > 3 {
		t.Errorf("got %d claims, want at most 3", len(got))
	}
}

func TestDedupeByOverlap(t *testing.T) {
	claims := []string{
		"the minister announced new tax rules for imports",
		"the minister announced new tax rules for imports today",
		"scientists discovered water on a distant exoplanet",
	}
	got := dedupeByOverlap(claims)
	if len(got) != 2 {
		t.Errorf("dedupeByOverlap kept %d claims %v, want 2", len(got), got)
	}
}

func TestIsAssertion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"is rihanna dead", true},
		{"elon musk ceo of twitter", true},
		{"jennifer lopez divorce", true},
		{"best pasta recipes", false},
		{"weather in london", false},
	}

	for _, tt := range tests {
		if got := IsAssertion(tt.text); got != tt.want {
			t.Errorf("IsAssertion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsDeathClaim(t *testing.T) {
	if !IsDeathClaim("did the actor pass away, is he dead") {
		t.Error("expected death claim")
	}
	if IsDeathClaim("the actor starred in a new film") {
		t.Error("unexpected death claim")
	}
}

func TestIsRoleClaim(t *testing.T) {
	if !IsRoleClaim("she is the ceo of the company") {
		t.Error("expected role claim")
	}
	if IsRoleClaim("they walked along the beach") {
		t.Error("unexpected role claim")
	}
}
