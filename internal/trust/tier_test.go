package trust

import (
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want model.TrustTier
	}{
		{"government site", "https://www.sec.gov/news/press-release", model.TierOfficial},
		{"who", "https://who.int/emergencies", model.TierOfficial},
		{"bare govt domain", "pib.gov.in", model.TierOfficial},
		{"fact checker", "https://www.snopes.com/fact-check/some-claim", model.TierTrusted},
		{"wire service", "https://www.reuters.com/world/article", model.TierTrusted},
		{"wikipedia", "https://en.wikipedia.org/wiki/Something", model.TierTrusted},
		{"mainstream news", "https://edition.cnn.com/2024/article", model.TierNews},
		{"business news", "https://www.bloomberg.com/news", model.TierNews},
		{"unknown blog", "https://random-blog.example.com/post", model.TierOther},
		{"empty", "", model.TierOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.url); got != tt.want {
				t.Errorf("TierFor(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestTierForHighestWins(t *testing.T) {
	// reuters.com is tier 2 but the fact-check section of a .gov mirror
	// style URL must still resolve at the highest matching tier
	got := TierFor("https://www.fda.gov/news-events/reuters.com-syndicated")
	if got != model.TierOfficial {
		t.Errorf("expected official tier to win over trusted, got %v", got)
	}
}

func TestTierWeight(t *testing.T) {
	if model.TierOfficial.Weight() <= model.TierTrusted.Weight() {
		t.Error("official tier should outweigh trusted")
	}
	if model.TierTrusted.Weight() <= model.TierNews.Weight() {
		t.Error("trusted tier should outweigh news")
	}
	if model.TierNews.Weight() <= model.TierOther.Weight() {
		t.Error("news tier should outweigh other")
	}
}
