package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/ppiankov/crosscheck/internal/entity"
	"github.com/ppiankov/crosscheck/internal/model"
)

// DefaultMaxClaims bounds how many claims one analysis verifies
const DefaultMaxClaims = 5

const (
	shortInputLimit = 300
	minSentenceLen  = 15
	maxSentenceLen  = 300
	dedupeOverlap   = 0.7
)

// Lexical indicators that a sentence carries a checkable factual claim.
// Each regex that matches contributes one point.
var claimIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\d+`),
	regexp.MustCompile(`(?i)\b(according to|study|report|research|data|survey|found|showed|revealed)\b`),
	regexp.MustCompile(`(?i)\b(percent|million|billion|thousand|hundred)\b`),
	regexp.MustCompile(`(?i)\b(is|was|are|were|will be|has been|have been)\b.*\b(the|a)\b`),
	regexp.MustCompile(`(?i)\b(confirmed|denied|announced|stated|claimed|said)\b`),
	regexp.MustCompile(`(?i)\b(true|false|fake|real|hoax|myth|misleading|debunked)\b`),
	regexp.MustCompile(`(?i)\b(caused|causes|linked to|associated with|leads to|results in)\b`),
	regexp.MustCompile(`(?i)\b(first|largest|smallest|most|least|highest|lowest|best|worst)\b`),
}

// ClaimExtractor turns raw text into a small ordered list of candidate claims
type ClaimExtractor struct {
	recognizer entity.Recognizer
}

// NewClaimExtractor creates a claim extractor backed by the given recognizer
func NewClaimExtractor(recognizer entity.Recognizer) *ClaimExtractor {
	return &ClaimExtractor{recognizer: recognizer}
}

// Extract returns 1..maxClaims claims for any non-empty input.
// Short inputs naming people plus relationship/event/role vocabulary are
// returned whole as a single claim; long texts go through sentence scoring.
func (e *ClaimExtractor) Extract(ctx context.Context, text string, maxClaims int) []model.Claim {
	if maxClaims <= 0 {
		maxClaims = DefaultMaxClaims
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// Short input fast path: typical user queries
	if len(text) < shortInputLimit {
		found := e.recognizer.Recognize(ctx, text)
		if len(found.Persons) > 0 && IsAssertion(text) {
			return []model.Claim{{Text: text, Origin: model.OriginExtracted}}
		}
		// Two or more names imply a relational assertion even without
		// event vocabulary
		if len(found.Persons) >= 2 {
			return []model.Claim{{Text: text, Origin: model.OriginExtracted}}
		}
	}

	var candidates []string
	for _, sentence := range splitSentences(text) {
		if score := e.scoreSentence(ctx, sentence); score >= 2 {
			candidates = append(candidates, sentence)
		}
	}

	unique := dedupeByOverlap(candidates)

	if len(unique) == 0 {
		unique = []string{truncate(text, shortInputLimit)}
	}
	if len(unique) > maxClaims {
		unique = unique[:maxClaims]
	}

	claims := make([]model.Claim, len(unique))
	for i, c := range unique {
		claims[i] = model.Claim{Text: c, Origin: model.OriginExtracted}
	}
	return claims
}

func (e *ClaimExtractor) scoreSentence(ctx context.Context, sentence string) int {
	score := 0
	for _, indicator := range claimIndicators {
		if indicator.MatchString(sentence) {
			score++
		}
	}
	// A named person plus relationship/event vocabulary is the strongest
	// signal of a verifiable claim
	if IsAssertion(sentence) {
		if found := e.recognizer.Recognize(ctx, sentence); len(found.Persons) > 0 {
			score += 3
		}
	}
	return score
}

// splitSentences breaks text on terminators followed by whitespace and keeps
// only sentence-sized pieces
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	keep := func() {
		s := strings.TrimSpace(current.String())
		if len(s) >= minSentenceLen && len(s) <= maxSentenceLen {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				keep()
			}
		}
	}
	if current.Len() > 0 {
		keep()
	}
	return sentences
}

// dedupeByOverlap drops claims sharing more than 70% of their vocabulary
// with an earlier claim (greedy, first occurrence wins)
func dedupeByOverlap(claims []string) []string {
	var unique []string
	for _, claim := range claims {
		dup := false
		for _, existing := range unique {
			if jaccard(claim, existing) > dedupeOverlap {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, claim)
		}
	}
	return unique
}

func jaccard(a, b string) float64 {
	wordsA := fieldSet(a)
	wordsB := fieldSet(b)

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
