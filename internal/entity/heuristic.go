package entity

import (
	"context"
	"regexp"
	"strings"
)

// Capitalized multi-word sequences ("John Smith", "Jane Van Doe")
var personPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)

// All-caps acronyms ("NASA", "WHO") read as organizations
var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// Capitalized names following "of"/"at" ("CEO of Google", "engineer at Tesla")
var orgAfterPrepPattern = regexp.MustCompile(`\b(?:of|at)\s+([A-Z][A-Za-z&]+(?:\s+[A-Z][A-Za-z&]+)*)`)

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// Common words that disqualify a lone capitalized token from being a name.
// Includes the relationship/event/role vocabulary so that title-cased queries
// like "is x dead" do not read event words as names.
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "is", "was", "are", "were", "with", "and", "or",
		"of", "in", "on", "at", "to", "for", "by", "from", "about", "that",
		"this", "it", "not", "but", "if", "has", "had", "have", "be", "been",
		"will", "would", "should", "could", "may", "might", "do", "does",
		"did", "who", "whom", "whose", "which", "what", "where", "when",
		"how", "why", "his", "her", "him", "she", "he", "they", "them",
		"we", "us", "you", "your", "my", "its", "our", "their",
		"marriage", "married", "wedding", "engaged", "engagement", "husband",
		"wife", "spouse", "partner", "boyfriend", "girlfriend", "dating",
		"divorce", "divorced", "couple", "relationship", "affair", "breakup",
		"died", "death", "dead", "killed", "arrested", "pregnant", "born",
		"accident", "resigned", "elected", "won", "lost", "award", "split",
		"marrage", "news", "real", "fake", "true", "false", "rumor", "rumour",
		"latest", "breaking", "update", "updates", "today", "yesterday",
		"report", "reports", "story", "stories", "video", "photo", "photos",
		"live", "watch", "new", "old", "big", "viral", "trending", "top",
		"best", "worst", "first", "last", "just", "now", "also", "very",
		"murder", "murdered", "suicide", "assassination", "assassinated",
		"passed", "rip", "ceo", "founder", "president", "chairman",
		"captain", "coach", "minister", "secretary", "governor",
	} {
		stopWords[w] = true
	}
}

// HeuristicRecognizer finds names by capitalization patterns. It is the
// fallback when no model-backed recognizer is configured.
type HeuristicRecognizer struct{}

// NewHeuristicRecognizer creates the regex-based recognizer
func NewHeuristicRecognizer() *HeuristicRecognizer {
	return &HeuristicRecognizer{}
}

// Recognize extracts person and organization names from text
func (r *HeuristicRecognizer) Recognize(_ context.Context, text string) Entities {
	persons := personPattern.FindAllString(text, -1)

	// Lone capitalized words that are not common English words are the last
	// resort for single-name queries ("rihanna dead" title-cased)
	if len(persons) == 0 {
		for _, w := range strings.Fields(text) {
			clean := wordPattern.FindString(w)
			if len(clean) < 3 || stopWords[strings.ToLower(clean)] {
				continue
			}
			persons = append(persons, titleCase(clean))
		}
	}

	var orgs []string
	orgs = append(orgs, acronymPattern.FindAllString(text, -1)...)
	for _, m := range orgAfterPrepPattern.FindAllStringSubmatch(text, -1) {
		orgs = append(orgs, m[1])
	}

	persons = dedupe(persons)

	// A name already read as a person is not also an organization
	personKeys := make(map[string]bool, len(persons))
	for _, p := range persons {
		personKeys[normalizeKey(p)] = true
	}
	var filtered []string
	for _, o := range orgs {
		if !personKeys[normalizeKey(o)] {
			filtered = append(filtered, o)
		}
	}

	return Entities{Persons: persons, Organizations: dedupe(filtered)}
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
