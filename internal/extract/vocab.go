package extract

import (
	"regexp"
	"strings"
)

// Closed keyword sets that mark a short query as a verifiable assertion.
// They are kept as data so they can be tested and extended independently.

var relationshipWords = newWordSet(
	"marriage", "married", "wedding", "engaged", "engagement",
	"husband", "wife", "spouse", "partner", "boyfriend", "girlfriend",
	"dating", "divorce", "divorced", "couple", "relationship",
	"affair", "breakup", "split", "marrage",
)

var eventWords = newWordSet(
	"died", "death", "dead", "killed", "arrested", "pregnant",
	"born", "accident", "resigned", "elected", "won", "lost",
	"award", "oscar", "grammy", "murdered", "assassination", "assassinated",
	"suicide", "passed", "rip",
)

var deathWords = newWordSet(
	"dead", "died", "death", "killed", "murdered", "assassination",
	"assassinated", "suicide", "passed", "rip",
)

var roleWords = newWordSet(
	"ceo", "cto", "cfo", "coo", "founder", "cofounder", "co-founder",
	"president", "chairman", "chairperson", "director", "head",
	"manager", "owner", "chief", "lead", "leader",
	"minister", "secretary", "governor", "mayor", "commissioner",
	"captain", "coach", "principal", "dean",
)

type wordSet map[string]bool

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

func (s wordSet) containsAny(words []string) bool {
	for _, w := range words {
		if s[w] {
			return true
		}
	}
	return false
}

var lowerWordPattern = regexp.MustCompile(`[a-z]+(?:-[a-z]+)*`)

func tokenize(text string) []string {
	return lowerWordPattern.FindAllString(strings.ToLower(text), -1)
}

// IsAssertion reports whether the text mentions a relationship, notable
// event, or role/position, which marks a short input as a single
// verifiable claim.
func IsAssertion(text string) bool {
	words := tokenize(text)
	return relationshipWords.containsAny(words) ||
		eventWords.containsAny(words) ||
		roleWords.containsAny(words)
}

// IsRelationshipClaim reports whether the text asserts a personal relationship
func IsRelationshipClaim(text string) bool {
	return relationshipWords.containsAny(tokenize(text))
}

// IsDeathClaim reports whether the text asserts that someone died
func IsDeathClaim(text string) bool {
	return deathWords.containsAny(tokenize(text))
}

// IsRoleClaim reports whether the text asserts an organizational role
func IsRoleClaim(text string) bool {
	return roleWords.containsAny(tokenize(text))
}
