// Package sentiment classifies text tone sentence by sentence using the
// VADER lexicon and reports a percentage breakdown.
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"github.com/jonreiter/govader"

	"github.com/ppiankov/crosscheck/internal/model"
)

// compound score cutoffs per the VADER convention
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05

	minSentenceLen = 10
)

// Analyzer scores text tone. The zero value is not usable; construct with
// NewAnalyzer so the lexicon is loaded once.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates a sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze scores every sentence and returns the rounded percentage split.
// Text with no scorable sentence is entirely neutral.
func (a *Analyzer) Analyze(text string) model.Sentiment {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return model.Sentiment{Positive: 0, Neutral: 100, Negative: 0}
	}

	var pos, neu, neg int
	for _, sentence := range sentences {
		compound := a.vader.PolarityScores(sentence).Compound
		switch {
		case compound >= positiveThreshold:
			pos++
		case compound <= negativeThreshold:
			neg++
		default:
			neu++
		}
	}

	total := float64(len(sentences))
	return model.Sentiment{
		Positive: int(math.Round(float64(pos) / total * 100)),
		Neutral:  int(math.Round(float64(neu) / total * 100)),
		Negative: int(math.Round(float64(neg) / total * 100)),
	}
}

// splitSentences breaks text at terminal punctuation followed by
// whitespace, keeping sentences longer than minSentenceLen
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if isTerminal(runes[i]) && (i+1 >= len(runes) || unicode.IsSpace(runes[i+1])) {
			appendSentence(&sentences, current.String())
			current.Reset()
		}
	}
	appendSentence(&sentences, current.String())
	return sentences
}

func appendSentence(sentences *[]string, raw string) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > minSentenceLen {
		*sentences = append(*sentences, trimmed)
	}
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
