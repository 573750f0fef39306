package sentiment

import (
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

func TestAnalyzeEmpty(t *testing.T) {
	a := NewAnalyzer()
	tests := []string{"", "   ", "short. ok."}
	want := model.Sentiment{Positive: 0, Neutral: 100, Negative: 0}

	for _, text := range tests {
		if got := a.Analyze(text); got != want {
			t.Errorf("Analyze(%q) = %+v, want %+v", text, got, want)
		}
	}
}

func TestAnalyzePercentagesSumToHundred(t *testing.T) {
	a := NewAnalyzer()
	got := a.Analyze("This product is absolutely wonderful and amazing. " +
		"The service was terrible and the staff was horrible. " +
		"The office is located on the third floor of the building.")

	sum := got.Positive + got.Neutral + got.Negative
	if sum < 99 || sum > 101 {
		t.Errorf("percentages sum to %d, want ~100 (%+v)", sum, got)
	}
}

func TestAnalyzePolarity(t *testing.T) {
	a := NewAnalyzer()

	positive := a.Analyze("This is a wonderful, excellent product and I love it completely.")
	if positive.Positive != 100 {
		t.Errorf("clearly positive text scored %+v", positive)
	}

	negative := a.Analyze("This is a horrible, disgusting failure and I hate it completely.")
	if negative.Negative != 100 {
		t.Errorf("clearly negative text scored %+v", negative)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"two sentences", "The first sentence is here. The second sentence follows it.", 2},
		{"short fragments dropped", "Hi. Ok. A much longer sentence survives the filter.", 1},
		{"no terminal punctuation", "a trailing sentence without any period at all", 1},
		{"abbreviation-like dot mid-word stays", "Version v1.2 shipped yesterday afternoon.", 1},
		{"exclamation and question", "What a surprising result this is! Did anyone expect this outcome?", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if len(got) != tt.want {
				t.Errorf("splitSentences(%q) = %d sentences %v, want %d", tt.text, len(got), got, tt.want)
			}
		})
	}
}
