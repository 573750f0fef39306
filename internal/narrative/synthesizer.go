package narrative

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Synthesizer drives one completion round and parses the structured answer
type Synthesizer struct {
	completer Completer
	log       *zap.SugaredLogger
}

// NewSynthesizer wraps a completer; a nil completer disables synthesis
func NewSynthesizer(completer Completer, log *zap.SugaredLogger) *Synthesizer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Synthesizer{completer: completer, log: log}
}

// Enabled reports whether a provider is configured
func (s *Synthesizer) Enabled() bool { return s != nil && s.completer != nil }

// Analyze sends the evidence to the model and parses its verdict.
// Any failure returns nil; the analysis proceeds without a narrative.
func (s *Synthesizer) Analyze(ctx context.Context, req Request) *model.NarrativeVerdict {
	if !s.Enabled() {
		return nil
	}

	raw, err := s.completer.Complete(ctx, BuildPrompt(req))
	if err != nil {
		s.log.Warnw("narrative synthesis failed", "provider", s.completer.Name(), "error", err)
		return nil
	}
	s.log.Infow("narrative response", "provider", s.completer.Name(), "chars", len(raw))

	verdict := parseResponse(raw)
	verdict.Raw = raw
	return verdict
}

// parseResponse walks the model output line by line, tracking the current
// section so multi-line analyses and bulleted fact lists fold correctly
func parseResponse(text string) *model.NarrativeVerdict {
	result := &model.NarrativeVerdict{}
	section := ""

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		upper := strings.ToUpper(stripped)

		switch {
		case strings.HasPrefix(upper, "VERDICT:"):
			result.Verdict = strings.Trim(afterColon(stripped), "*[] ")
			section = "verdict"
		case strings.HasPrefix(upper, "ANALYSIS:"):
			result.Analysis = afterColon(stripped)
			section = "analysis"
		case strings.HasPrefix(upper, "KEY FACTS:") || strings.HasPrefix(upper, "KEY_FACTS:"):
			if rest := afterColon(stripped); rest != "" {
				result.KeyFacts = append(result.KeyFacts, trimBullet(rest))
			}
			section = "facts"
		case strings.HasPrefix(upper, "RECOMMENDATION:"):
			result.Recommendation = afterColon(stripped)
			section = "recommendation"
		case section == "analysis":
			result.Analysis += " " + stripped
		case section == "facts" && isBullet(stripped):
			result.KeyFacts = append(result.KeyFacts, trimBullet(stripped))
		case section == "recommendation":
			result.Recommendation += " " + stripped
		}
	}

	result.Analysis = strings.TrimSpace(result.Analysis)
	result.Recommendation = strings.TrimSpace(result.Recommendation)

	var facts []string
	for _, f := range result.KeyFacts {
		if f != "" {
			facts = append(facts, f)
		}
	}
	result.KeyFacts = facts
	return result
}

func afterColon(s string) string {
	_, rest, ok := strings.Cut(s, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

func isBullet(s string) bool {
	return strings.HasPrefix(s, "-") || strings.HasPrefix(s, "•") || strings.HasPrefix(s, "*")
}

func trimBullet(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, "-•* "))
}
