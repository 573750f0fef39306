// Package verdict weighs gathered evidence into a per-claim verdict.
package verdict

import (
	"math"
	"sort"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

const (
	maxSources         = 8
	maxCorrectedChars  = 500
	correctionSnippets = 2
	unverifiedConf     = 0.3
	disputedConf       = 0.5
)

// contradictionMarkers flag a source as disputing the claim. The first
// marker found wins; one source contributes its weight exactly once.
var contradictionMarkers = []string{
	"false", "fake", "hoax", "myth", "debunked", "misleading",
	"incorrect", "inaccurate", "not true", "no evidence",
	"disproven", "baseless", "unfounded", "fabricated",
	"pants on fire", "mostly false", "partly false",
	"misinformation", "disinformation", "conspiracy",
}

var supportMarkers = []string{
	"true", "confirmed", "verified", "accurate", "correct",
	"evidence supports", "mostly true", "fact", "proven",
}

// Synthesize weighs evidence stances into a verdict for the claim.
// Higher-tier sources are evaluated first and count more. With no evidence
// at all the claim is unverified at zero confidence.
func Synthesize(claim model.Claim, sources []model.Evidence) model.ClaimVerdict {
	if len(sources) == 0 {
		return model.ClaimVerdict{
			Claim:      claim,
			Verdict:    model.VerdictUnverified,
			Confidence: 0.0,
		}
	}

	sorted := make([]model.Evidence, len(sources))
	copy(sorted, sources)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tier > sorted[j].Tier
	})

	var (
		contradictionScore float64
		supportScore       float64
		corrections        []correction
		tagged             []model.Evidence
	)

	for _, src := range sorted {
		haystack := strings.ToLower(src.Snippet + " " + src.Title)
		weight := src.Tier.Weight()

		entry := src
		switch {
		case containsAny(haystack, contradictionMarkers):
			contradictionScore += weight
			entry.Stance = model.StanceContradicts
			corrections = append(corrections, correction{tier: src.Tier, snippet: src.Snippet})
		case containsAny(haystack, supportMarkers):
			supportScore += weight
			entry.Stance = model.StanceSupports
		default:
			entry.Stance = model.StanceNeutral
		}
		tagged = append(tagged, entry)
	}

	total := contradictionScore + supportScore
	var verdict model.Verdict
	var confidence float64
	switch {
	case total == 0:
		verdict = model.VerdictUnverified
		confidence = unverifiedConf
	case contradictionScore > supportScore:
		verdict = model.VerdictLikelyFalse
		confidence = math.Min(contradictionScore/math.Max(total, 1), 1.0)
	case supportScore > contradictionScore:
		verdict = model.VerdictLikelyTrue
		confidence = math.Min(supportScore/math.Max(total, 1), 1.0)
	default:
		verdict = model.VerdictDisputed
		confidence = disputedConf
	}

	corrected := ""
	if verdict.Contested() && len(corrections) > 0 {
		sort.SliceStable(corrections, func(i, j int) bool {
			return corrections[i].tier > corrections[j].tier
		})
		var parts []string
		for i, c := range corrections {
			if i >= correctionSnippets {
				break
			}
			parts = append(parts, c.snippet)
		}
		corrected = strings.Join(parts, " ")
		if len(corrected) > maxCorrectedChars {
			corrected = corrected[:maxCorrectedChars]
		}
	}

	if len(tagged) > maxSources {
		tagged = tagged[:maxSources]
	}
	return model.ClaimVerdict{
		Claim:         claim,
		Verdict:       verdict,
		Confidence:    math.Round(confidence*100) / 100,
		CorrectedInfo: corrected,
		Sources:       tagged,
	}
}

type correction struct {
	tier    model.TrustTier
	snippet string
}

func containsAny(haystack string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(haystack, m) {
			return true
		}
	}
	return false
}
