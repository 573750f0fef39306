// Package risk folds verification, sentiment, coordination, and source
// trust signals into the final content-risk classification.
package risk

import (
	"fmt"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// classification thresholds
const (
	highNegativePct   = 50
	mediumNegativePct = 30
	highSimilarity    = 0.6
	mediumSimilarity  = 0.4
	lowTrust          = 0.3
	moderateTrust     = 0.6
	positiveNotePct   = 40

	highReputationScore   = 60
	mediumReputationScore = 30

	highConfidenceScore   = 70
	mediumConfidenceScore = 35
)

// Score computes the risk assessment. Cross-check findings override
// everything else: any contested claim forces HIGH on its own. Below that,
// level conditions are evaluated strictly from HIGH to MEDIUM so the first
// matching band wins, and reasons accumulate in evaluation order.
func Score(sentiment model.Sentiment, similarity, sourceTrust float64, crossCheck model.CrossCheckResult) model.RiskAssessment {
	var reasons []string
	level := model.RiskLow

	contested := contestedClaims(crossCheck)
	if len(contested) > 0 {
		for _, claim := range contested {
			corrected := claim.CorrectedInfo
			if corrected == "" {
				corrected = "No correction available."
			}
			reasons = append(reasons, fmt.Sprintf(
				"Cross-platform check: claim %q is %s. %s",
				truncate(claim.Claim.Text, 80), verdictLabel(claim.Verdict), corrected))
		}
		level = model.RiskHigh
	}

	if level != model.RiskHigh {
		switch crossCheck.OverallReliability {
		case model.ReliabilityUnreliable:
			reasons = append(reasons, "Cross-platform verification rated this content as unreliable.")
			level = model.RiskHigh
		case model.ReliabilityQuestionable:
			reasons = append(reasons, "Cross-platform verification found questionable claims.")
		}
	}

	if level != model.RiskHigh {
		high := false
		if sentiment.Negative > highNegativePct {
			high = true
			reasons = append(reasons, fmt.Sprintf(
				"High negative sentiment detected: %d%% of content is negative.", sentiment.Negative))
		}
		if similarity > highSimilarity {
			high = true
			reasons = append(reasons, fmt.Sprintf(
				"Strong coordinated messaging detected: similarity score %.2f exceeds 0.6 threshold.", similarity))
		}
		if sourceTrust < lowTrust {
			high = true
			reasons = append(reasons, fmt.Sprintf(
				"Low source credibility: trust score %.2f is below 0.3.", sourceTrust))
		}

		if high {
			level = model.RiskHigh
		} else {
			medium := false
			if sentiment.Negative > mediumNegativePct {
				medium = true
				reasons = append(reasons, fmt.Sprintf(
					"Elevated negative sentiment: %d%% of content is negative.", sentiment.Negative))
			}
			if similarity > mediumSimilarity {
				medium = true
				reasons = append(reasons, fmt.Sprintf(
					"Moderate coordinated messaging: similarity score %.2f exceeds 0.4 threshold.", similarity))
			}
			if sourceTrust < moderateTrust {
				medium = true
				reasons = append(reasons, fmt.Sprintf(
					"Moderate source credibility concern: trust score %.2f is below 0.6.", sourceTrust))
			}

			if medium {
				level = model.RiskMedium
			} else {
				reasons = append(reasons, "Content appears to be from credible sources with balanced sentiment.")
				if sentiment.Positive > positiveNotePct {
					reasons = append(reasons, fmt.Sprintf(
						"Predominantly positive content: %d%% positive sentiment.", sentiment.Positive))
				}
			}
		}
	}

	misinfoScore := misinformationScore(sentiment, similarity, sourceTrust, crossCheck)
	reputationScore := reputationScore(sentiment, crossCheck)

	repLevel := model.RiskLow
	switch {
	case reputationScore >= highReputationScore:
		repLevel = model.RiskHigh
	case reputationScore >= mediumReputationScore:
		repLevel = model.RiskMedium
	}

	return model.RiskAssessment{
		RiskLevel:           level,
		Reasons:             reasons,
		MisinformationScore: misinfoScore,
		ReputationRiskScore: reputationScore,
		ReputationRiskLevel: repLevel,
		Confidence:          confidenceLabel(misinfoScore),
		Summary:             buildSummary(reasons, level, misinfoScore, reputationScore, crossCheck),
	}
}

// misinformationScore is a 0..100 composite: contested-claim ratio up to 50
// points, reliability label up to 15, negative sentiment up to 20,
// coordination up to 15, and distrust up to 15, clamped.
func misinformationScore(sentiment model.Sentiment, similarity, sourceTrust float64, crossCheck model.CrossCheckResult) int {
	score := 0

	if len(crossCheck.Claims) > 0 {
		ratio := float64(len(contestedClaims(crossCheck))) / float64(len(crossCheck.Claims))
		score += int(ratio * 50)
	}
	switch crossCheck.OverallReliability {
	case model.ReliabilityUnreliable:
		score += 15
	case model.ReliabilityQuestionable:
		score += 8
	}

	score += minInt(int(float64(sentiment.Negative)*0.4), 20)
	score += minInt(int(similarity*25), 15)
	score += minInt(int((1-sourceTrust)*15), 15)

	return clamp(score, 0, 100)
}

// reputationScore is a 0..100 composite: 30 points per contested claim up
// to 60, reliability label up to 15, negative sentiment up to 25.
func reputationScore(sentiment model.Sentiment, crossCheck model.CrossCheckResult) int {
	score := minInt(len(contestedClaims(crossCheck))*30, 60)

	switch crossCheck.OverallReliability {
	case model.ReliabilityUnreliable:
		score += 15
	case model.ReliabilityQuestionable:
		score += 8
	}

	score += minInt(int(float64(sentiment.Negative)*0.5), 25)
	return clamp(score, 0, 100)
}

func confidenceLabel(misinfoScore int) string {
	switch {
	case misinfoScore >= highConfidenceScore:
		return "High"
	case misinfoScore >= mediumConfidenceScore:
		return "Medium"
	default:
		return "Low"
	}
}

// buildSummary assembles the short evidence-based narrative shown to users
func buildSummary(reasons []string, level model.RiskLevel, misinfoScore, reputationScore int, crossCheck model.CrossCheckResult) string {
	parts := []string{fmt.Sprintf(
		"The analysis indicates a %s risk level with a misinformation score of %d/100 and a reputation risk score of %d/100.",
		level, misinfoScore, reputationScore)}

	contested := contestedClaims(crossCheck)
	if len(contested) > 0 {
		correction := ""
		for _, c := range contested {
			if c.CorrectedInfo != "" {
				correction = c.CorrectedInfo
				break
			}
		}
		sentence := fmt.Sprintf("Cross-platform verification flagged %d claim(s) as false or disputed.", len(contested))
		if correction != "" {
			sentence += " " + correction
		}
		parts = append(parts, sentence)
	} else if crossCheck.ClaimsChecked > 0 {
		parts = append(parts, fmt.Sprintf(
			"All %d claim(s) checked across trusted sources appear consistent.", crossCheck.ClaimsChecked))
	}

	if len(reasons) > 1 {
		parts = append(parts, "Key finding: "+reasons[0])
	}

	switch level {
	case model.RiskHigh:
		parts = append(parts, "Exercise extreme caution before sharing or acting on this content.")
	case model.RiskMedium:
		parts = append(parts, "We recommend verifying this information with additional trusted sources.")
	default:
		parts = append(parts, "The content appears generally reliable based on available evidence.")
	}

	return strings.Join(parts, " ")
}

func contestedClaims(crossCheck model.CrossCheckResult) []model.ClaimVerdict {
	var contested []model.ClaimVerdict
	for _, c := range crossCheck.Claims {
		if c.Verdict.Contested() {
			contested = append(contested, c)
		}
	}
	return contested
}

// verdictLabel renders likely_false as "Likely False"
func verdictLabel(v model.Verdict) string {
	words := strings.Split(string(v), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
