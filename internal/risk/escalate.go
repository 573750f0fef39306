package risk

import (
	"fmt"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Escalate raises the risk level based on the narrative synthesizer's
// verdict. The narrative can only push risk upward, never soften it:
// FALSE or MISLEADING forces HIGH, UNVERIFIED or PARTIALLY TRUE lifts LOW
// to MEDIUM, TRUE and everything else leave the assessment unchanged.
func Escalate(assessment model.RiskAssessment, narrative *model.NarrativeVerdict) model.RiskAssessment {
	if narrative == nil {
		return assessment
	}

	switch strings.ToUpper(strings.TrimSpace(narrative.Verdict)) {
	case "FALSE", "MISLEADING":
		if !assessment.RiskLevel.AtLeast(model.RiskHigh) {
			assessment = raise(assessment, model.RiskHigh,
				"Narrative analysis classified the claim as "+strings.ToLower(narrative.Verdict)+".")
		}
	case "UNVERIFIED", "PARTIALLY TRUE":
		if !assessment.RiskLevel.AtLeast(model.RiskMedium) {
			assessment = raise(assessment, model.RiskMedium,
				"Narrative analysis could not fully verify the claim.")
		}
	}
	return assessment
}

// raise applies an escalated level: the narrative reason becomes the
// leading one and the summary's opening sentence is restated at the new
// level so the summary never contradicts risk_level
func raise(assessment model.RiskAssessment, level model.RiskLevel, reason string) model.RiskAssessment {
	assessment.RiskLevel = level
	assessment.Reasons = append([]string{reason}, assessment.Reasons...)
	assessment.Summary = rewriteSummaryLead(assessment.Summary, level,
		assessment.MisinformationScore, assessment.ReputationRiskScore)
	return assessment
}

// rewriteSummaryLead swaps the summary's first sentence for one reporting
// the escalated level, keeping the rest of the summary intact
func rewriteSummaryLead(summary string, level model.RiskLevel, misinfoScore, reputationScore int) string {
	lead := fmt.Sprintf(
		"The analysis indicates a %s risk level with a misinformation score of %d/100 and a reputation risk score of %d/100.",
		level, misinfoScore, reputationScore)
	if idx := strings.Index(summary, ". "); idx >= 0 {
		return lead + summary[idx+1:]
	}
	return lead
}
