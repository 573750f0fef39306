package model

// Reliability is the aggregate label over all claims in one analysis
type Reliability string

const (
	ReliabilityReliable     Reliability = "reliable"
	ReliabilityQuestionable Reliability = "questionable"
	ReliabilityUnreliable   Reliability = "unreliable"
	ReliabilityInsufficient Reliability = "insufficient_data"
)

// CrossCheckResult is the output of verifying all claims in one analysis
type CrossCheckResult struct {
	ClaimsChecked      int            `json:"claims_checked"`
	Claims             []ClaimVerdict `json:"claims"`
	PlatformsSearched  []string       `json:"platforms_searched"`
	OverallReliability Reliability    `json:"overall_reliability"`
}

// Sentiment is a percentage breakdown of text tone; the three fields sum to 100
type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// RiskLevel is the categorical content risk classification
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// rank orders levels for monotonic escalation checks
func (r RiskLevel) rank() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r is the same or a higher level than other
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return r.rank() >= other.rank()
}

// RiskAssessment combines cross-check, sentiment, and duplication signals
// into the final risk classification
type RiskAssessment struct {
	RiskLevel           RiskLevel `json:"risk_level"`
	Reasons             []string  `json:"reasons"`
	MisinformationScore int       `json:"misinformation_score"` // 0..100
	ReputationRiskScore int       `json:"reputation_risk_score"` // 0..100
	ReputationRiskLevel RiskLevel `json:"reputation_risk_level"`
	Confidence          string    `json:"confidence"` // "Low", "Medium", "High"
	Summary             string    `json:"summary"`
}

// NarrativeVerdict is the optional coarse verdict from the generative
// narrative synthesizer. It may escalate, never de-escalate, risk.
type NarrativeVerdict struct {
	Verdict        string   `json:"verdict"` // TRUE, FALSE, MISLEADING, UNVERIFIED, PARTIALLY TRUE
	Analysis       string   `json:"analysis"`
	KeyFacts       []string `json:"key_facts"`
	Recommendation string   `json:"recommendation"`
	Raw            string   `json:"-"`
}

// RelatedArticle is a headline surfaced alongside the analysis
type RelatedArticle struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// RelatedInfo carries supplementary context for the response payload
type RelatedInfo struct {
	Articles   []RelatedArticle `json:"articles"`
	FactChecks []RelatedArticle `json:"fact_checks"`
	Entities   []EntityMention  `json:"entities"`
}

// Analysis is the complete result of one end-to-end run
type Analysis struct {
	ID               string            `json:"id"`
	Input            string            `json:"input"`
	InputType        string            `json:"input_type"` // "url" or "text"
	SourceURLs       []string          `json:"source_urls"`
	SourceTrustScore float64           `json:"source_trust_score"`
	Sentiment        Sentiment         `json:"sentiment"`
	SimilarityScore  float64           `json:"similarity_score"`
	CrossCheck       CrossCheckResult  `json:"cross_check"`
	Risk             RiskAssessment    `json:"risk"`
	Related          RelatedInfo       `json:"related"`
	Narrative        *NarrativeVerdict `json:"narrative,omitempty"`
}
