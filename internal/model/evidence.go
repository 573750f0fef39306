package model

// TrustTier ranks a source's presumed authority (0 = unknown, 3 = official)
type TrustTier int

const (
	TierOther    TrustTier = 0 // Unrecognized domains
	TierNews     TrustTier = 1 // Other known news outlets
	TierTrusted  TrustTier = 2 // Wire services, fact-checkers, encyclopedias
	TierOfficial TrustTier = 3 // Government, regulators, international bodies
)

// Weight returns the stance-score multiplier for the tier
func (t TrustTier) Weight() float64 {
	switch t {
	case TierOfficial:
		return 3.0
	case TierTrusted:
		return 2.0
	case TierNews:
		return 1.5
	default:
		return 1.0
	}
}

func (t TrustTier) String() string {
	switch t {
	case TierOfficial:
		return "Official/Govt"
	case TierTrusted:
		return "Trusted"
	case TierNews:
		return "News"
	default:
		return "Other"
	}
}

// Stance records whether a source supports or contradicts a claim
type Stance string

const (
	StanceSupports    Stance = "supports"
	StanceContradicts Stance = "contradicts"
	StanceNeutral     Stance = "neutral"
)

// Evidence is one search result gathered for a claim. The trust tier is
// assigned once at ingestion; results from official sites and government
// searches arrive already pinned to the official tier.
type Evidence struct {
	Platform string    `json:"platform"`
	Title    string    `json:"title"`
	Snippet  string    `json:"snippet"`
	URL      string    `json:"url"`
	Source   string    `json:"source"`
	Tier     TrustTier `json:"trust_tier"`
	Stance   Stance    `json:"stance,omitempty"`
}
