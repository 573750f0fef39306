package model

// ClaimOrigin records where a claim came from
type ClaimOrigin string

const (
	OriginQuery     ClaimOrigin = "query"     // The user's query taken verbatim as the claim
	OriginExtracted ClaimOrigin = "extracted" // Mined from fetched content
)

// Claim is a short factual assertion, the unit of verification.
// Claims are immutable once produced by the extractor.
type Claim struct {
	Text   string      `json:"text"`
	Origin ClaimOrigin `json:"origin"`
}

// EntityKind categorizes a recognized name
type EntityKind string

const (
	EntityPerson       EntityKind = "person"
	EntityOrganization EntityKind = "organization"
)

// EntityMention is a person or organization name found in a claim
type EntityMention struct {
	Name string     `json:"name"`
	Kind EntityKind `json:"kind"`
}

// Verdict classifies a claim after verification
type Verdict string

const (
	VerdictLikelyTrue  Verdict = "likely_true"
	VerdictLikelyFalse Verdict = "likely_false"
	VerdictDisputed    Verdict = "disputed"
	VerdictUnverified  Verdict = "unverified"
)

// Contested reports whether the verdict counts against the content
// (likely_false and disputed claims both do)
func (v Verdict) Contested() bool {
	return v == VerdictLikelyFalse || v == VerdictDisputed
}

// ClaimVerdict is the immutable result of verifying one claim
type ClaimVerdict struct {
	Claim         Claim      `json:"claim"`
	Verdict       Verdict    `json:"verdict"`
	Confidence    float64    `json:"confidence"`               // 0..1
	CorrectedInfo string     `json:"corrected_info,omitempty"` // What the sources say instead
	Sources       []Evidence `json:"sources"`                  // At most 8, stance-tagged
}

// KnowledgeFact is one typed property value resolved from the
// structured knowledge source (e.g. spouse, date of death, CEO)
type KnowledgeFact struct {
	Subject  string `json:"subject"`
	Property string `json:"property"`
	Value    string `json:"value"`
}
