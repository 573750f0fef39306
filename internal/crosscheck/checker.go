// Package crosscheck orchestrates claim extraction, knowledge verification,
// evidence gathering, and verdict synthesis for one piece of content.
package crosscheck

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/entity"
	"github.com/ppiankov/crosscheck/internal/extract"
	"github.com/ppiankov/crosscheck/internal/knowledge"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/search"
	"github.com/ppiankov/crosscheck/internal/verdict"
	"github.com/ppiankov/crosscheck/internal/verify"
)

const (
	maxQueryClaimChars    = 300
	maxFallbackClaimChars = 200
)

// Checker runs the full cross-check for one analysis
type Checker struct {
	recognizer entity.Recognizer
	extractor  *extract.ClaimExtractor
	verifier   *verify.Verifier
	knowledge  *knowledge.Client
	aggregator *search.Aggregator
	log        *zap.SugaredLogger
}

// NewChecker wires the cross-check collaborators
func NewChecker(recognizer entity.Recognizer, extractor *extract.ClaimExtractor, verifier *verify.Verifier, kc *knowledge.Client, aggregator *search.Aggregator, log *zap.SugaredLogger) *Checker {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Checker{
		recognizer: recognizer,
		extractor:  extractor,
		verifier:   verifier,
		knowledge:  kc,
		aggregator: aggregator,
		log:        log,
	}
}

// Analyze cross-checks the claims found in content against external
// evidence. When the user's query itself reads as a person claim it is
// taken verbatim as the primary claim and the scraped content stays
// background only.
func (c *Checker) Analyze(ctx context.Context, content, query string) model.CrossCheckResult {
	queryEntities := c.recognizer.Recognize(ctx, query)
	queryPersons := queryEntities.Persons
	queryIsClaim := len(queryPersons) > 0 && extract.IsAssertion(query)

	var claims []model.Claim
	if queryIsClaim {
		text := truncate(strings.TrimSpace(query), maxQueryClaimChars)
		claims = []model.Claim{{Text: text, Origin: model.OriginQuery}}
		c.log.Infow("query taken as claim", "persons", queryPersons, "claim", text)
	} else {
		claims = c.extractor.Extract(ctx, content, extract.DefaultMaxClaims)
		if len(claims) == 0 {
			claims = []model.Claim{{Text: truncate(query, maxFallbackClaimChars), Origin: model.OriginQuery}}
		}
	}
	c.log.Infow("claims to cross-check", "count", len(claims))

	sctx := search.NewContext()
	sctx.QueryPersons = queryPersons
	for _, org := range queryEntities.Organizations {
		site, err := c.knowledge.OfficialWebsite(ctx, org)
		if err != nil || site == "" {
			continue
		}
		sctx.OfficialSites[org] = site
		sctx.AddPlatform("Official Sites")
	}

	checked := make([]model.ClaimVerdict, 0, len(claims))
	for _, claim := range claims {
		checked = append(checked, c.checkClaim(ctx, claim, queryPersons, queryEntities.Organizations, queryIsClaim, sctx))
	}

	return model.CrossCheckResult{
		ClaimsChecked:      len(checked),
		Claims:             checked,
		PlatformsSearched:  sctx.Platforms(),
		OverallReliability: Aggregate(checked),
	}
}

func (c *Checker) checkClaim(ctx context.Context, claim model.Claim, queryPersons, queryOrgs []string, queryIsClaim bool, sctx *search.Context) model.ClaimVerdict {
	claimEntities := c.recognizer.Recognize(ctx, claim.Text)
	persons := claimEntities.Persons
	if len(persons) == 0 && queryIsClaim {
		persons = queryPersons
	}
	orgs := claimEntities.Organizations
	if len(orgs) == 0 {
		orgs = queryOrgs
	}

	// knowledge verification first; a definitive answer skips the search
	if len(persons) > 0 && extract.IsAssertion(claim.Text) {
		c.log.Infow("person claim detected", "persons", persons, "claim", claim.Text)

		if len(orgs) > 0 && extract.IsRoleClaim(claim.Text) {
			if result := c.verifier.OrgRoleClaim(ctx, claim, persons, orgs); result != nil && result.Verdict != model.VerdictUnverified {
				return *result
			}
		}
		if result := c.verifier.PersonClaim(ctx, claim, persons); result != nil && result.Verdict != model.VerdictUnverified {
			return *result
		}
	}

	effective := persons
	if len(effective) == 0 {
		effective = queryPersons
	}
	sources := c.aggregator.Gather(ctx, claim.Text, effective, sctx)
	return verdict.Synthesize(claim, sources)
}

// Aggregate folds per-claim verdicts into the overall reliability label.
// Contested claims dominate: a single one already makes the content
// questionable, a majority makes it unreliable.
func Aggregate(claims []model.ClaimVerdict) model.Reliability {
	total := len(claims)
	if total == 0 {
		return model.ReliabilityInsufficient
	}

	var contested, confirmed int
	for _, c := range claims {
		switch {
		case c.Verdict.Contested():
			contested++
		case c.Verdict == model.VerdictLikelyTrue:
			confirmed++
		}
	}

	half := float64(total) / 2
	switch {
	case float64(contested) > half:
		return model.ReliabilityUnreliable
	case contested > 0:
		return model.ReliabilityQuestionable
	case float64(confirmed) > half:
		return model.ReliabilityReliable
	default:
		return model.ReliabilityInsufficient
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
