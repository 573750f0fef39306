// Package verify checks person and organization claims against the
// structured knowledge source before any generic web evidence is consulted.
// A definitive answer here short-circuits the search waterfall.
package verify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/crosscheck/internal/extract"
	"github.com/ppiankov/crosscheck/internal/knowledge"
	"github.com/ppiankov/crosscheck/internal/model"
)

const (
	supportConfidence    = 0.7
	contradictConfidence = 0.85
	unverifiedConfidence = 0.3

	maxSources        = 8
	maxCorrectedChars = 600
	snippetChars      = 400
	extractChars      = 4000
)

// contradiction keywords scanned in article text for claims that are
// neither death nor relationship assertions
var debunkKeywords = []string{"not true", "false", "hoax", "debunked", "no evidence", "fake"}

// KnowledgeSource is the subset of the knowledge client the verifier needs
type KnowledgeSource interface {
	SearchArticles(ctx context.Context, query string, limit int) ([]knowledge.Article, error)
	ExtractText(ctx context.Context, title string, chars int) (string, error)
	Spouses(ctx context.Context, title string) ([]string, error)
	DeathDate(ctx context.Context, title string) (string, error)
	Leaders(ctx context.Context, title string) ([]model.KnowledgeFact, error)
}

// Verifier resolves claims against recorded facts
type Verifier struct {
	source KnowledgeSource
	log    *zap.SugaredLogger
}

// NewVerifier creates a knowledge-backed claim verifier
func NewVerifier(source KnowledgeSource, log *zap.SugaredLogger) *Verifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Verifier{source: source, log: log}
}

// PersonClaim verifies a claim about named people (death, marriage, or a
// general assertion) against the knowledge source. A nil result means the
// verifier could not determine anything and the caller should fall through
// to generic evidence gathering.
func (v *Verifier) PersonClaim(ctx context.Context, claim model.Claim, persons []string) *model.ClaimVerdict {
	if len(persons) == 0 {
		return nil
	}

	isDeath := extract.IsDeathClaim(claim.Text)
	isRelationship := extract.IsRelationshipClaim(claim.Text)

	var (
		sources     []model.Evidence
		realFacts   []string
		corrections []string
		contradicts bool
	)

	for _, name := range persons {
		articles, err := v.source.SearchArticles(ctx, name, 1)
		if err != nil || len(articles) == 0 {
			continue
		}
		article := articles[0]
		text, _ := v.source.ExtractText(ctx, article.Title, extractChars)

		snippet := article.Snippet
		if text != "" {
			snippet = truncate(text, snippetChars)
		}
		sources = append(sources, model.Evidence{
			Platform: "Wikipedia",
			Title:    article.Title,
			URL:      article.URL,
			Source:   "Wikipedia",
			Snippet:  snippet,
			Tier:     model.TierTrusted,
			Stance:   model.StanceNeutral,
		})

		switch {
		case isDeath:
			deathDate, err := v.source.DeathDate(ctx, article.Title)
			if err != nil {
				continue
			}
			v.log.Infow("death date lookup", "person", article.Title, "date", deathDate)
			if deathDate != "" {
				realFacts = append(realFacts,
					fmt.Sprintf("According to Wikidata, %s died on %s.", article.Title, deathDate))
			} else {
				// no recorded death date means the person is alive
				contradicts = true
				corrections = append(corrections, fmt.Sprintf(
					"%s is NOT dead. According to Wikidata, there is no date of death recorded. "+
						"%s is alive as of the latest available data.", article.Title, article.Title))
			}

		case isRelationship:
			spouses, err := v.source.Spouses(ctx, article.Title)
			if err != nil {
				continue
			}
			v.log.Infow("spouse lookup", "person", article.Title, "spouses", spouses)
			if len(spouses) > 0 {
				realFacts = append(realFacts, fmt.Sprintf(
					"According to Wikipedia/Wikidata, %s's spouse(s): %s.",
					article.Title, strings.Join(spouses, ", ")))
				for _, other := range otherNames(persons, name) {
					if !nameAmong(other, spouses) {
						contradicts = true
						corrections = append(corrections, fmt.Sprintf(
							"%s is NOT married to / in a relationship with %s. "+
								"According to Wikidata, %s's known spouse(s): %s.",
							article.Title, other, article.Title, strings.Join(spouses, ", ")))
					}
				}
			} else {
				textLower := strings.ToLower(text)
				for _, other := range otherNames(persons, name) {
					if !strings.Contains(textLower, strings.ToLower(other)) {
						contradicts = true
						corrections = append(corrections, fmt.Sprintf(
							"There is no verified information linking %s to %s "+
								"in a romantic relationship or marriage. "+
								"This claim could not be confirmed via Wikipedia or Wikidata.",
							article.Title, other))
					}
				}
			}

		default:
			textLower := strings.ToLower(text)
			for _, kw := range debunkKeywords {
				if strings.Contains(textLower, kw) {
					contradicts = true
					corrections = append(corrections,
						fmt.Sprintf("Wikipedia article on %s mentions: '%s'.", article.Title, kw))
					break
				}
			}
		}
	}

	return conclude(claim, sources, realFacts, corrections, contradicts)
}

// OrgRoleClaim verifies claims of the form "person holds role at
// organization" against recorded leadership facts. The claim must actually
// contain a role word and both a person and an organization name; otherwise
// nil is returned without any lookups.
func (v *Verifier) OrgRoleClaim(ctx context.Context, claim model.Claim, persons, orgs []string) *model.ClaimVerdict {
	if len(persons) == 0 || len(orgs) == 0 {
		return nil
	}
	if !extract.IsRoleClaim(claim.Text) {
		return nil
	}

	var (
		sources     []model.Evidence
		realFacts   []string
		corrections []string
		contradicts bool
	)

	for _, org := range orgs {
		article, ok := v.findOrgArticle(ctx, org)
		if !ok {
			continue
		}
		text, _ := v.source.ExtractText(ctx, article.Title, extractChars)

		snippet := article.Snippet
		if text != "" {
			snippet = truncate(text, snippetChars)
		}
		sources = append(sources, model.Evidence{
			Platform: "Wikipedia",
			Title:    article.Title,
			URL:      article.URL,
			Source:   "Wikipedia",
			Snippet:  snippet,
			Tier:     model.TierTrusted,
			Stance:   model.StanceNeutral,
		})

		leaders, err := v.source.Leaders(ctx, article.Title)
		if err != nil {
			continue
		}
		v.log.Infow("leadership lookup", "org", article.Title, "leaders", leaders)

		if len(leaders) > 0 {
			labels := make([]string, 0, len(leaders))
			names := make([]string, 0, len(leaders))
			for _, l := range leaders {
				labels = append(labels, l.Property+": "+l.Value)
				names = append(names, l.Value)
			}
			realFacts = append(realFacts, fmt.Sprintf(
				"According to Wikidata, %s leadership: %s.", article.Title, strings.Join(labels, ", ")))
			for _, person := range persons {
				if !nameAmong(person, names) {
					contradicts = true
					corrections = append(corrections, fmt.Sprintf(
						"%s is NOT a known leader of %s. According to Wikidata: %s.",
						person, article.Title, strings.Join(labels, ", ")))
				}
			}
		} else {
			textLower := strings.ToLower(text)
			for _, person := range persons {
				if !strings.Contains(textLower, strings.ToLower(person)) {
					contradicts = true
					corrections = append(corrections, fmt.Sprintf(
						"No verified information linking %s to a leadership role at %s.",
						person, article.Title))
				}
			}
		}
	}

	return conclude(claim, sources, realFacts, corrections, contradicts)
}

// findOrgArticle searches with a disambiguating suffix first so that
// "Tesla" resolves to the company rather than Nikola Tesla
func (v *Verifier) findOrgArticle(ctx context.Context, org string) (knowledge.Article, bool) {
	for _, query := range []string{org + " company", org + " organization", org} {
		articles, err := v.source.SearchArticles(ctx, query, 1)
		if err == nil && len(articles) > 0 {
			return articles[0], true
		}
	}
	return knowledge.Article{}, false
}

// conclude folds gathered facts into a verdict. Contradiction beats support;
// sources are retagged with the final stance.
func conclude(claim model.Claim, sources []model.Evidence, realFacts, corrections []string, contradicts bool) *model.ClaimVerdict {
	if len(sources) == 0 {
		return nil
	}

	var verdict model.Verdict
	var confidence float64
	switch {
	case contradicts:
		verdict = model.VerdictLikelyFalse
		confidence = contradictConfidence
		for i := range sources {
			sources[i].Stance = model.StanceContradicts
		}
	case len(realFacts) > 0:
		verdict = model.VerdictLikelyTrue
		confidence = supportConfidence
		for i := range sources {
			sources[i].Stance = model.StanceSupports
		}
	default:
		verdict = model.VerdictUnverified
		confidence = unverifiedConfidence
	}

	corrected := truncate(strings.Join(corrections, " "), maxCorrectedChars)
	if corrected == "" && len(realFacts) > 0 {
		corrected = truncate(strings.Join(realFacts, " "), maxCorrectedChars)
	}

	if len(sources) > maxSources {
		sources = sources[:maxSources]
	}
	return &model.ClaimVerdict{
		Claim:         claim,
		Verdict:       verdict,
		Confidence:    confidence,
		CorrectedInfo: corrected,
		Sources:       sources,
	}
}

func otherNames(all []string, current string) []string {
	var others []string
	for _, n := range all {
		if !strings.EqualFold(n, current) {
			others = append(others, n)
		}
	}
	return others
}

// nameAmong reports whether the name matches any candidate, in either
// containment direction, case-insensitively
func nameAmong(name string, candidates []string) bool {
	lower := strings.ToLower(name)
	for _, c := range candidates {
		cl := strings.ToLower(c)
		if strings.Contains(cl, lower) || strings.Contains(lower, cl) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
