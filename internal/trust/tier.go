// Package trust classifies evidence sources by provenance tier and scores
// domain credibility.
package trust

import (
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// FactCheckDomains are dedicated fact-checking outlets targeted by
// site-restricted evidence searches
var FactCheckDomains = []string{
	"snopes.com",
	"factcheck.org",
	"politifact.com",
	"fullfact.org",
	"reuters.com/fact-check",
	"apnews.com/hub/ap-fact-check",
}

// GovtDomains are government and official regulatory bodies targeted by
// site-restricted evidence searches
var GovtDomains = []string{
	"gov.in", "pib.gov.in", "sec.gov", "who.int", "un.org",
}

// tier tables, checked highest first so the strongest match wins
var tier3Domains = []string{
	"gov.in", "nic.in", "pib.gov.in",
	".gov", ".gov.uk", ".gov.au",
	"who.int", "un.org", "worldbank.org",
	"sec.gov", "fda.gov", "cdc.gov",
	"sebi.gov.in", "rbi.org.in",
	"europa.eu",
}

var tier2Domains = []string{
	"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk",
	"snopes.com", "factcheck.org", "politifact.com", "fullfact.org",
	"wikipedia.org", "britannica.com",
	"nytimes.com", "theguardian.com", "washingtonpost.com",
	"thehindu.com", "ndtv.com", "indianexpress.com",
	"nature.com", "sciencedirect.com", "pubmed.ncbi.nlm.nih.gov",
}

var tier1Domains = []string{
	"cnn.com", "aljazeera.com", "dw.com", "france24.com",
	"timesofindia.indiatimes.com", "hindustantimes.com",
	"livemint.com", "moneycontrol.com", "economictimes.indiatimes.com",
	"cnbc.com", "bloomberg.com", "forbes.com",
}

// TierFor classifies a URL or bare domain into a trust tier. Matching is by
// substring against the lowercased input, highest tier first, so
// "sec.gov/news" hits tier 3 before any weaker pattern can claim it.
func TierFor(urlOrDomain string) model.TrustTier {
	lower := strings.ToLower(urlOrDomain)
	for _, domain := range tier3Domains {
		if strings.Contains(lower, domain) {
			return model.TierOfficial
		}
	}
	for _, domain := range tier2Domains {
		if strings.Contains(lower, domain) {
			return model.TierTrusted
		}
	}
	for _, domain := range tier1Domains {
		if strings.Contains(lower, domain) {
			return model.TierNews
		}
	}
	return model.TierOther
}
