package trust

import (
	"math"
	"net/url"
	"strings"
)

// defaultTrust is assumed when nothing is known about the sources
const defaultTrust = 0.3

var trustedDomains = []string{
	"bbc.com", "bbc.co.uk",
	"reuters.com",
	"nytimes.com",
	"theguardian.com",
	"apnews.com",
	"npr.org",
	"washingtonpost.com",
	"bloomberg.com",
	"economist.com",
	"ft.com",
	"wsj.com",
	"wikipedia.org",
	"britannica.com",
	"nature.com",
	"science.org",
	"who.int",
	"cdc.gov",
	"nih.gov",
	"gov.uk",
	"europa.eu",
	"un.org",
	"snopes.com",
	"factcheck.org",
	"politifact.com",
	"fullfact.org",
	"abc.net.au",
	"cbsnews.com",
	"nbcnews.com",
	"abcnews.go.com",
	"time.com",
	"newsweek.com",
	"theatlantic.com",
	"vox.com",
	"propublica.org",
	"statista.com",
	"pewresearch.org",
}

var semiTrustedDomains = []string{
	"medium.com",
	"substack.com",
	"forbes.com",
	"businessinsider.com",
	"techcrunch.com",
	"wired.com",
	"arstechnica.com",
	"thehill.com",
	"axios.com",
	"politico.com",
	"slate.com",
	"salon.com",
	"huffpost.com",
	"vice.com",
	"buzzfeednews.com",
	"cnn.com",
	"foxnews.com",
	"msnbc.com",
	"usatoday.com",
	"latimes.com",
	"nypost.com",
	"dailymail.co.uk",
}

// Domain extracts the lowercased host from a URL, dropping a leading "www."
func Domain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	return strings.TrimPrefix(host, "www.")
}

// ScoreDomainTrust assigns a trust score in [0, 1] for one URL: 0.2 for
// HTTPS, plus 0.8 for a trusted domain or 0.4 for a semi-trusted one.
// Subdomains of a listed domain count as the listed domain.
func ScoreDomainTrust(rawURL string) float64 {
	score := 0.0
	parsed, err := url.Parse(rawURL)
	if err == nil && parsed.Scheme == "https" {
		score += 0.2
	}

	domain := Domain(rawURL)
	for _, trusted := range trustedDomains {
		if domain == trusted || strings.HasSuffix(domain, "."+trusted) {
			return math.Min(score+0.8, 1.0)
		}
	}
	for _, semi := range semiTrustedDomains {
		if domain == semi || strings.HasSuffix(domain, "."+semi) {
			return math.Min(score+0.4, 1.0)
		}
	}
	return math.Min(score, 1.0)
}

// ScoreSources averages domain trust across source URLs, rounded to three
// decimals. No sources at all yields the neutral default.
func ScoreSources(urls []string) float64 {
	if len(urls) == 0 {
		return defaultTrust
	}
	total := 0.0
	for _, u := range urls {
		total += ScoreDomainTrust(u)
	}
	return math.Round(total/float64(len(urls))*1000) / 1000
}
