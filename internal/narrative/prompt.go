package narrative

import (
	"fmt"
	"strings"
)

const (
	promptSourcesPerClaim = 3
	promptSnippetChars    = 150
	promptNewsSnippets    = 5
)

// BuildPrompt renders the gathered evidence into the structured prompt.
// The model is constrained to the evidence shown and must answer in the
// VERDICT / ANALYSIS / KEY FACTS / RECOMMENDATION format the parser expects.
func BuildPrompt(req Request) string {
	var claims strings.Builder
	for _, c := range req.CrossCheck.Claims {
		fmt.Fprintf(&claims, "\n- Claim: %q\n", c.Claim.Text)
		fmt.Fprintf(&claims, "  Verdict: %s (confidence: %.2f)\n", c.Verdict, c.Confidence)
		if c.CorrectedInfo != "" {
			fmt.Fprintf(&claims, "  Correction: %s\n", c.CorrectedInfo)
		}
		for i, src := range c.Sources {
			if i >= promptSourcesPerClaim {
				break
			}
			fmt.Fprintf(&claims, "  Source [%s]: %s - %s\n", src.Platform, src.Title, clip(src.Snippet, promptSnippetChars))
		}
	}

	news := newsLines(req)
	newsSection := " No recent news articles found."
	if len(news) > 0 {
		var sb strings.Builder
		for i, line := range news {
			fmt.Fprintf(&sb, "\n%d. %s", i+1, line)
		}
		newsSection = sb.String()
	}

	return fmt.Sprintf(`Analyze the following user query and the evidence gathered from multiple sources.

USER QUERY: %q

CROSS-CHECK RESULTS:
Overall reliability: %s
Platforms searched: %s
%s

SENTIMENT ANALYSIS:
Positive: %d%%, Neutral: %d%%, Negative: %d%%

RISK LEVEL: %s

NEWS COVERAGE:%s

Based on ALL the above evidence, provide a concise analysis in this exact format:

VERDICT: [TRUE / FALSE / MISLEADING / UNVERIFIED / PARTIALLY TRUE]
ANALYSIS: [2-3 sentences explaining your reasoning based on the evidence]
KEY FACTS: [2-4 bullet points of verified facts relevant to this query]
RECOMMENDATION: [1 sentence advising the reader]

Be factual and evidence-based. Do not speculate beyond what the sources say.`,
		req.Query,
		req.CrossCheck.OverallReliability,
		strings.Join(req.CrossCheck.PlatformsSearched, ", "),
		claims.String(),
		req.Sentiment.Positive, req.Sentiment.Neutral, req.Sentiment.Negative,
		req.RiskLevel,
		newsSection)
}

// newsLines pulls news-provider snippets out of the cross-check sources
func newsLines(req Request) []string {
	var lines []string
	for _, claim := range req.CrossCheck.Claims {
		for _, src := range claim.Sources {
			if !strings.HasPrefix(src.Platform, "NewsAPI") && src.Platform != "News Feed" {
				continue
			}
			lines = append(lines, fmt.Sprintf("[%s] %s - %s", src.Source, src.Title, clip(src.Snippet, promptSnippetChars)))
			if len(lines) >= promptNewsSnippets {
				return lines
			}
		}
	}
	return lines
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
