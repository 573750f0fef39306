// Package coordination detects near-duplicate messaging across text chunks
// with TF-IDF vectors and pairwise cosine similarity.
package coordination

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	chunkWords     = 200
	minChunkChars  = 20
	maxChunks      = 100
	pairThreshold  = 0.8
	scorePrecision = 4
)

// Result summarizes duplication across the analyzed texts
type Result struct {
	SimilarityScore  float64 `json:"similarity_score"`  // mean pairwise cosine, 0..1
	CoordinatedPairs int     `json:"coordinated_pairs"` // pairs above the threshold
}

// english stopwords excluded from term vectors
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "she": true, "that": true, "the": true, "their": true,
	"they": true, "this": true, "to": true, "was": true, "were": true,
	"which": true, "will": true, "with": true, "you": true, "your": true,
	"not": true, "no": true, "we": true, "our": true, "been": true,
	"had": true, "do": true, "does": true, "did": true, "so": true,
	"if": true, "then": true, "than": true, "there": true, "these": true,
	"those": true, "what": true, "when": true, "who": true, "how": true,
	"all": true, "also": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "only": true, "into": true, "over": true,
	"after": true, "before": true, "between": true, "out": true, "up": true,
	"about": true, "against": true, "during": true, "would": true,
	"could": true, "should": true, "can": true, "may": true, "might": true,
	"i": true, "me": true, "my": true, "him": true, "them": true, "us": true,
	"because": true, "while": true, "where": true, "why": true, "each": true,
	"any": true, "both": true, "few": true, "same": true, "own": true,
	"very": true, "just": true, "too": true, "again": true, "once": true,
	"here": true, "now": true, "am": true, "being": true, "having": true,
	"doing": true, "until": true, "below": true, "above": true, "under": true,
	"further": true, "itself": true, "himself": true, "herself": true,
	"themselves": true, "myself": true, "yourself": true, "ourselves": true,
}

// Detect computes the duplication signal across texts. Fewer than two
// chunks in total means nothing to compare and a zero score.
func Detect(texts []string) Result {
	var chunks []string
	for _, text := range texts {
		chunks = append(chunks, splitChunks(text)...)
	}
	if len(chunks) < 2 {
		return Result{}
	}
	if len(chunks) > maxChunks {
		chunks = chunks[:maxChunks]
	}

	vectors := tfidfVectors(chunks)

	var sum float64
	var pairs, coordinated int
	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			sim := cosine(vectors[i], vectors[j])
			sum += sim
			pairs++
			if sim > pairThreshold {
				coordinated++
			}
		}
	}

	if pairs == 0 {
		return Result{}
	}
	factor := math.Pow(10, scorePrecision)
	return Result{
		SimilarityScore:  math.Round(sum/float64(pairs)*factor) / factor,
		CoordinatedPairs: coordinated,
	}
}

// splitChunks breaks text into fixed-size word windows, dropping slivers
func splitChunks(text string) []string {
	words := strings.Fields(text)
	var chunks []string
	for i := 0; i < len(words); i += chunkWords {
		end := i + chunkWords
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if len(strings.TrimSpace(chunk)) > minChunkChars {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// tfidfVectors builds one dense TF-IDF vector per chunk over the shared
// vocabulary. Terms are lowercased alphanumeric words minus stopwords.
func tfidfVectors(chunks []string) [][]float64 {
	termIndex := make(map[string]int)
	counts := make([]map[string]int, len(chunks))
	docFreq := make(map[string]int)

	for i, chunk := range chunks {
		counts[i] = make(map[string]int)
		for _, term := range terms(chunk) {
			if _, ok := termIndex[term]; !ok {
				termIndex[term] = len(termIndex)
			}
			if counts[i][term] == 0 {
				docFreq[term]++
			}
			counts[i][term]++
		}
	}

	n := float64(len(chunks))
	vectors := make([][]float64, len(chunks))
	for i, count := range counts {
		vec := make([]float64, len(termIndex))
		total := 0
		for _, c := range count {
			total += c
		}
		if total == 0 {
			vectors[i] = vec
			continue
		}
		for term, c := range count {
			tf := float64(c) / float64(total)
			idf := math.Log(n/float64(docFreq[term])) + 1
			vec[termIndex[term]] = tf * idf
		}
		vectors[i] = vec
	}
	return vectors
}

func terms(chunk string) []string {
	var out []string
	for _, word := range strings.Fields(strings.ToLower(chunk)) {
		cleaned := strings.TrimFunc(word, func(r rune) bool {
			return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
		})
		if len(cleaned) > 1 && !stopwords[cleaned] {
			out = append(out, cleaned)
		}
	}
	return out
}

// cosine is the normalized dot product of two equal-length vectors
func cosine(a, b []float64) float64 {
	dot := floats.Dot(a, b)
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}
