// Package vectorizer builds TF-IDF term-weight vectors over the corpus of
// one batch. Each batch is a fresh fit: IDF values are only meaningful
// relative to the document set they were computed from, so no vocabulary
// survives across invocations.
package vectorizer

import (
	"math"
	"sort"
)

// FitTransform builds a vocabulary and IDF values from the tokenized
// corpus and returns one weight vector per paragraph, in input order.
// Vectors are L2-normalized, so their dot product is cosine similarity.
// An empty corpus yields an empty matrix; a one-paragraph corpus a
// one-row matrix.
func FitTransform(corpus [][]string) [][]float64 {
	if len(corpus) == 0 {
		return nil
	}

	// Document frequencies.
	df := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Stable vocabulary ordering keeps runs reproducible.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		vocabulary[term] = i
		// Smoothed IDF avoids zeroing out terms present in every document.
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	rows := make([][]float64, len(corpus))
	for i, tokens := range corpus {
		rows[i] = embed(tokens, vocabulary, idf)
	}
	return rows
}

func embed(tokens []string, vocabulary map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if idx, ok := vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * idf[idx]
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
