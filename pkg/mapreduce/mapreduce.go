// Package mapreduce aggregates per-URL token frequencies into batch-level
// keyword statistics.
package mapreduce

import (
	"fmt"
	"sort"
)

// Map counts token frequencies for a single URL's token sequences.
func Map(tokenRows [][]string) map[string]int {
	counts := make(map[string]int)
	for _, tokens := range tokenRows {
		for _, tok := range tokens {
			counts[tok]++
		}
	}
	return counts
}

// Reduce merges per-URL frequency maps into one batch-wide map.
func Reduce(intermediate []map[string]int) map[string]int {
	final := make(map[string]int)
	for _, counts := range intermediate {
		for tok, count := range counts {
			final[tok] += count
		}
	}
	return final
}

// TopKeywords returns the n most frequent tokens as "token:count"
// strings, sorted by count descending with ties broken alphabetically
// for stable output.
func TopKeywords(counts map[string]int, n int) []string {
	type kv struct {
		token string
		count int
	}

	sorted := make([]kv, 0, len(counts))
	for tok, count := range counts {
		sorted = append(sorted, kv{token: tok, count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].token < sorted[j].token
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	keywords := make([]string, n)
	for i := 0; i < n; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", sorted[i].token, sorted[i].count)
	}
	return keywords
}
