// Package similarity computes pairwise cosine similarity across a batch
// corpus, classifies duplicate paragraph pairs and rolls them up into
// per-URL duplicate reports.
package similarity

import (
	"sort"

	"github.com/jollyroger89816/content-analysis/models"
)

// Matrix is the square, symmetric paragraph-similarity matrix for one
// batch. Values are cosine similarity in [0,1] with 1 on the diagonal.
// Produced once, then only read.
type Matrix struct {
	values [][]float64
}

// Size returns the number of paragraphs the matrix covers.
func (m *Matrix) Size() int { return len(m.values) }

// At returns the similarity between paragraphs i and j.
func (m *Matrix) At(i, j int) float64 { return m.values[i][j] }

// Compute builds the similarity matrix from L2-normalized weight vectors.
// For normalized vectors cosine similarity is the plain dot product.
// This is the O(n²) dominant cost of a batch and runs exactly once.
func Compute(rows [][]float64) *Matrix {
	n := len(rows)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := dot(rows[i], rows[j])
			if sim < 0 {
				sim = 0
			} else if sim > 1 {
				sim = 1
			}
			values[i][j] = sim
			values[j][i] = sim
		}
	}
	return &Matrix{values: values}
}

// DuplicatePair records two corpus positions whose similarity exceeded
// the threshold. A < B always holds.
type DuplicatePair struct {
	A          int
	B          int
	Similarity float64
}

// Classify returns the paragraph pairs exceeding the threshold. Unless
// countIntraURL is set, pairs within the same URL are skipped: the signal
// targets boilerplate shared across pages, not an author repeating
// themselves.
func Classify(m *Matrix, corpus *models.Corpus, threshold float64, countIntraURL bool) []DuplicatePair {
	var pairs []DuplicatePair
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) < threshold {
				continue
			}
			if !countIntraURL && corpus.Paragraphs[i].URL == corpus.Paragraphs[j].URL {
				continue
			}
			pairs = append(pairs, DuplicatePair{A: i, B: j, Similarity: m.At(i, j)})
		}
	}
	return pairs
}

// Aggregate marks every paragraph appearing in at least one qualifying
// pair as a duplicate for its owning URL and computes per-URL rates.
// Every URL present in the corpus gets a report; a URL with zero
// paragraphs has rate 0, not an error.
func Aggregate(pairs []DuplicatePair, corpus *models.Corpus) map[string]models.DuplicateReport {
	dupPositions := make(map[int]struct{})
	for _, pair := range pairs {
		dupPositions[pair.A] = struct{}{}
		dupPositions[pair.B] = struct{}{}
	}

	dupIndexes := make(map[string][]int)
	for pos := range dupPositions {
		p := corpus.Paragraphs[pos]
		dupIndexes[p.URL] = append(dupIndexes[p.URL], p.Index)
	}

	reports := make(map[string]models.DuplicateReport)
	for url, total := range corpus.ParagraphCounts() {
		indexes := dupIndexes[url]
		sort.Ints(indexes)
		reports[url] = models.DuplicateReport{
			URL:              url,
			TotalParagraphs:  total,
			DuplicateIndexes: indexes,
			DuplicateRate:    duplicateRate(len(indexes), total),
		}
	}
	return reports
}

// EmptyReport is the report for a URL that contributed no paragraphs.
func EmptyReport(url string) models.DuplicateReport {
	return models.DuplicateReport{URL: url, DuplicateRate: 0}
}

func duplicateRate(duplicates, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := 100 * float64(duplicates) / float64(total)
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
