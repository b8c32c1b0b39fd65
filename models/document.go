package models

// FetchedDocument is what the fetch/parse collaborator hands the core:
// the ordered paragraphs of one URL, or a failure.
type FetchedDocument struct {
	URL            string   `json:"url"`
	Paragraphs     []string `json:"paragraphs"`
	FetchSucceeded bool     `json:"fetch_succeeded"`
	Error          string   `json:"error,omitempty"`
}

// Paragraph is one unit of comparable text. Index preserves the original
// document order within its URL. Immutable once tokenized.
type Paragraph struct {
	URL     string
	Index   int
	RawText string
	Tokens  []string
}

// Corpus is the flat, ordered sequence of all paragraphs across all URLs
// in one batch invocation. Built once per batch, discarded afterward.
// URL grouping is recoverable because each paragraph carries its source.
type Corpus struct {
	Paragraphs []Paragraph
}

// AddDocument appends one URL's paragraphs to the corpus with stable
// per-URL indexes. raw and tokens must be parallel slices.
func (c *Corpus) AddDocument(url string, raw []string, tokens [][]string) {
	for i, text := range raw {
		c.Paragraphs = append(c.Paragraphs, Paragraph{
			URL:     url,
			Index:   i,
			RawText: text,
			Tokens:  tokens[i],
		})
	}
}

// Len returns the number of paragraphs in the corpus.
func (c *Corpus) Len() int { return len(c.Paragraphs) }

// ParagraphCounts returns the total paragraph count per URL.
func (c *Corpus) ParagraphCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.Paragraphs {
		counts[p.URL]++
	}
	return counts
}
