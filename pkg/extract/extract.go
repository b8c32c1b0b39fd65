// Package extract turns fetched HTML into the ordered paragraph list the
// analysis core consumes. Readability isolates the main article content
// first, then the paragraph walk filters navigation residue and
// boilerplate notices.
package extract

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/jollyroger89816/content-analysis/models"
	"github.com/jollyroger89816/content-analysis/pkg/fetcher"
)

// minParagraphLength filters heading fragments and link stubs that would
// otherwise dominate similarity with near-empty vectors.
const minParagraphLength = 30

// boilerplateMarkers are phrases whose presence marks a paragraph as site
// chrome rather than content.
var boilerplateMarkers = []string{
	"all rights reserved",
	"click here to",
	"recommended reading",
	"subscribe to our newsletter",
	"terms of service",
	"privacy policy",
	"免责声明",
	"版权声明",
	"点击查看",
	"推荐阅读",
	"转载请注明出处",
}

// Source fetches and extracts documents. It is the orchestrator-facing
// collaborator; tests substitute a fake.
type Source struct {
	fetcher *fetcher.Fetcher
}

// NewSource wires a fetcher into the extraction pipeline.
func NewSource(f *fetcher.Fetcher) *Source {
	return &Source{fetcher: f}
}

// Fetch returns the FetchedDocument for one URL. Fetch or parse failures
// are reported inside the document, never as a batch failure.
func (s *Source) Fetch(ctx context.Context, rawURL string) models.FetchedDocument {
	html, err := s.fetcher.GetHTMLBytes(ctx, rawURL)
	if err != nil {
		return models.FetchedDocument{URL: rawURL, Error: err.Error()}
	}

	paragraphs, err := Paragraphs(rawURL, string(html))
	if err != nil {
		return models.FetchedDocument{URL: rawURL, Error: err.Error()}
	}

	return models.FetchedDocument{
		URL:            rawURL,
		Paragraphs:     paragraphs,
		FetchSucceeded: true,
	}
}

// Paragraphs extracts the ordered, filtered paragraph texts from HTML.
func Paragraphs(rawURL, html string) ([]string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		content = html
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted content: %w", err)
	}

	doc.Find("script,style,nav,footer,header").Remove()

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := normalizeText(sel.Text())
		if keepParagraph(text) {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs, nil
}

func keepParagraph(text string) bool {
	// Length is measured in runes so short Han paragraphs are filtered the
	// same as short Latin ones.
	if utf8.RuneCountInString(text) <= minParagraphLength {
		return false
	}
	lower := strings.ToLower(text)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// normalizeText collapses internal whitespace runs to single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
