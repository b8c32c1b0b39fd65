// Package tokenizer turns raw paragraph text into normalized token
// sequences for vectorization. Whitespace-delimited scripts go through
// UAX#29 word segmentation; Han text goes through dictionary-based
// maximum-probability segmentation, since splitting it per character
// destroys the discriminative power of term weighting.
package tokenizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/go-ego/gse"
	"github.com/pemistahl/lingua-go"
)

// Tokenizer is safe for concurrent use after construction.
type Tokenizer struct {
	detector lingua.LanguageDetector
	seg      gse.Segmenter
}

// New builds a tokenizer with the segmentation dictionary loaded.
func New() (*Tokenizer, error) {
	t := &Tokenizer{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Chinese, lingua.Japanese).
			Build(),
	}
	if err := t.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("failed to load segmentation dictionary: %w", err)
	}
	return t, nil
}

// Tokenize converts text into a normalized token sequence. Pure and
// deterministic; empty or whitespace-only input yields an empty sequence.
func (t *Tokenizer) Tokenize(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if t.needsSegmentation(text) {
		return t.segmentHan(text)
	}
	return segmentWords(text)
}

// needsSegmentation decides whether the text lacks explicit word
// boundaries. Language detection alone is not enough: mixed pages often
// classify as English even when the body is Han script.
func (t *Tokenizer) needsSegmentation(text string) bool {
	if !containsHan(text) {
		return false
	}
	lang, ok := t.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return lang == lingua.Chinese || lang == lingua.Japanese
}

func (t *Tokenizer) segmentHan(text string) []string {
	var tokens []string
	for _, tok := range t.seg.Cut(text, true) {
		tok = normalizeToken(tok)
		if tok == "" || IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func segmentWords(text string) []string {
	var tokens []string
	iter := words.FromString(text)
	for iter.Next() {
		tok := normalizeToken(iter.Value())
		if tok == "" || IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// normalizeToken lowercases and strips surrounding punctuation. Tokens
// with no letter or digit left are dropped.
func normalizeToken(tok string) string {
	tok = strings.ToLower(strings.TrimSpace(tok))
	tok = strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return tok
		}
	}
	return ""
}

func containsHan(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
