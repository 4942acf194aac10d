// Package nlp provides the lightweight text-analysis utilities consumed by
// the screening pipeline: text normalization, sentence splitting, skill
// extraction against a taxonomy, and experience/education/entity detection.
package nlp

import (
	"regexp"
	"strings"
)

// minSentenceLength is the minimum raw sentence length; shorter fragments are
// dropped during splitting.
const minSentenceLength = 10

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialsRe   = regexp.MustCompile(`[^\w\s.-]`)
	sentenceRe   = regexp.MustCompile(`[.!?]+[\s\n]+|[.!?]+$|\n{2,}`)
)

// CleanText lowercases text, strips special characters (keeping word
// characters, hyphens, and dots) and collapses runs of whitespace.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = specialsRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitSentences splits text into cleaned sentences. Fragments shorter than
// 10 characters after trimming are discarded.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(strings.TrimSpace(part)) <= minSentenceLength {
			continue
		}
		cleaned := CleanText(part)
		if cleaned == "" {
			continue
		}
		sentences = append(sentences, cleaned)
	}
	return sentences
}
