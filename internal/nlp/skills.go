package nlp

import (
	"strings"

	"github.com/surendra-bolla/NeuralScan/internal/taxonomy"
	"github.com/surendra-bolla/NeuralScan/internal/types"
)

// Extractor matches text against a skill taxonomy. It is safe for concurrent
// use; the taxonomy is read-only after construction.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// NewExtractor creates an Extractor over the given taxonomy.
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// Taxonomy returns the taxonomy this extractor matches against.
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// ExtractSkills returns the categorized set of taxonomy keywords present in
// the text. Every taxonomy category appears in the result, empty when nothing
// matched. Matching is case-insensitive, literal (no pattern interpretation),
// and whole-word: a keyword must not be a sub-token of a longer word, so
// "sql" does not match inside "mysql".
func (e *Extractor) ExtractSkills(text string) types.CategorizedSkillSet {
	textLower := strings.ToLower(text)

	extracted := make(types.CategorizedSkillSet, len(e.tax.Categories()))
	for _, cat := range e.tax.Categories() {
		matched := make([]string, 0)
		for _, keyword := range cat.Keywords {
			if containsWholeWord(textLower, keyword) {
				matched = append(matched, keyword)
			}
		}
		extracted[cat.Name] = matched
	}
	return extracted
}

// containsWholeWord reports whether keyword occurs in text delimited by
// non-word characters on both sides. The keyword itself may contain
// non-word characters ("c++", "ci/cd"); boundaries are checked against the
// characters adjacent to the occurrence, not the keyword's own edges.
func containsWholeWord(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)

		beforeOK := idx == 0 || !isWordByte(text[idx-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
