package nlp

import (
	"sort"
	"strings"
)

// educationKeywords is the fixed credential vocabulary. Entries are matched
// whole-word and case-insensitively.
var educationKeywords = []string{
	"bachelor", "btech", "b.tech", "b tech", "be",
	"master", "mtech", "m.tech", "m tech", "ms",
	"phd", "ph.d",
	"diploma", "associate", "certification", "certified",
	"bca", "mca", "bsc", "msc", "ba", "ma", "mba",
	"b.a", "b.s", "m.a", "m.s",
}

// DetectEducation returns the education credentials mentioned in the text,
// uppercased and deduplicated, in sorted order for determinism.
func DetectEducation(text string) []string {
	textLower := strings.ToLower(text)

	seen := make(map[string]bool)
	for _, keyword := range educationKeywords {
		if containsWholeWord(textLower, keyword) {
			seen[strings.ToUpper(keyword)] = true
		}
	}

	found := make([]string, 0, len(seen))
	for credential := range seen {
		found = append(found, credential)
	}
	sort.Strings(found)
	return found
}
