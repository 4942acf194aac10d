package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// Entity category keys, mirroring common NER label sets.
const (
	EntityPerson   = "PERSON"
	EntityOrg      = "ORG"
	EntityLocation = "GPE"
	EntityDate     = "DATE"
)

var (
	orgSuffixRe = regexp.MustCompile(`\b([A-Z][A-Za-z&.-]*(?:\s+[A-Z][A-Za-z&.-]*)*\s+(?:Inc|LLC|Ltd|Corp|Corporation|Technologies|Systems|Solutions|Labs|University|Institute|College)\.?)\b`)
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	nameLineRe  = regexp.MustCompile(`(?m)^\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2})\s*$`)
)

// ExtractEntities performs a heuristic entity scan used for auxiliary
// reporting only; it never feeds scoring. Organizations are detected by
// corporate and academic suffixes, dates by month-year and standalone year
// mentions, and person names by short capitalized lines (typical resume
// headers). Location detection would need a gazetteer and is left empty.
func ExtractEntities(text string) map[string][]string {
	entities := map[string][]string{
		EntityPerson:   {},
		EntityOrg:      {},
		EntityLocation: {},
		EntityDate:     {},
	}

	for _, m := range orgSuffixRe.FindAllStringSubmatch(text, -1) {
		entities[EntityOrg] = append(entities[EntityOrg], strings.TrimSpace(m[1]))
	}

	for _, m := range nameLineRe.FindAllStringSubmatch(text, -1) {
		entities[EntityPerson] = append(entities[EntityPerson], strings.TrimSpace(m[1]))
	}

	textLower := strings.ToLower(text)
	for _, m := range monthYearRe.FindAllString(textLower, -1) {
		entities[EntityDate] = append(entities[EntityDate], m)
	}
	for _, m := range yearRe.FindAllString(text, -1) {
		entities[EntityDate] = append(entities[EntityDate], m)
	}

	for key := range entities {
		entities[key] = dedupeSorted(entities[key])
	}
	return entities
}

// dedupeSorted removes duplicates and sorts for deterministic output.
func dedupeSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
