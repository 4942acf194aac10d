// Package taxonomy defines the fixed catalog of recognized skill keywords,
// grouped into weighted categories. The taxonomy is immutable after
// construction and injectable, so tests can substitute small synthetic
// catalogs instead of the full keyword list.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/surendra-bolla/NeuralScan/internal/schemas"
)

// DefaultWeight is the scoring weight applied to categories that are not
// listed in the taxonomy's weight mapping.
const DefaultWeight = 0.05

// Category is one named group of canonical skill keywords with its relative
// importance weight.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Weight   float64  `json:"weight"`
}

// Taxonomy is an ordered, immutable set of skill categories. Order is
// significant: it fixes the iteration order used by extraction and reporting.
type Taxonomy struct {
	categories []Category
	byName     map[string]int
}

// New builds a Taxonomy from the given categories. Keywords are lowercased and
// deduplicated; duplicate category names are rejected.
func New(categories []Category) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}

	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("taxonomy category with empty name")
		}
		if _, exists := t.byName[name]; exists {
			return nil, fmt.Errorf("duplicate taxonomy category %q", name)
		}

		seen := make(map[string]bool, len(c.Keywords))
		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			keywords = append(keywords, kw)
		}

		t.byName[name] = len(t.categories)
		t.categories = append(t.categories, Category{
			Name:     name,
			Keywords: keywords,
			Weight:   c.Weight,
		})
	}

	return t, nil
}

// Categories returns the categories in taxonomy order. Callers must not
// modify the returned slice.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// CategoryNames returns the category names in taxonomy order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Keywords returns the keyword list for a category, or nil if the category is
// not part of the taxonomy.
func (t *Taxonomy) Keywords(category string) []string {
	if idx, ok := t.byName[category]; ok {
		return t.categories[idx].Keywords
	}
	return nil
}

// Weight returns the scoring weight for a category. Categories absent from
// the taxonomy fall back to DefaultWeight.
func (t *Taxonomy) Weight(category string) float64 {
	if idx, ok := t.byName[category]; ok {
		return t.categories[idx].Weight
	}
	return DefaultWeight
}

// TotalKeywords returns the number of distinct keywords across all categories.
func (t *Taxonomy) TotalKeywords() int {
	seen := make(map[string]bool)
	for _, c := range t.categories {
		for _, kw := range c.Keywords {
			seen[kw] = true
		}
	}
	return len(seen)
}

// taxonomyFile is the on-disk JSON shape for injectable taxonomies.
type taxonomyFile struct {
	Categories []Category `json:"categories"`
}

// Load reads a taxonomy definition from a JSON file, validates it against the
// taxonomy JSON schema, and builds a Taxonomy from it.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if err := schemas.ValidateTaxonomy(data); err != nil {
		return nil, fmt.Errorf("invalid taxonomy file %s: %w", path, err)
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	return New(file.Categories)
}

// Default returns the built-in six-category taxonomy. Weights sum to 1.0.
func Default() *Taxonomy {
	t, err := New([]Category{
		{
			Name:   "Programming Languages",
			Weight: 0.25,
			Keywords: []string{
				"python", "java", "javascript", "c++", "c#", "go", "rust", "kotlin",
				"swift", "objective-c", "perl", "ruby", "php", "scala", "r", "matlab",
				"typescript", "c", "groovy", "elixir", "clojure",
			},
		},
		{
			Name:   "Web Development",
			Weight: 0.20,
			Keywords: []string{
				"react", "angular", "vue", "nodejs", "express", "django", "flask",
				"spring", "fastapi", "asp.net", "jsp", "html", "css", "webpack",
				"gulp", "next.js", "nuxt", "laravel", "symfony", "rails",
			},
		},
		{
			Name:   "Data & Analytics",
			Weight: 0.20,
			Keywords: []string{
				"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
				"spark", "hadoop", "kafka", "elasticsearch", "sql", "mysql", "postgresql",
				"mongodb", "cassandra", "redis", "hbase", "tableau", "power bi", "looker",
			},
		},
		{
			Name:   "Cloud & DevOps",
			Weight: 0.15,
			Keywords: []string{
				"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
				"github", "terraform", "ansible", "prometheus", "grafana", "elk",
				"ci/cd", "devops", "iaas", "paas", "saas",
			},
		},
		{
			Name:   "Databases",
			Weight: 0.15,
			Keywords: []string{
				"sql", "mysql", "postgresql", "mongodb", "dynamodb", "cassandra",
				"redis", "elasticsearch", "neo4j", "oracle", "sqlserver", "firestore",
			},
		},
		{
			Name:   "Other Technologies",
			Weight: 0.05,
			Keywords: []string{
				"git", "rest api", "graphql", "linux", "windows", "macos", "agile",
				"scrum", "jira", "confluence", "slack", "trello", "microservices",
			},
		},
	})
	if err != nil {
		// The built-in catalog is static; a construction failure is a bug.
		panic(err)
	}
	return t
}
