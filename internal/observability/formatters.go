// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/surendra-bolla/NeuralScan/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScreeningResult outputs a human-readable summary of a single
// screening run.
func (p *Printer) PrintScreeningResult(result *types.ScreeningResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match Score:  %.1f/100\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("Verdict:      %s\n", result.Verdict))
	sb.WriteString(fmt.Sprintf("Skill Match:  %.1f%%\n", result.Explanation.ScoreBreakdown.SkillMatch))
	sb.WriteString("\n")

	if len(result.Explanation.KeyStrengths) > 0 {
		sb.WriteString("Key Strengths:\n")
		for _, strength := range result.Explanation.KeyStrengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", strength))
		}
		sb.WriteString("\n")
	}

	if len(result.Explanation.KeyGaps) > 0 {
		sb.WriteString("Key Gaps:\n")
		for _, gap := range result.Explanation.KeyGaps {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap))
		}
	}

	p.printBox("SCREENING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreBreakdown outputs the component scores behind a final match score.
func (p *Printer) PrintScoreBreakdown(scores types.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill Match:       %.1f\n", scores.SkillMatch))
	sb.WriteString(fmt.Sprintf("Experience Match:  %.1f\n", scores.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education Match:   %.1f\n", scores.EducationMatch))
	sb.WriteString(fmt.Sprintf("Content Match:     %.1f", scores.SemanticSimilarity))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintSkillGap outputs matched and missing skills per category.
func (p *Printer) PrintSkillGap(gap *types.SkillGapResult) {
	if gap == nil {
		return
	}

	var sb strings.Builder

	if matched := flattenSkills(gap.Matched); len(matched) > 0 {
		sb.WriteString("Matched:\n")
		writeSkillList(&sb, matched)
		sb.WriteString("\n")
	}

	if missing := flattenSkills(gap.Missing); len(missing) > 0 {
		sb.WriteString("Missing:\n")
		writeSkillList(&sb, missing)
	} else {
		sb.WriteString("No missing skills.")
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSentenceMatches outputs the strongest requirement-to-resume matches.
func (p *Printer) PrintSentenceMatches(matches []types.SentenceMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total semantic matches: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		req := m.JobRequirement
		if len(req) > 50 {
			req = req[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, req))
		sb.WriteString(fmt.Sprintf("    Similarity: %.2f\n", m.SimilarityScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP SEMANTIC MATCHES", sb.String())
}

// PrintBatchResult outputs the ranked outcomes of a batch screening run.
func (p *Printer) PrintBatchResult(result *types.BatchResult) {
	if result == nil || len(result.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resumes processed: %d\n\n", result.TotalProcessed))

	count := min(len(result.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := result.Results[i]
		name := item.Filename
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  %s\n", item.MatchScore, item.Verdict))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(result.Results)-maxItemsToShow))
	}

	p.printBox("BATCH SCREENING RESULTS", sb.String())
}

// flattenSkills collects "category: skill" entries in category order.
func flattenSkills(skills types.CategorizedSkillSet) []string {
	categories := make([]string, 0, len(skills))
	for name := range skills {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var out []string
	for _, name := range categories {
		for _, skill := range skills[name] {
			out = append(out, fmt.Sprintf("%s: %s", name, skill))
		}
	}
	return out
}

func writeSkillList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
