// Package explain converts a composed match score and its intermediate
// signals into a verdict, a narrative, and structured strengths and gaps.
// All output is deterministic template composition; no free text generation.
package explain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/surendra-bolla/NeuralScan/internal/types"
)

// Limits on list-shaped explanation fields.
const (
	maxSummarySkills   = 5
	maxKeyStrengths    = 3
	maxKeyGaps         = 3
	maxRequirementsMet = 3
)

// strongRequirementThreshold gates which sentence matches count as evidence
// for a requirement being met.
const strongRequirementThreshold = 0.6

// Input carries everything the generator needs. All scores are in [0,100]
// except the sentence match similarities, which are in [0,1].
type Input struct {
	OverallScore       float64
	SkillMatchPct      float64
	ExperiencePct      float64
	EducationPct       float64
	SemanticPct        float64
	Matched            types.CategorizedSkillSet
	Missing            types.CategorizedSkillSet
	YearsExperience    int
	TopSentenceMatches []types.SentenceMatch
}

// Generate produces the full explanation for a screening outcome.
func Generate(in Input) types.Explanation {
	verdict, reason := verdictFor(in.OverallScore)

	return types.Explanation{
		OverallScore:  round2(in.OverallScore),
		Verdict:       verdict,
		VerdictReason: reason,
		ScoreBreakdown: types.ScoreBreakdown{
			SkillMatch:         round2(in.SkillMatchPct),
			ExperienceMatch:    round2(in.ExperiencePct),
			EducationMatch:     round2(in.EducationPct),
			SemanticSimilarity: round2(in.SemanticPct),
		},
		MatchedSkillsSummary: summarize(in.Matched),
		MissingSkillsSummary: summarize(in.Missing),
		KeyStrengths:         keyStrengths(in.SkillMatchPct, in.YearsExperience, in.Matched),
		KeyGaps:              keyGaps(in.Missing),
		Narrative:            narrative(in),
		KeyRequirementsMet:   requirementsMet(in.TopSentenceMatches),
	}
}

// verdictFor maps the overall score to a verdict bucket. Lower bounds are
// inclusive: exactly 80.0 is HIGHLY RECOMMENDED.
func verdictFor(score float64) (types.Verdict, string) {
	switch {
	case score >= 80:
		return types.VerdictHighlyRecommended, "Excellent match with strong skill alignment and relevant experience"
	case score >= 60:
		return types.VerdictRecommended, "Good match with some skill gaps that could be addressed"
	case score >= 40:
		return types.VerdictFairMatch, "Moderate match but significant skill gaps exist"
	default:
		return types.VerdictNotRecommended, "Poor match with substantial skill and experience gaps"
	}
}

// summarize renders non-empty categories as "Category: s1, s2, ..." with at
// most five skills each, in category name order for determinism.
func summarize(skills types.CategorizedSkillSet) []string {
	summary := make([]string, 0, len(skills))
	for _, category := range sortedCategories(skills) {
		list := skills[category]
		if len(list) == 0 {
			continue
		}
		if len(list) > maxSummarySkills {
			list = list[:maxSummarySkills]
		}
		summary = append(summary, fmt.Sprintf("%s: %s", category, strings.Join(list, ", ")))
	}
	return summary
}

// narrative builds the explanation text from threshold-selected clauses.
func narrative(in Input) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "The candidate scores %.1f/100 on the job match assessment. ", in.OverallScore)

	switch {
	case in.SkillMatchPct > 80:
		fmt.Fprintf(&sb, "With %.0f%% of required skills possessed, the candidate demonstrates strong technical alignment. ", in.SkillMatchPct)
	case in.SkillMatchPct > 60:
		fmt.Fprintf(&sb, "The candidate possesses %.0f%% of the required skills, indicating a good foundation. ", in.SkillMatchPct)
	default:
		fmt.Fprintf(&sb, "The candidate has %.0f%% of required skills, suggesting some learning curve. ", in.SkillMatchPct)
	}

	switch {
	case in.YearsExperience > 5:
		fmt.Fprintf(&sb, "With %d years of experience, the candidate brings valuable industry knowledge. ", in.YearsExperience)
	case in.YearsExperience > 2:
		fmt.Fprintf(&sb, "The candidate's %d years of experience provides relevant background. ", in.YearsExperience)
	default:
		sb.WriteString("The candidate appears to be early in their career. ")
	}

	totalMatched := in.Matched.TotalSkills()
	totalMissing := in.Missing.TotalSkills()

	if totalMatched > 0 {
		fmt.Fprintf(&sb, "Key strengths include proficiency in %d in-demand technologies. ", totalMatched)
	}

	switch {
	case totalMissing > 3:
		fmt.Fprintf(&sb, "There are %d notable skill gaps that would require additional training. ", totalMissing)
	case totalMissing > 0:
		fmt.Fprintf(&sb, "Only %d significant skill gaps remain, which are highly trainable. ", totalMissing)
	}

	return strings.TrimRight(sb.String(), " ")
}

// keyStrengths lists up to three strengths: overall skill alignment, deep
// experience, and the candidate's strongest matched category. Categories are
// ranked by matched count descending with category name ascending as the
// tie-break, so the result does not depend on map iteration order.
func keyStrengths(skillMatchPct float64, years int, matched types.CategorizedSkillSet) []string {
	strengths := make([]string, 0, maxKeyStrengths)

	if skillMatchPct > 80 {
		strengths = append(strengths, fmt.Sprintf("Strong technical skills alignment (%.0f%% match)", skillMatchPct))
	}
	if years > 5 {
		strengths = append(strengths, fmt.Sprintf("Substantial industry experience (%d years)", years))
	}

	if top := topCategory(matched); top != "" {
		strengths = append(strengths, fmt.Sprintf("Strong background in %s", top))
	}

	if len(strengths) > maxKeyStrengths {
		strengths = strengths[:maxKeyStrengths]
	}
	return strengths
}

// keyGaps lists up to three gap statements. Categories with more than two
// missing skills read as broad gaps; a single missing skill is called out by
// name unless it is the placeholder "others". Categories are visited by
// missing count descending, then name ascending.
func keyGaps(missing types.CategorizedSkillSet) []string {
	gaps := make([]string, 0, maxKeyGaps)

	categories := sortedCategories(missing)
	sort.SliceStable(categories, func(i, j int) bool {
		return len(missing[categories[i]]) > len(missing[categories[j]])
	})

	for _, category := range categories {
		skills := missing[category]
		switch {
		case len(skills) > 2:
			gaps = append(gaps, fmt.Sprintf("Limited experience in %s", category))
		case len(skills) == 1 && !strings.EqualFold(skills[0], "others"):
			gaps = append(gaps, fmt.Sprintf("Missing %s: %s", category, skills[0]))
		}
		if len(gaps) == maxKeyGaps {
			break
		}
	}
	return gaps
}

// requirementsMet inspects the first three top sentence matches and keeps
// those above the strong-match threshold, truncating each requirement to 100
// characters.
func requirementsMet(topMatches []types.SentenceMatch) []types.RequirementMet {
	met := make([]types.RequirementMet, 0, maxRequirementsMet)

	limit := maxRequirementsMet
	if limit > len(topMatches) {
		limit = len(topMatches)
	}
	for _, match := range topMatches[:limit] {
		if match.SimilarityScore <= strongRequirementThreshold {
			continue
		}
		requirement := match.JobRequirement
		if len(requirement) > 100 {
			requirement = requirement[:100]
		}
		met = append(met, types.RequirementMet{
			Requirement:   requirement,
			MatchStrength: strengthLabel(match.SimilarityScore),
		})
	}
	return met
}

// strengthLabel converts a similarity score in [0,1] to a qualitative label.
func strengthLabel(score float64) string {
	switch {
	case score > 0.8:
		return "Very Strong"
	case score > 0.6:
		return "Strong"
	case score > 0.4:
		return "Moderate"
	default:
		return "Weak"
	}
}

// topCategory returns the category with the most matched skills, tie-broken
// by category name ascending. Empty when nothing matched.
func topCategory(matched types.CategorizedSkillSet) string {
	best := ""
	bestCount := 0
	for _, category := range sortedCategories(matched) {
		if count := len(matched[category]); count > bestCount {
			best = category
			bestCount = count
		}
	}
	return best
}

func sortedCategories(set types.CategorizedSkillSet) []string {
	categories := make([]string, 0, len(set))
	for category := range set {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
