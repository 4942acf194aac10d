// Package skills analyzes the gap between a candidate's extracted skills and
// a job's required skills, and converts the gap into a weighted match
// percentage and prioritized recommendations.
package skills

import (
	"sort"

	"github.com/surendra-bolla/NeuralScan/internal/taxonomy"
	"github.com/surendra-bolla/NeuralScan/internal/types"
)

// Priority buckets for missing-skill recommendations.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// AnalyzeGap compares candidate skills against job-required skills. Only
// categories present in required are scored; candidate-only categories are
// ignored. Within each required category:
//
//	matched = candidate ∩ required
//	missing = required − candidate
//	extra   = candidate − required
func AnalyzeGap(candidate, required types.CategorizedSkillSet) types.SkillGapResult {
	result := types.SkillGapResult{
		Matched: make(types.CategorizedSkillSet, len(required)),
		Missing: make(types.CategorizedSkillSet, len(required)),
		Extra:   make(types.CategorizedSkillSet, len(required)),
	}

	for category, requiredSkills := range required {
		requiredSet := toSet(requiredSkills)
		candidateSet := toSet(candidate[category])

		matched := make([]string, 0)
		missing := make([]string, 0)
		for _, skill := range requiredSkills {
			if candidateSet[skill] {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}

		extra := make([]string, 0)
		for _, skill := range candidate[category] {
			if !requiredSet[skill] {
				extra = append(extra, skill)
			}
		}

		result.Matched[category] = matched
		result.Missing[category] = missing
		result.Extra[category] = extra
	}

	return result
}

// MatchPercentage computes the weighted skill match percentage in [0,100].
// An empty requirement set is a vacuous full match and returns 100. Otherwise
// every required category contributes its matched ratio scaled by the
// category weight; weights are not renormalized when categories are absent,
// so a single required category with weight 0.25 caps the result at 25.
func MatchPercentage(candidate, required types.CategorizedSkillSet, tax *taxonomy.Taxonomy) float64 {
	totalRequired := required.TotalSkills()
	if totalRequired == 0 {
		return 100.0
	}

	weightedScore := 0.0
	for category, requiredSkills := range required {
		if len(requiredSkills) == 0 {
			continue
		}
		candidateSet := toSet(candidate[category])

		matched := 0
		for _, skill := range requiredSkills {
			if candidateSet[skill] {
				matched++
			}
		}

		categoryPct := float64(matched) / float64(len(requiredSkills))
		weightedScore += categoryPct * tax.Weight(category)
	}

	score := weightedScore * 100
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// PriorityRecommendations converts missing skills into an importance-ordered
// list of recommendations. Categories with nothing missing are omitted.
// Priority follows the category weight: >0.15 High, >0.10 Medium, else Low.
func PriorityRecommendations(missing types.CategorizedSkillSet, tax *taxonomy.Taxonomy) []types.SkillRecommendation {
	recommendations := make([]types.SkillRecommendation, 0, len(missing))

	for category, skills := range missing {
		if len(skills) == 0 {
			continue
		}
		weight := tax.Weight(category)

		priority := PriorityLow
		switch {
		case weight > 0.15:
			priority = PriorityHigh
		case weight > 0.10:
			priority = PriorityMedium
		}

		recommendations = append(recommendations, types.SkillRecommendation{
			Category:      category,
			MissingSkills: skills,
			Priority:      priority,
			Weight:        weight,
		})
	}

	// Sort by weight descending, category name as the deterministic tie-break.
	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Weight != recommendations[j].Weight {
			return recommendations[i].Weight > recommendations[j].Weight
		}
		return recommendations[i].Category < recommendations[j].Category
	})

	return recommendations
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}
	return set
}
