package explain

import (
	"testing"

	"github.com/surendra-bolla/NeuralScan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictFor_Boundaries(t *testing.T) {
	cases := []struct {
		score   float64
		verdict types.Verdict
	}{
		{100, types.VerdictHighlyRecommended},
		{80.0, types.VerdictHighlyRecommended},
		{79.99, types.VerdictRecommended},
		{60.0, types.VerdictRecommended},
		{59.99, types.VerdictFairMatch},
		{40.0, types.VerdictFairMatch},
		{39.99, types.VerdictNotRecommended},
		{0, types.VerdictNotRecommended},
	}

	for _, tc := range cases {
		verdict, reason := verdictFor(tc.score)
		assert.Equal(t, tc.verdict, verdict, "score %.2f", tc.score)
		assert.NotEmpty(t, reason)
	}
}

func TestGenerate_HighScoreNarrative(t *testing.T) {
	exp := Generate(Input{
		OverallScore:    85,
		SkillMatchPct:   90,
		ExperiencePct:   100,
		EducationPct:    80,
		SemanticPct:     70,
		Matched:         types.CategorizedSkillSet{"Languages": {"go", "python"}},
		Missing:         types.CategorizedSkillSet{},
		YearsExperience: 7,
	})

	assert.Equal(t, types.VerdictHighlyRecommended, exp.Verdict)
	assert.Equal(t, "Excellent match with strong skill alignment and relevant experience", exp.VerdictReason)

	assert.Contains(t, exp.Narrative, "The candidate scores 85.0/100 on the job match assessment.")
	assert.Contains(t, exp.Narrative, "strong technical alignment")
	assert.Contains(t, exp.Narrative, "With 7 years of experience, the candidate brings valuable industry knowledge.")
	assert.Contains(t, exp.Narrative, "proficiency in 2 in-demand technologies")
	assert.NotContains(t, exp.Narrative, "skill gaps")
}

func TestGenerate_LowScoreNarrative(t *testing.T) {
	exp := Generate(Input{
		OverallScore:    25,
		SkillMatchPct:   10,
		YearsExperience: 1,
		Matched:         types.CategorizedSkillSet{},
		Missing: types.CategorizedSkillSet{
			"Languages": {"go", "python"},
			"Web":       {"react", "django"},
		},
	})

	assert.Equal(t, types.VerdictNotRecommended, exp.Verdict)
	assert.Contains(t, exp.Narrative, "suggesting some learning curve")
	assert.Contains(t, exp.Narrative, "early in their career")
	assert.Contains(t, exp.Narrative, "There are 4 notable skill gaps")
}

func TestGenerate_FewGapsAreTrainable(t *testing.T) {
	exp := Generate(Input{
		OverallScore:  65,
		SkillMatchPct: 70,
		Missing:       types.CategorizedSkillSet{"Languages": {"rust"}},
	})

	assert.Contains(t, exp.Narrative, "Only 1 significant skill gaps remain")
	assert.Contains(t, exp.Narrative, "good foundation")
}

func TestGenerate_ScoreBreakdownRounded(t *testing.T) {
	exp := Generate(Input{
		OverallScore:  66.666,
		SkillMatchPct: 33.333,
		SemanticPct:   12.345,
	})

	assert.Equal(t, 66.67, exp.OverallScore)
	assert.Equal(t, 33.33, exp.ScoreBreakdown.SkillMatch)
	assert.Equal(t, 12.35, exp.ScoreBreakdown.SemanticSimilarity)
}

func TestSummarize_CapsSkillsAndSortsCategories(t *testing.T) {
	got := summarize(types.CategorizedSkillSet{
		"Web":       {"react"},
		"Languages": {"a", "b", "c", "d", "e", "f", "g"},
		"Empty":     {},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Languages: a, b, c, d, e", got[0])
	assert.Equal(t, "Web: react", got[1])
}

func TestKeyStrengths_AllThreeSources(t *testing.T) {
	got := keyStrengths(90, 8, types.CategorizedSkillSet{
		"Languages": {"go", "python"},
		"Web":       {"react"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, "Strong technical skills alignment (90% match)", got[0])
	assert.Equal(t, "Substantial industry experience (8 years)", got[1])
	assert.Equal(t, "Strong background in Languages", got[2])
}

func TestKeyStrengths_TopCategoryTieBreaksByName(t *testing.T) {
	got := keyStrengths(0, 0, types.CategorizedSkillSet{
		"Web":  {"react", "django"},
		"Data": {"sql", "spark"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Strong background in Data", got[0])
}

func TestKeyStrengths_EmptyMatched(t *testing.T) {
	assert.Empty(t, keyStrengths(50, 2, types.CategorizedSkillSet{}))
}

func TestKeyGaps_BroadAndSpecific(t *testing.T) {
	got := keyGaps(types.CategorizedSkillSet{
		"Languages": {"go", "python", "java"},
		"Web":       {"react"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Limited experience in Languages", got[0])
	assert.Equal(t, "Missing Web: react", got[1])
}

func TestKeyGaps_SkipsOthersPlaceholder(t *testing.T) {
	got := keyGaps(types.CategorizedSkillSet{"Soft Skills": {"Others"}})
	assert.Empty(t, got)
}

func TestKeyGaps_TwoMissingSkillsProduceNoEntry(t *testing.T) {
	got := keyGaps(types.CategorizedSkillSet{"Languages": {"go", "rust"}})
	assert.Empty(t, got)
}

func TestKeyGaps_CappedAtThree(t *testing.T) {
	got := keyGaps(types.CategorizedSkillSet{
		"A": {"1", "2", "3"},
		"B": {"1", "2", "3"},
		"C": {"1", "2", "3"},
		"D": {"1", "2", "3"},
	})
	assert.Len(t, got, 3)
}

func TestRequirementsMet_ThresholdAndTruncation(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}

	got := requirementsMet([]types.SentenceMatch{
		{JobRequirement: string(long), SimilarityScore: 0.85},
		{JobRequirement: "strong req", SimilarityScore: 0.7},
		{JobRequirement: "weak req", SimilarityScore: 0.5},
		{JobRequirement: "ignored, beyond first three", SimilarityScore: 0.95},
	})

	require.Len(t, got, 2)
	assert.Len(t, got[0].Requirement, 100)
	assert.Equal(t, "Very Strong", got[0].MatchStrength)
	assert.Equal(t, "Strong", got[1].MatchStrength)
}

func TestStrengthLabel_Buckets(t *testing.T) {
	assert.Equal(t, "Very Strong", strengthLabel(0.9))
	assert.Equal(t, "Strong", strengthLabel(0.7))
	assert.Equal(t, "Moderate", strengthLabel(0.5))
	assert.Equal(t, "Weak", strengthLabel(0.3))
}
