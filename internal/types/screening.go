// Package types defines the shared data structures exchanged between the
// screening pipeline stages and the API layer.
package types

// CategorizedSkillSet maps a skill category name to the set of matched keyword
// strings for that category. Entries are case-normalized and deduplicated.
// A set is produced fresh per input text and never mutated afterwards.
type CategorizedSkillSet map[string][]string

// TotalSkills returns the number of skills across all categories.
func (s CategorizedSkillSet) TotalSkills() int {
	total := 0
	for _, skills := range s {
		total += len(skills)
	}
	return total
}

// SkillGapResult holds the outcome of comparing a candidate's skills against a
// job's required skills. All three sets share the job's category keys.
type SkillGapResult struct {
	Matched CategorizedSkillSet `json:"matched_skills"`
	Missing CategorizedSkillSet `json:"missing_skills"`
	Extra   CategorizedSkillSet `json:"extra_skills"`
}

// SkillRecommendation is a prioritized suggestion for closing a skill gap in
// one category.
type SkillRecommendation struct {
	Category      string   `json:"category"`
	MissingSkills []string `json:"missing_skills"`
	Priority      string   `json:"priority"`
	Weight        float64  `json:"weight"`
}

// SentenceMatch pairs a job requirement sentence with a candidate sentence and
// the cosine similarity between their embeddings. Rank is 1-based within the
// requirement sentence's top-k list.
type SentenceMatch struct {
	JobRequirement  string  `json:"job_requirement"`
	ResumeMatch     string  `json:"resume_match"`
	SimilarityScore float64 `json:"similarity_score"`
	Rank            int     `json:"rank"`
}

// SentenceMatchResult holds all sentence-level matches for one screening,
// grouped by job requirement sentence in input order.
type SentenceMatchResult struct {
	TotalMatches int             `json:"total_matches"`
	Matches      []SentenceMatch `json:"matches"`
}

// ScoreBreakdown lists the four component scores that make up the overall
// score. All values are in [0,100].
type ScoreBreakdown struct {
	SkillMatch         float64 `json:"skill_match"`
	ExperienceMatch    float64 `json:"experience_match"`
	EducationMatch     float64 `json:"education_match"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
}

// Verdict is the discretized recommendation bucket derived from the overall
// score.
type Verdict string

const (
	VerdictHighlyRecommended Verdict = "HIGHLY RECOMMENDED"
	VerdictRecommended       Verdict = "RECOMMENDED"
	VerdictFairMatch         Verdict = "FAIR MATCH"
	VerdictNotRecommended    Verdict = "NOT RECOMMENDED"
)

// RequirementMet is a job requirement the candidate demonstrably covers,
// backed by a strong sentence-level match.
type RequirementMet struct {
	Requirement   string `json:"requirement"`
	MatchStrength string `json:"match_strength"`
}

// Explanation is the human-readable interpretation of a composed match score.
type Explanation struct {
	OverallScore         float64          `json:"overall_score"`
	Verdict              Verdict          `json:"verdict"`
	VerdictReason        string           `json:"verdict_reason"`
	ScoreBreakdown       ScoreBreakdown   `json:"score_breakdown"`
	MatchedSkillsSummary []string         `json:"matched_skills_summary"`
	MissingSkillsSummary []string         `json:"missing_skills_summary"`
	KeyStrengths         []string         `json:"key_strengths"`
	KeyGaps              []string         `json:"key_gaps"`
	Narrative            string           `json:"narrative"`
	KeyRequirementsMet   []RequirementMet `json:"key_requirements_met"`
}

// ResumeData is the structured information extracted from one resume.
type ResumeData struct {
	RawText         string              `json:"-"`
	Skills          CategorizedSkillSet `json:"skills"`
	Education       []string            `json:"education"`
	ExperienceYears int                 `json:"experience_years"`
	Entities        map[string][]string `json:"entities"`
	Sentences       []string            `json:"-"`
}

// ScreeningAnalysis carries the auxiliary counts reported alongside a
// screening result.
type ScreeningAnalysis struct {
	TotalResumeSentences int             `json:"total_resume_sentences"`
	TotalJobSentences    int             `json:"total_job_sentences"`
	SemanticMatches      int             `json:"semantic_matches"`
	YearsOfExperience    int             `json:"years_of_experience"`
	Education            []string        `json:"education"`
	TopMatches           []SentenceMatch `json:"top_matches"`
}

// ScreeningResult is the full outcome of screening one resume against one job
// description. This is the seam the API layer consumes.
type ScreeningResult struct {
	MatchScore    float64           `json:"match_score"`
	Verdict       Verdict           `json:"verdict"`
	VerdictReason string            `json:"verdict_reason"`
	Explanation   Explanation       `json:"explanation"`
	SkillGap      SkillGapResult    `json:"skill_gap"`
	Analysis      ScreeningAnalysis `json:"analysis"`
}

// BatchItemResult summarizes one resume's outcome within a batch screening.
type BatchItemResult struct {
	Filename             string  `json:"filename"`
	MatchScore           float64 `json:"match_score"`
	Verdict              Verdict `json:"verdict"`
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
	YearsOfExperience    int     `json:"years_of_experience"`
}

// BatchResult aggregates a batch screening run. TotalProcessed may be lower
// than the number of submitted resumes when individual items fail.
type BatchResult struct {
	TotalProcessed int               `json:"total_processed"`
	Results        []BatchItemResult `json:"results"`
}

// ResumeComparison holds the per-resume totals used for relative ranking of
// multiple resumes without a job description.
type ResumeComparison struct {
	Filename        string              `json:"filename"`
	ExperienceYears int                 `json:"experience_years"`
	TotalSkills     int                 `json:"total_skills"`
	HasEducation    bool                `json:"has_education"`
	SkillsSummary   CategorizedSkillSet `json:"skills_summary"`
}
