// Package scoring composes the component match scores into a single overall
// score. Weights are fixed constants; callers that need different weighting
// get a new composer variant, not a runtime parameter.
package scoring

// Fixed weights for the overall score composition.
const (
	skillMatchWeight = 0.40
	semanticWeight   = 0.30
	experienceWeight = 0.15
	educationWeight  = 0.15
)

// Education sub-scores: binary credential heuristic.
const (
	educationWithCredential = 80.0
	educationDefault        = 50.0
)

// experienceCapYears is where the experience ramp saturates.
const experienceCapYears = 5.0

// Compose combines the four component scores into the overall score.
// All inputs and the output are in [0,100].
func Compose(skillMatch, semantic, experience, education float64) float64 {
	score := skillMatch*skillMatchWeight +
		semantic*semanticWeight +
		experience*experienceWeight +
		education*educationWeight

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ExperienceScore maps years of experience to [0,100] on a linear ramp that
// saturates at five years.
func ExperienceScore(years int) float64 {
	if years <= 0 {
		return 0
	}
	score := float64(years) / experienceCapYears * 100
	if score > 100 {
		score = 100
	}
	return score
}

// EducationScore returns 80 when any education credential was detected,
// 50 otherwise.
func EducationScore(credentials []string) float64 {
	if len(credentials) > 0 {
		return educationWithCredential
	}
	return educationDefault
}
