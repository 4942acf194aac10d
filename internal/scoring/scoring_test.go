package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose_WeightedSum(t *testing.T) {
	// 80*0.40 + 60*0.30 + 100*0.15 + 50*0.15 = 72.5
	assert.InDelta(t, 72.5, Compose(80, 60, 100, 50), 1e-9)
}

func TestCompose_AllZero(t *testing.T) {
	assert.Equal(t, 0.0, Compose(0, 0, 0, 0))
}

func TestCompose_AllFull(t *testing.T) {
	assert.Equal(t, 100.0, Compose(100, 100, 100, 100))
}

func TestCompose_ClampsOutOfRangeInputs(t *testing.T) {
	assert.Equal(t, 100.0, Compose(200, 200, 200, 200))
	assert.Equal(t, 0.0, Compose(-50, -50, -50, -50))
}

func TestExperienceScore_LinearRamp(t *testing.T) {
	assert.Equal(t, 0.0, ExperienceScore(0))
	assert.InDelta(t, 20.0, ExperienceScore(1), 1e-9)
	assert.InDelta(t, 60.0, ExperienceScore(3), 1e-9)
	assert.InDelta(t, 100.0, ExperienceScore(5), 1e-9)
}

func TestExperienceScore_SaturatesAtCap(t *testing.T) {
	assert.Equal(t, 100.0, ExperienceScore(12))
}

func TestExperienceScore_NegativeYears(t *testing.T) {
	assert.Equal(t, 0.0, ExperienceScore(-3))
}

func TestEducationScore_Binary(t *testing.T) {
	assert.Equal(t, 80.0, EducationScore([]string{"BACHELOR"}))
	assert.Equal(t, 50.0, EducationScore(nil))
	assert.Equal(t, 50.0, EducationScore([]string{}))
}
