package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEducation_FindsCredentials(t *testing.T) {
	got := DetectEducation("Bachelor of Science, later completed an MBA")
	assert.Equal(t, []string{"BACHELOR", "MBA"}, got)
}

func TestDetectEducation_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"PHD"}, DetectEducation("holds a PhD from somewhere"))
}

func TestDetectEducation_WholeWordOnly(t *testing.T) {
	// "ba" must not match inside "bachelor" territory words like "basics".
	assert.Empty(t, DetectEducation("covered the basics of programming"))
}

func TestDetectEducation_DeduplicatesAndSorts(t *testing.T) {
	got := DetectEducation("MTech graduate. The mtech program covered diploma-level math and a diploma.")
	assert.Equal(t, []string{"DIPLOMA", "MTECH"}, got)
}

func TestDetectEducation_NoCredentials(t *testing.T) {
	assert.Empty(t, DetectEducation("shipped production systems for a decade"))
}
