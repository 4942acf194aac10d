package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenRequest_Valid(t *testing.T) {
	req := ScreenRequest{
		ResumeText:     "Go engineer with platform experience",
		JobDescription: "Looking for a Go engineer",
	}
	assert.NoError(t, req.Validate())
}

func TestScreenRequest_MissingFields(t *testing.T) {
	assert.Error(t, (&ScreenRequest{JobDescription: "job"}).Validate())
	assert.Error(t, (&ScreenRequest{ResumeText: "resume"}).Validate())
}

func TestScreenRequest_TopKRange(t *testing.T) {
	req := ScreenRequest{ResumeText: "r", JobDescription: "j", TopK: 20}
	assert.NoError(t, req.Validate())

	req.TopK = 21
	assert.Error(t, req.Validate())

	req.TopK = -1
	assert.Error(t, req.Validate())

	// Zero means unset.
	req.TopK = 0
	assert.NoError(t, req.Validate())
}

func TestJobRequirementsRequest_MinimumLength(t *testing.T) {
	short := JobRequirementsRequest{JobDescription: "too short"}
	assert.Error(t, short.Validate())

	long := JobRequirementsRequest{JobDescription: strings.Repeat("senior go engineer ", 5)}
	assert.NoError(t, long.Validate())
}
