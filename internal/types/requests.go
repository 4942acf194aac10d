package types

import (
	"github.com/go-playground/validator/v10"
)

// ScreenRequest is the JSON body for screening a resume already held as text.
type ScreenRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
	TopK           int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=20"`
}

// Validate validates the ScreenRequest using the validator.
func (r *ScreenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// JobRequirementsRequest is the JSON body for extracting requirements from a
// job description without a resume.
type JobRequirementsRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=50"`
}

// Validate validates the JobRequirementsRequest using the validator.
func (r *JobRequirementsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
