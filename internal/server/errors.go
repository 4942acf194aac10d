package server

import (
	"errors"
	"net/http"

	"github.com/surendra-bolla/NeuralScan/internal/ingestion"
	"github.com/surendra-bolla/NeuralScan/internal/screening"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Client-input failures (unsupported formats, unreadable documents, missing
// job descriptions) map to 400; embedding backend failures are server-side
// and map to 502.
func HTTPStatus(err error) int {
	var unsupported *ingestion.UnsupportedFormatError
	var extraction *ingestion.ExtractionError

	switch {
	case errors.Is(err, screening.ErrEmptyJobDescription),
		errors.Is(err, screening.ErrTooFewResumes),
		errors.As(err, &unsupported),
		errors.As(err, &extraction):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
