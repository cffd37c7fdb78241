package domain

import "errors"

var (
	// ErrNoTextDetected is returned when the OCR step yielded no text;
	// verification cannot run without label text
	ErrNoTextDetected = errors.New("no text detected on label image")

	// ErrInvalidSubmission is returned when request parameters are invalid
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrUnknownCategory is returned for a category outside the three supported values
	ErrUnknownCategory = errors.New("unknown product category")

	// ErrMissingRequiredField is returned when a category-required submission field is empty
	ErrMissingRequiredField = errors.New("missing required submission field")

	// ErrVisionFailure is returned when the vision API request fails
	ErrVisionFailure = errors.New("vision API request failed")

	// ErrRecordNotFound is returned when a stored submission cannot be found
	ErrRecordNotFound = errors.New("submission record not found")
)
