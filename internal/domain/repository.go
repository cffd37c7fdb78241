package domain

import "context"

// SubmissionRepository defines the interface for persisting verified submissions
type SubmissionRepository interface {
	Save(ctx context.Context, record *SubmissionRecord) error
	GetByID(ctx context.Context, id int64) (*SubmissionRecord, error)
	ListByOwner(ctx context.Context, ownerID string) ([]SubmissionRecord, error)
}

// OCRClient defines the interface for the external text-recognition step.
// Implementations return ErrNoTextDetected when the image yields no text.
type OCRClient interface {
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}
