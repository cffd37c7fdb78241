package usecase

import (
	"context"
	"log"
	"time"

	"github.com/labelcheck/backend/internal/domain"
)

// SubmissionServiceConfig holds configuration for the submission service
type SubmissionServiceConfig struct {
	EnableDebugLogging bool
}

// SubmissionService orchestrates a verification run end to end:
// OCR extraction for image uploads, the verification engine, and
// persistence of the finished record.
type SubmissionService struct {
	ocr                domain.OCRClient
	repo               domain.SubmissionRepository
	verifier           *VerificationService
	enableDebugLogging bool
}

// NewSubmissionService creates a new submission service with dependencies
func NewSubmissionService(
	ocr domain.OCRClient,
	repo domain.SubmissionRepository,
	config SubmissionServiceConfig,
) *SubmissionService {
	return &SubmissionService{
		ocr:                ocr,
		repo:               repo,
		verifier:           NewVerificationService(VerificationConfig{EnableDebugLogging: config.EnableDebugLogging}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// VerifyText verifies a submission against already-extracted label text
// and persists the result. A store failure is logged but does not void
// the verification: the caller still gets the finished record.
func (s *SubmissionService) VerifyText(
	ctx context.Context,
	ownerID string,
	submission *domain.Submission,
	extractedText string,
) (*domain.SubmissionRecord, error) {
	report, err := s.verifier.Verify(submission, extractedText)
	if err != nil {
		return nil, err
	}

	record := &domain.SubmissionRecord{
		OwnerID:    ownerID,
		Submission: *submission,
		Report:     *report,
		CreatedAt:  time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, record); err != nil {
			log.Printf("[STORE] failed to save submission record: %v", err)
		}
	}

	return record, nil
}

// VerifyImage extracts text from an uploaded label image, then runs the
// same flow as VerifyText. A "no text detected" OCR outcome surfaces as
// domain.ErrNoTextDetected before verification runs.
func (s *SubmissionService) VerifyImage(
	ctx context.Context,
	ownerID string,
	submission *domain.Submission,
	image []byte,
	mimeType string,
) (*domain.SubmissionRecord, error) {
	extractedText, err := s.ocr.ExtractText(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	if s.enableDebugLogging {
		log.Printf("[VERIFY] extracted %d bytes of label text", len(extractedText))
	}

	return s.VerifyText(ctx, ownerID, submission, extractedText)
}

// GetRecord fetches one stored verification record
func (s *SubmissionService) GetRecord(ctx context.Context, id int64) (*domain.SubmissionRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRecords fetches the stored verification records for one owner,
// newest first
func (s *SubmissionService) ListRecords(ctx context.Context, ownerID string) ([]domain.SubmissionRecord, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
