package usecase

import (
	"fmt"
	"log"

	"github.com/labelcheck/backend/internal/domain"
	"github.com/labelcheck/backend/internal/rules"
)

// VerificationConfig holds configuration for the verification engine
type VerificationConfig struct {
	EnableDebugLogging bool
}

// VerificationService compares a structured submission against the text
// recovered from a label photograph and produces a per-field compliance
// report with one overall disposition. It is a pure computation: no
// I/O, no shared mutable state, safe for concurrent use across
// independent submissions.
type VerificationService struct {
	enableDebugLogging bool
}

// NewVerificationService creates a new verification engine
func NewVerificationService(config VerificationConfig) *VerificationService {
	return &VerificationService{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Verify runs every matcher applicable to the submission's category and
// folds the field results into a report. Matchers run in a fixed order
// (brand, product type, ABV, net contents when provided, health
// warning, category-specific checks) so reports are byte-identical for
// identical input.
//
// Precondition failures (empty extracted text, unknown category,
// missing required fields) return an error before any matcher runs; no
// partial report is produced.
func (s *VerificationService) Verify(submission *domain.Submission, extractedText string) (*domain.VerificationReport, error) {
	if submission == nil {
		return nil, domain.ErrInvalidSubmission
	}
	if normalizeText(extractedText) == "" {
		return nil, domain.ErrNoTextDetected
	}
	if !submission.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, submission.Category)
	}
	if err := validateRequiredFields(submission); err != nil {
		return nil, err
	}

	if s.enableDebugLogging {
		log.Printf("[VERIFY] category=%s brand=%q textLen=%d",
			submission.Category, submission.BrandName, len(extractedText))
	}

	labelLower := normalizeLower(extractedText)

	var results []domain.FieldResult
	results = append(results, matchBrandName(submission.BrandName, labelLower))
	results = append(results, matchProductType(submission.ProductType, labelLower))
	results = append(results, matchAlcoholContent(submission.AlcoholContent, extractedText))
	if submission.NetContents != "" {
		results = append(results, matchNetContents(submission.NetContents, extractedText))
	}
	results = append(results, matchHealthWarning(extractedText))

	switch submission.Category {
	case domain.CategoryWine:
		results = append(results, matchSulfites(submission.SulfiteDeclaration, labelLower))
	case domain.CategoryDistilledSpirits:
		if submission.AgeStatement != "" {
			results = append(results, matchAgeStatement(submission.AgeStatement, labelLower))
		}
	}

	report := &domain.VerificationReport{
		OverallStatus: foldDisposition(results),
		Results:       results,
		DetectedText:  extractedText,
	}

	if s.enableDebugLogging {
		log.Printf("[VERIFY] disposition=%s fields=%d", report.OverallStatus, len(results))
	}

	return report, nil
}

// foldDisposition reduces field results to the overall verdict.
// Fail strictly dominates Warning: any Fail rejects the submission
// regardless of how many Warnings accompany it.
func foldDisposition(results []domain.FieldResult) domain.Disposition {
	failures, warnings := 0, 0
	for _, r := range results {
		switch r.Status {
		case domain.StatusFail:
			failures++
		case domain.StatusWarning:
			warnings++
		}
	}

	switch {
	case failures > 0:
		return domain.DispositionRejected
	case warnings > 0:
		return domain.DispositionNeedsReview
	default:
		return domain.DispositionApproved
	}
}

// validateRequiredFields checks the category's required submission
// fields from the rule registry. Net contents is enforced at the form
// layer only: when absent here, its matcher is skipped and the report
// is one field shorter.
func validateRequiredFields(submission *domain.Submission) error {
	for _, field := range rules.RequiredFields[submission.Category] {
		if field == "netContents" {
			continue
		}
		if requiredFieldValue(submission, field) == "" {
			return fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, field)
		}
	}
	return nil
}

func requiredFieldValue(submission *domain.Submission, field string) string {
	switch field {
	case "brandName":
		return submission.BrandName
	case "productType":
		return submission.ProductType
	case "alcoholContent":
		return submission.AlcoholContent
	case "netContents":
		return submission.NetContents
	case "sulfiteDeclaration":
		return submission.SulfiteDeclaration
	}
	return ""
}
