package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labelcheck/backend/internal/domain"
	"github.com/labelcheck/backend/internal/rules"
	"github.com/labelcheck/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	submissions *usecase.SubmissionService
}

// NewHandler creates a new HTTP handler
func NewHandler(submissions *usecase.SubmissionService) *Handler {
	return &Handler{submissions: submissions}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelcheck-backend",
		"version": "1.0.0",
	})
}

// verifyTextRequest is a submission plus the label text recovered by
// the external OCR step
type verifyTextRequest struct {
	domain.Submission
	ExtractedText string `json:"extractedText"`
}

// VerifyLabel verifies a submission against already-extracted label text
func (h *Handler) VerifyLabel(c *gin.Context) {
	if h.submissions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "verification service not configured"})
		return
	}

	var req verifyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	record, err := h.submissions.VerifyText(c.Request.Context(), ownerID(c), &req.Submission, req.ExtractedText)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// VerifyLabelImage accepts a multipart label image plus submission
// fields, extracts the label text, and verifies
func (h *Handler) VerifyLabelImage(c *gin.Context) {
	if h.submissions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "verification service not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label image is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded image"})
		return
	}

	submission := &domain.Submission{
		Category:           domain.ProductCategory(c.PostForm("productCategory")),
		BrandName:          c.PostForm("brandName"),
		ProductType:        c.PostForm("productType"),
		AlcoholContent:     c.PostForm("alcoholContent"),
		NetContents:        c.PostForm("netContents"),
		SulfiteDeclaration: c.PostForm("sulfiteDeclaration"),
		AgeStatement:       c.PostForm("ageStatement"),
		DistillerName:      c.PostForm("distillerName"),
		Ingredients:        c.PostForm("ingredients"),
		HealthWarningText:  c.PostForm("healthWarningText"),
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	record, err := h.submissions.VerifyImage(c.Request.Context(), ownerID(c), submission, image, mimeType)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// validateRequest is a form-time category rule check
type validateRequest struct {
	Category       domain.ProductCategory `json:"productCategory" binding:"required"`
	ProductType    string                 `json:"productType"`
	AlcoholContent string                 `json:"alcoholContent" binding:"required"`
}

// ValidateSubmission runs the category ABV rules against form data
// before the applicant uploads a label
func (h *Handler) ValidateSubmission(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	abv, err := strconv.ParseFloat(req.AlcoholContent, 64)
	if err != nil || abv < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alcoholContent must be a non-negative decimal"})
		return
	}

	var validation rules.ABVValidation
	switch req.Category {
	case domain.CategoryWine:
		validation = rules.ClassifyWineABV(abv)
	case domain.CategoryDistilledSpirits:
		validation = rules.ValidateSpiritsABV(abv, req.ProductType)
	case domain.CategoryBeer:
		validation = rules.ABVValidation{Valid: true}
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": domain.ErrUnknownCategory.Error()})
		return
	}

	c.JSON(http.StatusOK, validation)
}

// ListSubmissions returns the caller's stored verification records
func (h *Handler) ListSubmissions(c *gin.Context) {
	if h.submissions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "verification service not configured"})
		return
	}

	records, err := h.submissions.ListRecords(c.Request.Context(), ownerID(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	if records == nil {
		records = []domain.SubmissionRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": records})
}

// GetSubmission returns one stored verification record by ID
func (h *Handler) GetSubmission(c *gin.Context) {
	if h.submissions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "verification service not configured"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	record, err := h.submissions.GetRecord(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ownerID identifies the caller for persistence. Authentication is an
// external collaborator; an absent header means anonymous.
func ownerID(c *gin.Context) string {
	if owner := c.GetHeader("X-Owner-ID"); owner != "" {
		return owner
	}
	return "anonymous"
}

// statusForError maps domain errors to HTTP statuses. Rejected and
// NeedsReview dispositions are report data, not errors; only
// precondition and collaborator failures reach here.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoTextDetected),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrMissingRequiredField),
		errors.Is(err, domain.ErrInvalidSubmission):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVisionFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
