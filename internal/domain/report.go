package domain

// FieldStatus is the outcome of a single field matcher
type FieldStatus string

const (
	StatusPass    FieldStatus = "pass"
	StatusFail    FieldStatus = "fail"
	StatusWarning FieldStatus = "warning"
)

// Disposition is the overall verdict of a verification run
type Disposition string

const (
	DispositionApproved    Disposition = "approved"
	DispositionRejected    Disposition = "rejected"
	DispositionNeedsReview Disposition = "needs-review"
)

// FieldResult is one verification outcome. Confidence is a heuristic
// 0-100 score, not a probability.
type FieldResult struct {
	Field      string      `json:"field"`
	Status     FieldStatus `json:"status"`
	Message    string      `json:"message"`
	FormText   string      `json:"formText,omitempty"`  // echoed form value
	LabelText  string      `json:"labelText,omitempty"` // echoed label fragment
	Confidence float64     `json:"confidence"`
}

// VerificationReport holds the ordered field results, the overall
// disposition, and the original extracted text for audit display.
// Result order is the matcher evaluation order and is stable for a
// given category.
type VerificationReport struct {
	OverallStatus Disposition   `json:"overallStatus"`
	Results       []FieldResult `json:"results"`
	DetectedText  string        `json:"detectedText"`
}
