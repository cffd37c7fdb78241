package domain

import "time"

// ProductCategory identifies which TTB rule set applies to a submission
type ProductCategory string

const (
	CategoryWine             ProductCategory = "wine"
	CategoryBeer             ProductCategory = "beer"
	CategoryDistilledSpirits ProductCategory = "distilled_spirits"
)

// Valid reports whether the category is one of the three supported values
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryWine, CategoryBeer, CategoryDistilledSpirits:
		return true
	}
	return false
}

// Submission is the structured product record entered by the applicant.
// The verification engine never mutates it.
type Submission struct {
	Category       ProductCategory `json:"productCategory" binding:"required"`
	BrandName      string          `json:"brandName" binding:"required"`
	ProductType    string          `json:"productType" binding:"required"`
	AlcoholContent string          `json:"alcoholContent" binding:"required"` // numeric string, e.g. "12.5"
	NetContents    string          `json:"netContents,omitempty"`             // free text, e.g. "750 mL"

	// Category-specific fields
	SulfiteDeclaration string `json:"sulfiteDeclaration,omitempty"` // wine
	AgeStatement       string `json:"ageStatement,omitempty"`       // distilled spirits, optional
	DistillerName      string `json:"distillerName,omitempty"`      // distilled spirits
	Ingredients        string `json:"ingredients,omitempty"`        // beer

	// Health warning text as transcribed by the submitter
	HealthWarningText string `json:"healthWarningText,omitempty"`
}

// SubmissionRecord is a persisted submission together with its
// verification report and the identity of the caller that produced it.
type SubmissionRecord struct {
	ID         int64              `json:"id"`
	OwnerID    string             `json:"ownerId"`
	Submission Submission         `json:"submission"`
	Report     VerificationReport `json:"report"`
	CreatedAt  time.Time          `json:"createdAt"`
}
