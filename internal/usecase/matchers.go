package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/labelcheck/backend/internal/domain"
	"github.com/labelcheck/backend/internal/rules"
)

// Package-level compiled regex patterns for performance
var (
	// Matches percentage figures like "12.5%" or "40 %"
	abvPercentRegex = regexp.MustCompile(`(\d+\.?\d*)\s*%`)

	// Matches volume expressions like "750 mL", "12 fl oz", "1.5L"
	volumeRegex = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(fl\s*oz|ml|oz|l)`)

	// Matches a leading age figure like "12 year" or "4yr"
	ageStatementRegex = regexp.MustCompile(`(\d+)\s*(year|yr)`)
)

// Report field names, in the caller-visible form
const (
	fieldBrandName     = "Brand Name"
	fieldProductType   = "Product Type"
	fieldAlcohol       = "Alcohol Content"
	fieldNetContents   = "Net Contents"
	fieldHealthWarning = "Health Warning"
	fieldSulfites      = "Sulfite Declaration (Wine)"
	fieldAgeStatement  = "Age Statement"
)

// Heuristic confidence scores. These are fixed contract values carried
// over from the original scoring policy, not derived quantities.
const (
	confidenceExactBrand  = 100.0
	confidenceABVMatch    = 95.0
	confidenceSulfitePass = 95.0
	confidenceVolumeMatch = 90.0
	confidenceTypeFound   = 90.0
	confidenceAgeVerified = 85.0
	confidenceTypePartial = 60.0
	confidenceAgeMention  = 60.0
	confidenceTypeMissing = 50.0
	confidenceABVMismatch = 30.0
	confidenceNone        = 0.0
)

// abvTolerance is the maximum absolute ABV difference (exclusive)
// accepted between the form value and a label percentage
const abvTolerance = 0.5

// minPartialTokenLen is the floor below which brand/type tokens are too
// short to count toward a partial match (avoids filler-word hits)
const minPartialTokenLen = 3

// matchBrandName checks the submitted brand against the lower-cased
// label text: full substring first, then token overlap for labels where
// OCR broke the brand across lines.
func matchBrandName(brandName, labelText string) domain.FieldResult {
	brand := strings.ToLower(brandName)

	if strings.Contains(labelText, brand) {
		return domain.FieldResult{
			Field:      fieldBrandName,
			Status:     domain.StatusPass,
			Message:    "Brand name found on label",
			FormText:   brandName,
			LabelText:  brandName,
			Confidence: confidenceExactBrand,
		}
	}

	words := strings.Fields(brand)
	matched := 0
	for _, word := range words {
		if len(word) > minPartialTokenLen && strings.Contains(labelText, word) {
			matched++
		}
	}

	if matched > 0 && float64(matched) >= float64(len(words))/2 {
		return domain.FieldResult{
			Field:      fieldBrandName,
			Status:     domain.StatusWarning,
			Message:    fmt.Sprintf("Partial brand match found (%d/%d words)", matched, len(words)),
			FormText:   brandName,
			Confidence: float64(matched) / float64(len(words)) * 100,
		}
	}

	return domain.FieldResult{
		Field:      fieldBrandName,
		Status:     domain.StatusFail,
		Message:    fmt.Sprintf("Brand name %q not found on label", brandName),
		FormText:   brandName,
		Confidence: confidenceNone,
	}
}

// matchProductType is the permissive variant of the brand check:
// type phrasing legitimately varies, so a miss is a Warning, never a
// Fail, and this field alone cannot block approval.
func matchProductType(productType, labelText string) domain.FieldResult {
	pt := strings.ToLower(productType)

	if strings.Contains(labelText, pt) {
		return domain.FieldResult{
			Field:      fieldProductType,
			Status:     domain.StatusPass,
			Message:    "Product type found on label",
			FormText:   productType,
			Confidence: confidenceTypeFound,
		}
	}

	for _, word := range strings.Fields(pt) {
		if len(word) > minPartialTokenLen && strings.Contains(labelText, word) {
			return domain.FieldResult{
				Field:      fieldProductType,
				Status:     domain.StatusWarning,
				Message:    "Product type partially found on label",
				FormText:   productType,
				Confidence: confidenceTypePartial,
			}
		}
	}

	return domain.FieldResult{
		Field:      fieldProductType,
		Status:     domain.StatusWarning,
		Message:    fmt.Sprintf("Product type %q not explicitly found", productType),
		FormText:   productType,
		Confidence: confidenceTypeMissing,
	}
}

// matchAlcoholContent scans the raw label text for percentage figures
// and compares each against the declared ABV. An unparseable form value
// degenerates to the no-figure Fail path.
func matchAlcoholContent(declared, labelText string) domain.FieldResult {
	formValue, parseErr := strconv.ParseFloat(strings.TrimSpace(declared), 64)
	matches := abvPercentRegex.FindAllStringSubmatch(labelText, -1)

	if parseErr == nil {
		for _, m := range matches {
			detected, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if math.Abs(detected-formValue) < abvTolerance {
				return domain.FieldResult{
					Field:      fieldAlcohol,
					Status:     domain.StatusPass,
					Message:    fmt.Sprintf("ABV %s%% matches form data", m[1]),
					FormText:   declared + "%",
					LabelText:  m[1] + "%",
					Confidence: confidenceABVMatch,
				}
			}
		}

		if len(matches) > 0 {
			closest := matches[0][1]
			closestDiff := math.Inf(1)
			for _, m := range matches {
				detected, err := strconv.ParseFloat(m[1], 64)
				if err != nil {
					continue
				}
				if diff := math.Abs(detected - formValue); diff < closestDiff {
					closestDiff = diff
					closest = m[1]
				}
			}

			return domain.FieldResult{
				Field:      fieldAlcohol,
				Status:     domain.StatusFail,
				Message:    fmt.Sprintf("ABV mismatch: Form shows %s%%, label shows %s%%", declared, closest),
				FormText:   declared + "%",
				LabelText:  closest + "%",
				Confidence: confidenceABVMismatch,
			}
		}
	}

	return domain.FieldResult{
		Field:      fieldAlcohol,
		Status:     domain.StatusFail,
		Message:    "Could not find any ABV percentage on label",
		FormText:   declared + "%",
		Confidence: confidenceNone,
	}
}

// matchNetContents looks for number+unit volume expressions and accepts
// a match when either normalized string contains the other, which
// covers "fl oz" vs "floz" style variants. Volume OCR noise is common,
// so a miss routes to review (Warning), not rejection.
func matchNetContents(netContents, labelText string) domain.FieldResult {
	normalizedInput := stripSpacesLower(netContents)

	for _, m := range volumeRegex.FindAllStringSubmatch(labelText, -1) {
		detected := stripSpacesLower(m[1] + m[2])

		if strings.Contains(normalizedInput, detected) ||
			strings.Contains(detected, strings.ReplaceAll(normalizedInput, "floz", "oz")) {
			return domain.FieldResult{
				Field:      fieldNetContents,
				Status:     domain.StatusPass,
				Message:    "Volume matches label",
				FormText:   netContents,
				LabelText:  m[0],
				Confidence: confidenceVolumeMatch,
			}
		}
	}

	return domain.FieldResult{
		Field:      fieldNetContents,
		Status:     domain.StatusWarning,
		Message:    "Could not verify volume on label",
		FormText:   netContents,
		Confidence: confidenceNone,
	}
}

func stripSpacesLower(s string) string {
	return strings.ToLower(whitespaceRunRegex.ReplaceAllString(s, ""))
}

// matchHealthWarning counts how many of the required warning phrases
// appear in the upper-cased label text. The graduated threshold (4 of 5
// passes) tolerates OCR dropping one short phrase from an otherwise
// compliant warning; an exact rendering match is reported as an
// informational note only.
func matchHealthWarning(labelText string) domain.FieldResult {
	normalized := normalizeUpper(labelText)

	matchCount := 0
	var missing []string
	for _, phrase := range rules.RequiredWarningPhrases {
		if strings.Contains(normalized, phrase) {
			matchCount++
		} else {
			missing = append(missing, phrase)
		}
	}

	total := len(rules.RequiredWarningPhrases)
	confidence := float64(matchCount) / float64(total) * 100

	if matchCount >= 4 {
		message := fmt.Sprintf("Required health warning present (%d/%d key phrases found)", matchCount, total)
		if strings.Contains(normalized, normalizeUpper(rules.HealthWarningText)) ||
			strings.Contains(normalized, normalizeUpper(rules.HealthWarningTextAlt)) {
			message += "; exact TTB wording found"
		}
		return domain.FieldResult{
			Field:      fieldHealthWarning,
			Status:     domain.StatusPass,
			Message:    message,
			Confidence: confidence,
		}
	}

	if matchCount >= 2 {
		return domain.FieldResult{
			Field:      fieldHealthWarning,
			Status:     domain.StatusWarning,
			Message:    fmt.Sprintf("Partial health warning found (%d/%d phrases). Missing: %s", matchCount, total, strings.Join(missing, ", ")),
			Confidence: confidence,
		}
	}

	return domain.FieldResult{
		Field:      fieldHealthWarning,
		Status:     domain.StatusFail,
		Message:    "Required health warning missing or incomplete",
		Confidence: confidence,
	}
}

// matchSulfites enforces the wine sulfite declaration. This is a hard
// regulatory requirement, so there is no Warning tier.
func matchSulfites(declaration, labelText string) domain.FieldResult {
	if strings.Contains(labelText, "sulfite") || strings.Contains(labelText, "sulphite") {
		return domain.FieldResult{
			Field:      fieldSulfites,
			Status:     domain.StatusPass,
			Message:    "Sulfite declaration found on label",
			FormText:   declaration,
			Confidence: confidenceSulfitePass,
		}
	}

	return domain.FieldResult{
		Field:      fieldSulfites,
		Status:     domain.StatusFail,
		Message:    "Required sulfite declaration missing from label",
		FormText:   declaration,
		Confidence: confidenceNone,
	}
}

// matchAgeStatement verifies a voluntary spirits age claim. An absent
// or unverifiable claim is a review flag, never a rejection.
func matchAgeStatement(ageStatement, labelText string) domain.FieldResult {
	statement := strings.ToLower(ageStatement)

	if m := ageStatementRegex.FindStringSubmatch(statement); m != nil && strings.Contains(labelText, m[1]) {
		return domain.FieldResult{
			Field:      fieldAgeStatement,
			Status:     domain.StatusPass,
			Message:    "Age statement verified on label",
			FormText:   ageStatement,
			Confidence: confidenceAgeVerified,
		}
	}

	if strings.Contains(labelText, "age") {
		return domain.FieldResult{
			Field:      fieldAgeStatement,
			Status:     domain.StatusWarning,
			Message:    "Age statement found but could not verify exact match",
			FormText:   ageStatement,
			Confidence: confidenceAgeMention,
		}
	}

	return domain.FieldResult{
		Field:      fieldAgeStatement,
		Status:     domain.StatusWarning,
		Message:    "Age statement not found on label",
		FormText:   ageStatement,
		Confidence: confidenceNone,
	}
}
