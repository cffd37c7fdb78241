// Package rules holds the TTB label requirements consulted during
// verification: per-category thresholds and vocabularies plus the
// canonical health warning statement. All data here is read-only
// reference material; matchers never mutate it.
package rules

import (
	"fmt"
	"strings"

	"github.com/labelcheck/backend/internal/domain"
)

// Official TTB health warning statement (27 CFR § 16.21)
const HealthWarningText = "GOVERNMENT WARNING: (1) According to the Surgeon General, women should not drink alcoholic beverages during pregnancy because of the risk of birth defects. (2) Consumption of alcoholic beverages impairs your ability to drive a car or operate machinery, and may cause health problems."

// Alternative single-sentence rendering, also accepted
const HealthWarningTextAlt = "GOVERNMENT WARNING: According to the Surgeon General, women should not drink alcoholic beverages during pregnancy because of the risk of birth defects. Consumption of alcoholic beverages impairs your ability to drive a car or operate machinery, and may cause health problems."

// RequiredWarningPhrases are the sub-phrases a label warning must carry.
// Partial-credit matching counts how many of these appear.
var RequiredWarningPhrases = []string{
	"GOVERNMENT WARNING",
	"SURGEON GENERAL",
	"PREGNANCY",
	"BIRTH DEFECTS",
	"IMPAIRS YOUR ABILITY TO DRIVE",
}

// WineRules holds wine-specific labeling thresholds
type WineRules struct {
	TableWineMaxABV            float64
	TableWineDescriptor        string
	RequiresSulfiteDeclaration bool
	SulfiteThresholdPPM        int
	AllowedDescriptors         []string
}

// BeerRules holds beer/malt-beverage labeling guidance. The style
// vocabulary is informational, not binding.
type BeerRules struct {
	RequiresIngredientsList bool
	CommonStyles            []string
}

// BourbonRules is the bourbon sub-rule within distilled spirits
type BourbonRules struct {
	MinimumABV float64
	Descriptor string
}

// SpiritsRules holds distilled-spirits labeling thresholds
type SpiritsRules struct {
	MinimumABV float64
	Classes    []string
	Bourbon    BourbonRules
}

var Wine = WineRules{
	TableWineMaxABV:            14.0,
	TableWineDescriptor:        "Table Wine",
	RequiresSulfiteDeclaration: true,
	SulfiteThresholdPPM:        10,
	AllowedDescriptors: []string{
		"Table Wine",
		"Light Wine",
		"Dessert Wine",
		"Sparkling Wine",
	},
}

var Beer = BeerRules{
	RequiresIngredientsList: false,
	CommonStyles: []string{
		"IPA",
		"Pale Ale",
		"Lager",
		"Stout",
		"Porter",
		"Pilsner",
		"Wheat Beer",
		"Sour Beer",
	},
}

var Spirits = SpiritsRules{
	MinimumABV: 20.0,
	Classes: []string{
		"Whiskey",
		"Bourbon",
		"Rye Whiskey",
		"Tennessee Whiskey",
		"Scotch Whisky",
		"Vodka",
		"Gin",
		"Rum",
		"Tequila",
		"Brandy",
		"Cognac",
	},
	Bourbon: BourbonRules{
		MinimumABV: 40.0,
		Descriptor: "Kentucky Straight Bourbon Whiskey",
	},
}

// RequiredFields lists the submission fields that must be non-empty
// for each product category before verification runs
var RequiredFields = map[domain.ProductCategory][]string{
	domain.CategoryWine: {
		"brandName",
		"productType",
		"alcoholContent",
		"netContents",
		"sulfiteDeclaration",
	},
	domain.CategoryBeer: {
		"brandName",
		"productType",
		"alcoholContent",
		"netContents",
	},
	domain.CategoryDistilledSpirits: {
		"brandName",
		"productType",
		"alcoholContent",
		"netContents",
	},
}

// ABVValidation is the result of a form-time category rule check
type ABVValidation struct {
	Valid      bool   `json:"valid"`
	Descriptor string `json:"descriptor,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ClassifyWineABV reports which wine descriptor the declared ABV
// qualifies for. Wine ABV is always lawful; the descriptor changes at
// the table-wine ceiling.
func ClassifyWineABV(abv float64) ABVValidation {
	if abv <= Wine.TableWineMaxABV {
		return ABVValidation{
			Valid:      true,
			Descriptor: Wine.TableWineDescriptor,
			Message:    fmt.Sprintf("This qualifies as %q (ABV <= %.0f%%)", Wine.TableWineDescriptor, Wine.TableWineMaxABV),
		}
	}
	return ABVValidation{
		Valid:      true,
		Descriptor: "Dessert Wine",
		Message:    "This qualifies as Dessert Wine or Fortified Wine (ABV > 14%)",
	}
}

// ValidateSpiritsABV checks the declared ABV against the distilled
// spirits minimum and, when the product type names bourbon, the
// bourbon sub-rule.
func ValidateSpiritsABV(abv float64, productType string) ABVValidation {
	if abv < Spirits.MinimumABV {
		return ABVValidation{
			Valid:   false,
			Message: fmt.Sprintf("Distilled spirits must be at least %.0f%% ABV", Spirits.MinimumABV),
		}
	}
	if strings.Contains(strings.ToLower(productType), "bourbon") && abv < Spirits.Bourbon.MinimumABV {
		return ABVValidation{
			Valid:   false,
			Message: fmt.Sprintf("Bourbon must be at least %.0f%% ABV", Spirits.Bourbon.MinimumABV),
		}
	}
	return ABVValidation{Valid: true}
}
