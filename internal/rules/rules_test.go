package rules

import (
	"strings"
	"testing"

	"github.com/labelcheck/backend/internal/domain"
)

func TestClassifyWineABV(t *testing.T) {
	t.Run("at or below ceiling qualifies as table wine", func(t *testing.T) {
		for _, abv := range []float64{7.0, 12.5, 14.0} {
			v := ClassifyWineABV(abv)
			if !v.Valid {
				t.Errorf("ClassifyWineABV(%v).Valid = false", abv)
			}
			if v.Descriptor != "Table Wine" {
				t.Errorf("ClassifyWineABV(%v).Descriptor = %q, want Table Wine", abv, v.Descriptor)
			}
		}
	})

	t.Run("above ceiling qualifies as dessert wine", func(t *testing.T) {
		v := ClassifyWineABV(14.1)
		if !v.Valid {
			t.Error("wine ABV above the table ceiling is still lawful")
		}
		if v.Descriptor != "Dessert Wine" {
			t.Errorf("Descriptor = %q, want Dessert Wine", v.Descriptor)
		}
	})
}

func TestValidateSpiritsABV(t *testing.T) {
	t.Run("below minimum is invalid", func(t *testing.T) {
		v := ValidateSpiritsABV(19.9, "Vodka")
		if v.Valid {
			t.Error("Valid = true, want false below the 20% minimum")
		}
	})

	t.Run("at minimum is valid", func(t *testing.T) {
		if v := ValidateSpiritsABV(20.0, "Vodka"); !v.Valid {
			t.Errorf("Valid = false: %s", v.Message)
		}
	})

	t.Run("bourbon below its sub-rule minimum is invalid", func(t *testing.T) {
		v := ValidateSpiritsABV(35.0, "Kentucky Straight Bourbon Whiskey")
		if v.Valid {
			t.Error("Valid = true, want false below the 40% bourbon minimum")
		}
		if !strings.Contains(v.Message, "Bourbon") {
			t.Errorf("Message = %q, want bourbon rule named", v.Message)
		}
	})

	t.Run("bourbon at its minimum is valid", func(t *testing.T) {
		if v := ValidateSpiritsABV(40.0, "Bourbon"); !v.Valid {
			t.Errorf("Valid = false: %s", v.Message)
		}
	})

	t.Run("non-bourbon spirits ignore the bourbon sub-rule", func(t *testing.T) {
		if v := ValidateSpiritsABV(35.0, "Gin"); !v.Valid {
			t.Errorf("Valid = false: %s", v.Message)
		}
	})
}

func TestWarningPhrases(t *testing.T) {
	t.Run("five required phrases", func(t *testing.T) {
		if len(RequiredWarningPhrases) != 5 {
			t.Fatalf("len(RequiredWarningPhrases) = %d, want 5", len(RequiredWarningPhrases))
		}
	})

	t.Run("both canonical renderings contain every phrase", func(t *testing.T) {
		for _, rendering := range []string{HealthWarningText, HealthWarningTextAlt} {
			upper := strings.ToUpper(rendering)
			for _, phrase := range RequiredWarningPhrases {
				if !strings.Contains(upper, phrase) {
					t.Errorf("canonical rendering missing %q", phrase)
				}
			}
		}
	})
}

func TestRequiredFields(t *testing.T) {
	t.Run("every supported category has a field list", func(t *testing.T) {
		for _, category := range []domain.ProductCategory{
			domain.CategoryWine,
			domain.CategoryBeer,
			domain.CategoryDistilledSpirits,
		} {
			if len(RequiredFields[category]) == 0 {
				t.Errorf("RequiredFields[%s] is empty", category)
			}
		}
	})

	t.Run("only wine requires a sulfite declaration", func(t *testing.T) {
		for category, fields := range RequiredFields {
			has := false
			for _, f := range fields {
				if f == "sulfiteDeclaration" {
					has = true
				}
			}
			if has != (category == domain.CategoryWine) {
				t.Errorf("sulfiteDeclaration required for %s = %v", category, has)
			}
		}
	})
}
