package analyze

import (
	"fmt"
	"strings"

	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// suggestionRule maps condition keywords found in free text to fixed catalog
// drug lookups. Rules are evaluated independently in declaration order and
// are not mutually exclusive: every rule that fires appends its drugs.
type suggestionRule struct {
	keywords []string
	drugs    []ruleDrug
}

type ruleDrug struct {
	name         string
	dosageFormat string // fmt pattern receiving the catalog dosage amount
	instructions string
}

var suggestionRules = []suggestionRule{
	{
		keywords: []string{"lung cancer", "nsclc"},
		drugs: []ruleDrug{
			{
				name:         "Opdivo",
				dosageFormat: "%.0fmg IV every 2 weeks",
				instructions: "Administered by healthcare professional. Monitor for immune-related adverse reactions.",
			},
		},
	},
	{
		keywords: []string{"hypothyroidism", "thyroid"},
		drugs: []ruleDrug{
			{
				name:         "Synthroid",
				dosageFormat: "%.0fmcg daily",
				instructions: "Take on empty stomach, 30-60 minutes before breakfast. Consistent timing important.",
			},
		},
	},
	{
		keywords: []string{"heart", "cardiac", "chest pain"},
		drugs: []ruleDrug{
			{
				name:         "Lipitor",
				dosageFormat: "%.0fmg daily",
				instructions: "Take with or without food. Monitor liver function tests.",
			},
			{
				name:         "Metoprolol",
				dosageFormat: "%.0fmg twice daily",
				instructions: "Take with food. Do not stop abruptly. Monitor heart rate and blood pressure.",
			},
		},
	},
}

// RecommendMedications maps free text onto the fixed rule list and resolves
// each fired rule's drugs against the catalog. A referenced drug missing from
// the catalog is skipped silently rather than failing the call: a trimmed
// override catalog must not break analysis.
func RecommendMedications(cat *catalog.Catalog, freeText string) []Suggestion {
	input := strings.ToLower(freeText)

	var suggestions []Suggestion
	for _, rule := range suggestionRules {
		fired := false
		for _, kw := range rule.keywords {
			if strings.Contains(input, kw) {
				fired = true
				break
			}
		}
		if !fired {
			continue
		}

		for _, rd := range rule.drugs {
			drug, ok := cat.FindDrugByName(rd.name)
			if !ok {
				logger.L().Warnw("Recommended drug not in catalog, skipping",
					"drug", rd.name)
				continue
			}
			suggestions = append(suggestions, Suggestion{
				DrugName:     drug.BrandName,
				GenericName:  drug.GenericName,
				Dosage:       fmt.Sprintf(rd.dosageFormat, drug.Dosage),
				Instructions: rd.instructions,
				Price:        drug.SellPrice,
				Category:     drug.Category,
			})
		}
	}

	logger.L().Debugw("Medication recommendation completed",
		"suggestions", len(suggestions))

	return suggestions
}
