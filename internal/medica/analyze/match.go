package analyze

import (
	"sort"
	"strings"

	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// MatchDiseases scores every catalog disease against the extracted symptom
// set and returns the non-zero matches sorted by descending confidence.
//
// A catalog symptom counts as matched when any input symptom is a substring
// of it OR it is a substring of the input symptom. The test is deliberately
// bidirectional: "pain" matches both "chest pain" and "joint pain". Whether
// that over-matching is a feature is an open product question; the behavior
// is preserved as-is.
//
// Confidence is the fraction of the disease's own symptom list that matched,
// not normalized by the number of input symptoms. No rounding is applied.
// The sort is stable, so equal confidences keep catalog insertion order.
func MatchDiseases(cat *catalog.Catalog, symptoms []string) []DiseaseMatch {
	normalized := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			normalized = append(normalized, s)
		}
	}

	var matches []DiseaseMatch
	for _, disease := range cat.Diseases() {
		var matched []string
		for _, symptom := range disease.Symptoms {
			for _, input := range normalized {
				if strings.Contains(symptom, input) || strings.Contains(input, symptom) {
					matched = append(matched, symptom)
					break
				}
			}
		}

		if len(matched) == 0 {
			continue
		}

		matches = append(matches, DiseaseMatch{
			Disease:         disease.Name,
			MatchedSymptoms: matched,
			Confidence:      float64(len(matched)) / float64(len(disease.Symptoms)),
			Description:     disease.Description,
			Severity:        disease.Severity,
			RiskFactors:     disease.RiskFactors,
			DiagnosticTests: disease.DiagnosticTests,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	logger.L().Debugw("Disease matching completed",
		"input_symptoms", len(normalized),
		"matches", len(matches))

	return matches
}
