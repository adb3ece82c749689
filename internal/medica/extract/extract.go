// Package extract detects known medical terms inside free text. Detection is
// exact substring containment against the catalogs: no tokenization, no
// stemming, no fuzzy matching. Overlapping phrases ("pain" and "chest pain")
// match independently when both exist in the catalog.
package extract

import (
	"strings"

	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Symptoms returns every catalog symptom phrase contained in the input,
// de-duplicated, in catalog iteration order. Empty input yields nil.
func Symptoms(cat *catalog.Catalog, text string) []string {
	input := strings.ToLower(text)
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var found []string
	for _, phrase := range cat.SymptomPhrases() {
		if strings.Contains(input, phrase) {
			found = append(found, phrase)
		}
	}

	logger.L().Debugw("Symptom extraction completed",
		"input_len", len(text),
		"symptoms", strings.Join(found, ","))

	return found
}

// DrugNames returns the brand and generic names mentioned in the input.
// Brand and generic are tested independently per drug and both are reported
// when both appear. Results keep first-seen catalog order and contain no
// duplicates.
func DrugNames(cat *catalog.Catalog, text string) []string {
	input := strings.ToLower(text)
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var names []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, drug := range cat.Drugs() {
		if strings.Contains(input, strings.ToLower(drug.BrandName)) {
			add(drug.BrandName)
		}
		if strings.Contains(input, strings.ToLower(drug.GenericName)) {
			add(drug.GenericName)
		}
	}

	logger.L().Debugw("Drug name extraction completed",
		"input_len", len(text),
		"drugs", strings.Join(names, ","))

	return names
}
