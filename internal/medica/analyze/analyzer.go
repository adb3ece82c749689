// Package analyze implements the symptom/drug analysis engine: substring
// extraction feeds a catalog matcher and a rule-based medication recommender,
// and the composer assembles their output into a ranked, advice-bearing
// result. The whole pipeline is a pure synchronous function of the input text
// and the immutable catalogs.
package analyze

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
	"github.com/RishiRohanKalapala/medica/internal/medica/extract"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Options tunes the composer.
type Options struct {
	// MaxDiagnoses caps how many catalog matches become diagnoses.
	MaxDiagnoses int

	// ConfidenceBoost is added to every catalog match confidence,
	// capped at ConfidenceCap.
	ConfidenceBoost float64
	ConfidenceCap   float64
}

// DefaultOptions returns the standard tuning: top 4 matches, +0.10 boost
// capped at 0.95.
func DefaultOptions() Options {
	return Options{
		MaxDiagnoses:    4,
		ConfidenceBoost: 0.10,
		ConfidenceCap:   0.95,
	}
}

// Analyzer composes extraction, matching and recommendation over a fixed
// catalog. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	cat  *catalog.Catalog
	opts Options
}

// New returns an analyzer over the given catalog. Zero-valued options fall
// back to the defaults field by field.
func New(cat *catalog.Catalog, opts Options) *Analyzer {
	def := DefaultOptions()
	if opts.MaxDiagnoses <= 0 {
		opts.MaxDiagnoses = def.MaxDiagnoses
	}
	if opts.ConfidenceBoost == 0 {
		opts.ConfidenceBoost = def.ConfidenceBoost
	}
	if opts.ConfidenceCap == 0 {
		opts.ConfidenceCap = def.ConfidenceCap
	}
	return &Analyzer{cat: cat, opts: opts}
}

// Catalog returns the catalog the analyzer operates over.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.cat
}

// keywordHeuristic is a supplementary screening rule: when any trigger word
// appears in the raw input and no already-ranked condition name contains the
// guard keyword, a fixed diagnosis is inserted at the front of the list.
// Rules run in declaration order and each prepends, so the last rule that
// fires ends up ranked first (heart over thyroid over lung when all three
// fire).
type keywordHeuristic struct {
	condition   string
	probability float64
	description string
	triggers    []string
	guard       string
}

var keywordHeuristics = []keywordHeuristic{
	{
		condition:   "Possible Lung Pathology",
		probability: 0.82,
		description: "Respiratory symptoms suggest potential lung disease requiring immediate evaluation. Consider bronchoscopy and advanced imaging.",
		triggers:    []string{"lung", "cough", "shortness", "chest pain"},
		guard:       "lung",
	},
	{
		condition:   "Thyroid Dysfunction",
		probability: 0.78,
		description: "Symptoms consistent with thyroid hormone imbalance. Comprehensive thyroid function testing recommended including TSH, T3, T4, and antibody panels.",
		triggers:    []string{"thyroid", "fatigue", "weight", "heart rate"},
		guard:       "thyroid",
	},
	{
		condition:   "Cardiovascular Condition",
		probability: 0.85,
		description: "Cardiac symptoms warrant comprehensive evaluation including ECG, echocardiogram, and stress testing. Consider emergency evaluation if symptoms are acute.",
		triggers:    []string{"heart", "chest", "palpitation", "dizzy"},
		guard:       "heart",
	},
}

// Analyze runs the full pipeline over one free-text input and returns the
// assembled result. Empty or unrecognized input is not an error: it produces
// empty diagnoses and medications plus advice asking for more detail.
func (a *Analyzer) Analyze(input string) Result {
	symptoms := extract.Symptoms(a.cat, input)
	drugRefs := extract.DrugNames(a.cat, input)

	logger.L().Debugw("Extracted medical entities",
		"symptoms", strings.Join(symptoms, ","),
		"drugs", strings.Join(drugRefs, ","))

	matches := MatchDiseases(a.cat, symptoms)
	suggestions := RecommendMedications(a.cat, input)

	var diagnoses []Diagnosis
	for i, m := range matches {
		if i >= a.opts.MaxDiagnoses {
			break
		}
		probability := m.Confidence + a.opts.ConfidenceBoost
		if probability > a.opts.ConfidenceCap {
			probability = a.opts.ConfidenceCap
		}
		diagnoses = append(diagnoses, Diagnosis{
			Condition:   m.Disease,
			Probability: probability,
			Description: fmt.Sprintf("%s Confidence based on %d matching symptoms: %s.",
				m.Description, len(m.MatchedSymptoms), strings.Join(m.MatchedSymptoms, ", ")),
		})
	}

	inputLower := strings.ToLower(input)
	for _, h := range keywordHeuristics {
		if !containsAny(inputLower, h.triggers) {
			continue
		}
		if conditionNameContains(diagnoses, h.guard) {
			continue
		}
		diagnoses = append([]Diagnosis{{
			Condition:   h.condition,
			Probability: h.probability,
			Description: h.description,
		}}, diagnoses...)
	}

	var medications []Medication
	for _, s := range suggestions {
		medications = append(medications, Medication{
			Name:      fmt.Sprintf("%s (%s)", s.DrugName, s.GenericName),
			Dosage:    s.Dosage,
			Frequency: strings.SplitN(s.Instructions, ".", 2)[0],
			Description: fmt.Sprintf("%s Category: %s. Cost: $%s",
				s.Instructions, s.Category, formatPrice(s.Price)),
		})
	}

	result := Result{
		Diagnoses:   diagnoses,
		Medications: medications,
		Advice:      a.composeAdvice(diagnoses, medications),
	}

	logger.L().Infow("Analysis completed",
		"diagnoses", len(result.Diagnoses),
		"medications", len(result.Medications))

	return result
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func conditionNameContains(diagnoses []Diagnosis, keyword string) bool {
	for _, d := range diagnoses {
		if strings.Contains(strings.ToLower(d.Condition), keyword) {
			return true
		}
	}
	return false
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
