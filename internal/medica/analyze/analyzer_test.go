package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
)

func newTestAnalyzer() *Analyzer {
	return New(catalog.Default(), DefaultOptions())
}

func TestNewFillsZeroOptions(t *testing.T) {
	a := New(catalog.Default(), Options{})
	assert.Equal(t, 4, a.opts.MaxDiagnoses)
	assert.Equal(t, 0.10, a.opts.ConfidenceBoost)
	assert.Equal(t, 0.95, a.opts.ConfidenceCap)

	a = New(catalog.Default(), Options{MaxDiagnoses: 2, ConfidenceBoost: 0.05, ConfidenceCap: 0.90})
	assert.Equal(t, 2, a.opts.MaxDiagnoses)
	assert.Equal(t, 0.05, a.opts.ConfidenceBoost)
	assert.Equal(t, 0.90, a.opts.ConfidenceCap)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty_string", input: ""},
		{name: "whitespace", input: "   "},
		{name: "nothing_recognized", input: "hello there, how are you?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(tt.input)
			assert.Empty(t, result.Diagnoses)
			assert.Empty(t, result.Medications)
			assert.Contains(t, result.Advice, "**Insufficient Data for Definitive Analysis**")
			assert.Contains(t, result.Advice, "IMPORTANT MEDICAL DISCLAIMER")
		})
	}
}

func TestAnalyzeBoostApplied(t *testing.T) {
	a := newTestAnalyzer()

	// "neck lump" matches Thyroid Cancer alone at 1/5 raw confidence and
	// trips no keyword heuristic, so the only diagnosis is 0.20 + 0.10.
	result := a.Analyze("neck lump")

	require.Len(t, result.Diagnoses, 1)
	assert.Equal(t, "Thyroid Cancer", result.Diagnoses[0].Condition)
	assert.InDelta(t, 0.30, result.Diagnoses[0].Probability, 1e-9)
	assert.Contains(t, result.Diagnoses[0].Description, "1 matching symptoms: neck lump.")
}

func TestAnalyzeFullPipeline(t *testing.T) {
	a := newTestAnalyzer()

	// Every Coronary Artery Disease and Hypertensive Heart Disease symptom
	// is present, so both hit the 0.95 cap; "fatigue" trips the thyroid
	// heuristic (no thyroid condition ranked), while the lung and heart
	// heuristics are suppressed by ranked condition names.
	input := "chest pain, shortness of breath, fatigue, irregular heartbeat, dizziness and nausea"
	result := a.Analyze(input)

	require.Len(t, result.Diagnoses, 5)

	assert.Equal(t, "Thyroid Dysfunction", result.Diagnoses[0].Condition)
	assert.InDelta(t, 0.78, result.Diagnoses[0].Probability, 1e-9)

	assert.Equal(t, "Coronary Artery Disease", result.Diagnoses[1].Condition)
	assert.InDelta(t, 0.95, result.Diagnoses[1].Probability, 1e-9)

	assert.Equal(t, "Hypertensive Heart Disease", result.Diagnoses[2].Condition)
	assert.InDelta(t, 0.95, result.Diagnoses[2].Probability, 1e-9)

	for _, d := range result.Diagnoses {
		assert.NotEqual(t, "Possible Lung Pathology", d.Condition)
		assert.NotEqual(t, "Cardiovascular Condition", d.Condition)
	}

	// The heart rule fires on "heart" (via heartbeat) and "chest pain".
	require.Len(t, result.Medications, 2)
	assert.Equal(t, "Lipitor (Atorvastatin)", result.Medications[0].Name)
	assert.Equal(t, "40mg daily", result.Medications[0].Dosage)
	assert.Equal(t, "Take with or without food", result.Medications[0].Frequency)
	assert.Contains(t, result.Medications[0].Description, "Category: Statin. Cost: $70")
	assert.Equal(t, "Metoprolol (Metoprolol)", result.Medications[1].Name)
	assert.Equal(t, "50mg twice daily", result.Medications[1].Dosage)
}

func TestAnalyzeHeuristicOrdering(t *testing.T) {
	a := newTestAnalyzer()

	// No catalog symptom appears, so all three screening rules fire and
	// each prepends: the last rule ends up first.
	result := a.Analyze("worried about my lung, thyroid and heart")

	require.Len(t, result.Diagnoses, 3)
	assert.Equal(t, "Cardiovascular Condition", result.Diagnoses[0].Condition)
	assert.InDelta(t, 0.85, result.Diagnoses[0].Probability, 1e-9)
	assert.Equal(t, "Thyroid Dysfunction", result.Diagnoses[1].Condition)
	assert.InDelta(t, 0.78, result.Diagnoses[1].Probability, 1e-9)
	assert.Equal(t, "Possible Lung Pathology", result.Diagnoses[2].Condition)
	assert.InDelta(t, 0.82, result.Diagnoses[2].Probability, 1e-9)
}

func TestAnalyzeHeuristicGuard(t *testing.T) {
	a := newTestAnalyzer()

	// "coughing up blood" ranks NSCLC, whose name contains "lung", so the
	// lung screening rule must not add a second lung diagnosis.
	result := a.Analyze("persistent cough and coughing up blood")

	require.NotEmpty(t, result.Diagnoses)
	for _, d := range result.Diagnoses {
		assert.NotEqual(t, "Possible Lung Pathology", d.Condition)
	}
	assert.Equal(t, "Non-Small Cell Lung Cancer (NSCLC)", result.Diagnoses[0].Condition)
}

func TestAnalyzeMaxDiagnosesCap(t *testing.T) {
	a := New(catalog.Default(), Options{MaxDiagnoses: 1, ConfidenceBoost: 0.10, ConfidenceCap: 0.95})

	result := a.Analyze("chest pain, shortness of breath, fatigue, irregular heartbeat, dizziness and nausea")

	// Only Coronary Artery Disease survives the cap, and its name carries
	// neither "lung" nor "heart", so every screening rule prepends.
	require.Len(t, result.Diagnoses, 4)
	assert.Equal(t, "Cardiovascular Condition", result.Diagnoses[0].Condition)
	assert.Equal(t, "Thyroid Dysfunction", result.Diagnoses[1].Condition)
	assert.Equal(t, "Possible Lung Pathology", result.Diagnoses[2].Condition)
	assert.Equal(t, "Coronary Artery Disease", result.Diagnoses[3].Condition)
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := newTestAnalyzer()

	input := "fatigue, weight gain and cold intolerance, currently taking Synthroid"
	first := a.Analyze(input)
	second := a.Analyze(input)

	assert.Equal(t, first, second)
}

func TestAnalyzeDrugMentionAlone(t *testing.T) {
	a := newTestAnalyzer()

	// A bare drug mention carries no symptom and trips no screening rule:
	// the catalog-indicated condition must not surface as a diagnosis.
	result := a.Analyze("Opdivo 240mg")

	assert.Empty(t, result.Diagnoses)
	assert.Empty(t, result.Medications)
	assert.Contains(t, result.Advice, "**Insufficient Data for Definitive Analysis**")
}

func TestAnalyzeMedicationRuleLungCancer(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Analyze("biopsy confirmed lung cancer")

	require.Len(t, result.Medications, 1)
	med := result.Medications[0]
	assert.Equal(t, "Opdivo (Nivolumab)", med.Name)
	assert.Equal(t, "240mg IV every 2 weeks", med.Dosage)
	assert.Equal(t, "Administered by healthcare professional", med.Frequency)
	assert.Contains(t, med.Description, "Category: Immunotherapy. Cost: $2400")
}

func TestComposeAdviceSections(t *testing.T) {
	a := newTestAnalyzer()

	// All Hypothyroidism symptoms present: it ranks first at the cap and
	// its catalog treatments and precautions appear in the advice.
	result := a.Analyze("fatigue, weight gain, cold intolerance, dry skin, hair loss, constipation, depression, memory problems")

	require.NotEmpty(t, result.Diagnoses)
	require.Equal(t, "Hypothyroidism", result.Diagnoses[0].Condition)

	advice := result.Advice
	assert.True(t, strings.HasPrefix(advice, "🔬 **Advanced Clinical Analysis**"))
	assert.Contains(t, advice, "Primary Consideration: **Hypothyroidism** (95% confidence)")
	assert.Contains(t, advice, "**🎯 Recommended Treatments:**")
	assert.Contains(t, advice, "**🧪 Essential Diagnostic Tests:**")
	assert.Contains(t, advice, "TSH (Thyroid Stimulating Hormone)")
	assert.Contains(t, advice, "**⚠️ Critical Precautions:**")
	assert.Contains(t, advice, "• Endocrinologist - for hormone optimization")
	assert.Contains(t, advice, "**⏰ Timeline Recommendations:**")
	assert.Contains(t, advice, "IMPORTANT MEDICAL DISCLAIMER")
}

func TestComposeAdviceTestListCappedAtFive(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Analyze("neck lump and difficulty swallowing")
	require.Equal(t, "Thyroid Cancer", result.Diagnoses[0].Condition)

	// "cancer" buckets into the lung panel, which has 8 entries; only the
	// first 5 may appear in the advice.
	assert.Contains(t, result.Advice, "Sputum cytology")
	assert.NotContains(t, result.Advice, "Pulmonary function tests")
	assert.NotContains(t, result.Advice, "Lipid profile")
}
