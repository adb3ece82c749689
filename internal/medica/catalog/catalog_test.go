package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Diseases(), 12)
	assert.Len(t, cat.Drugs(), 12)

	// Every symptom phrase is canonical lowercase and appears once.
	seen := make(map[string]struct{})
	for _, s := range cat.SymptomPhrases() {
		_, dup := seen[s]
		assert.False(t, dup, "duplicate symptom phrase %q", s)
		seen[s] = struct{}{}
	}
}

func TestSymptomPhrasesFirstSeenOrder(t *testing.T) {
	cat := Default()

	phrases := cat.SymptomPhrases()
	require.NotEmpty(t, phrases)

	// The first disease's symptoms open the list in record order.
	first := cat.Diseases()[0]
	assert.Equal(t, first.Symptoms, phrases[:len(first.Symptoms)])
}

func TestFindDiseaseByName(t *testing.T) {
	cat := Default()

	tests := []struct {
		name     string
		lookup   string
		expected string
		found    bool
	}{
		{
			name:     "exact_name",
			lookup:   "Hypothyroidism",
			expected: "Hypothyroidism",
			found:    true,
		},
		{
			name:     "case_insensitive",
			lookup:   "heart failure",
			expected: "Heart Failure",
			found:    true,
		},
		{
			name:   "partial_name_not_found",
			lookup: "Lung Cancer",
			found:  false,
		},
		{
			name:   "unknown",
			lookup: "Common Cold",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := cat.FindDiseaseByName(tt.lookup)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, d.Name)
			}
		})
	}
}

func TestFindDrugByName(t *testing.T) {
	cat := Default()

	tests := []struct {
		name     string
		lookup   string
		expected string
		found    bool
	}{
		{
			name:     "brand_exact",
			lookup:   "Opdivo",
			expected: "Opdivo",
			found:    true,
		},
		{
			name:     "generic_case_insensitive",
			lookup:   "levothyroxine",
			expected: "Synthroid",
			found:    true,
		},
		{
			name:     "substring_of_brand",
			lookup:   "metoprolol",
			expected: "Metoprolol",
			found:    true,
		},
		{
			name:   "unknown_drug",
			lookup: "Aspirin",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := cat.FindDrugByName(tt.lookup)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, d.BrandName)
			}
		})
	}
}

func TestFindDrugByNDC(t *testing.T) {
	cat := Default()

	d, ok := cat.FindDrugByNDC(13001)
	require.True(t, ok)
	assert.Equal(t, "Synthroid", d.BrandName)

	_, ok = cat.FindDrugByNDC(99999)
	assert.False(t, ok)
}

func TestTreatmentsAndPrecautions(t *testing.T) {
	cat := Default()

	treatments := cat.Treatments("hypothyroidism")
	assert.Contains(t, treatments, "levothyroxine replacement therapy")

	precautions := cat.Precautions("Hypothyroidism")
	assert.NotEmpty(t, precautions)

	assert.Nil(t, cat.Treatments("Possible Lung Pathology"))
	assert.Nil(t, cat.Precautions("unknown condition"))
}

func TestDiagnosticTestsBuckets(t *testing.T) {
	cat := Default()

	tests := []struct {
		name      string
		condition string
		contains  string
	}{
		{
			name:      "lung_keyword",
			condition: "Possible Lung Pathology",
			contains:  "Bronchoscopy with biopsy",
		},
		{
			name:      "cancer_keyword_uses_lung_panel",
			condition: "Thyroid Cancer",
			contains:  "Chest X-ray",
		},
		{
			name:      "thyroid_keyword",
			condition: "Hypothyroidism",
			contains:  "TSH (Thyroid Stimulating Hormone)",
		},
		{
			name:      "heart_keyword",
			condition: "Heart Failure",
			contains:  "Echocardiogram",
		},
		{
			name:      "cardiovascular_keyword",
			condition: "Cardiovascular Condition",
			contains:  "Electrocardiogram (ECG/EKG)",
		},
		{
			name:      "generic_fallback",
			condition: "Unspecified Malaise",
			contains:  "Comprehensive metabolic panel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.DiagnosticTests(tt.condition)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestNewBuildsIndexes(t *testing.T) {
	cat := New(
		[]Disease{
			{Name: "Disease A", Symptoms: []string{"symptom one", "shared"}},
			{Name: "Disease B", Symptoms: []string{"shared", "symptom two"}},
		},
		[]Drug{
			{BrandName: "BrandX", GenericName: "genericx", NDC: 1},
		},
	)

	assert.Equal(t, []string{"symptom one", "shared", "symptom two"}, cat.SymptomPhrases())

	d, ok := cat.FindDiseaseByName("disease b")
	require.True(t, ok)
	assert.Equal(t, "Disease B", d.Name)
}
