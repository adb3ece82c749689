package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathsUseBuiltin(t *testing.T) {
	cat, err := Load("", "")
	require.NoError(t, err)

	assert.Len(t, cat.Diseases(), 12)
	assert.Len(t, cat.Drugs(), 12)
}

func TestLoadDiseaseOverride(t *testing.T) {
	path := writeTempFile(t, "diseases.json", `[
		{
			"disease": "Test Condition",
			"symptoms": ["Test Symptom"],
			"description": "A test entry.",
			"severity": 3,
			"treatments": ["rest"]
		}
	]`)

	cat, err := Load(path, "")
	require.NoError(t, err)

	require.Len(t, cat.Diseases(), 1)
	d, ok := cat.FindDiseaseByName("Test Condition")
	require.True(t, ok)
	// validator lowercases symptoms on the way in
	assert.Equal(t, []string{"test symptom"}, d.Symptoms)
	assert.Equal(t, []string{"rest"}, cat.Treatments("test condition"))

	// builtin drugs still present
	assert.Len(t, cat.Drugs(), 12)
}

func TestLoadDrugOverride(t *testing.T) {
	path := writeTempFile(t, "drugs.json", `[
		{
			"brand_name": "TestBrand",
			"generic_name": "testgeneric",
			"ndc": 55555,
			"dosage": 10,
			"sell_price": 12.5,
			"category": "Test"
		}
	]`)

	cat, err := Load("", path)
	require.NoError(t, err)

	require.Len(t, cat.Drugs(), 1)
	d, ok := cat.FindDrugByNDC(55555)
	require.True(t, ok)
	assert.Equal(t, "TestBrand", d.BrandName)
	assert.Equal(t, 12.5, d.SellPrice)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)

	bad := writeTempFile(t, "bad.json", `[{"disease":"X","symptoms":[],"severity":3}]`)
	_, err = Load(bad, "")
	assert.Error(t, err)

	badDrugs := writeTempFile(t, "drugs.json", `[{"brand_name":"A"}]`)
	_, err = Load("", badDrugs)
	assert.Error(t, err)
}
