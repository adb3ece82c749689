package catalog

import (
	"strings"
)

// Disease is one immutable disease catalog record. Symptom phrases are
// canonical lowercase so substring matching never needs to re-normalize them.
type Disease struct {
	Name            string
	Symptoms        []string
	Description     string
	Severity        int // 1-10 scale
	Precautions     []string
	Treatments      []string
	RiskFactors     []string
	DiagnosticTests []string
}

// Drug is one immutable drug catalog record. Prices are illustrative data;
// no sell >= purchase rule is enforced anywhere.
type Drug struct {
	BrandName     string
	GenericName   string
	NDC           int
	Dosage        float64
	PurchasePrice float64
	SellPrice     float64
	Indication    string
	Category      string
}

// Catalog is the read-only container holding both reference tables plus the
// lookup indexes built once at construction. It is safe for concurrent reads:
// nothing mutates it after New returns.
type Catalog struct {
	diseases []Disease
	drugs    []Drug

	// distinct symptom phrases in first-seen catalog order
	symptomPhrases []string

	// lowercase disease name -> index into diseases
	diseaseByName map[string]int
}

// New builds a catalog from validated records and precomputes its indexes.
func New(diseases []Disease, drugs []Drug) *Catalog {
	c := &Catalog{
		diseases:      diseases,
		drugs:         drugs,
		diseaseByName: make(map[string]int, len(diseases)),
	}

	seen := make(map[string]struct{})
	for i, d := range diseases {
		c.diseaseByName[strings.ToLower(d.Name)] = i
		for _, s := range d.Symptoms {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			c.symptomPhrases = append(c.symptomPhrases, s)
		}
	}
	return c
}

// Diseases returns the disease table in catalog order. Callers must treat the
// slice as read-only.
func (c *Catalog) Diseases() []Disease {
	return c.diseases
}

// Drugs returns the drug table in catalog order. Callers must treat the slice
// as read-only.
func (c *Catalog) Drugs() []Drug {
	return c.drugs
}

// SymptomPhrases returns every distinct symptom phrase across the disease
// table, de-duplicated in first-seen order.
func (c *Catalog) SymptomPhrases() []string {
	return c.symptomPhrases
}

// FindDiseaseByName looks up a disease by exact name, case-insensitively.
func (c *Catalog) FindDiseaseByName(name string) (Disease, bool) {
	i, ok := c.diseaseByName[strings.ToLower(name)]
	if !ok {
		return Disease{}, false
	}
	return c.diseases[i], true
}

// FindDrugByName returns the first drug whose brand or generic name contains
// the given name, case-insensitively. This is deliberately a substring test:
// "metoprolol" and "Metoprolol Tartrate" both resolve the same record.
func (c *Catalog) FindDrugByName(name string) (Drug, bool) {
	needle := strings.ToLower(name)
	for _, d := range c.drugs {
		if strings.Contains(strings.ToLower(d.BrandName), needle) ||
			strings.Contains(strings.ToLower(d.GenericName), needle) {
			return d, true
		}
	}
	return Drug{}, false
}

// FindDrugByNDC looks up a drug by its NDC number.
func (c *Catalog) FindDrugByNDC(ndc int) (Drug, bool) {
	for _, d := range c.drugs {
		if d.NDC == ndc {
			return d, true
		}
	}
	return Drug{}, false
}

// Treatments returns the treatments for a disease matched by exact
// case-insensitive name, or an empty slice when the name is unknown.
func (c *Catalog) Treatments(name string) []string {
	d, ok := c.FindDiseaseByName(name)
	if !ok {
		return nil
	}
	return d.Treatments
}

// Precautions returns the precautions for a disease matched by exact
// case-insensitive name, or an empty slice when the name is unknown.
func (c *Catalog) Precautions(name string) []string {
	d, ok := c.FindDiseaseByName(name)
	if !ok {
		return nil
	}
	return d.Precautions
}

// DiagnosticTests returns a recommended test battery for a condition name.
// Unlike Treatments and Precautions this is a keyword bucket, not a catalog
// lookup: any condition phrase containing a lung, thyroid or heart keyword
// gets that specialty's panel, everything else a generic workup.
func (c *Catalog) DiagnosticTests(condition string) []string {
	cond := strings.ToLower(condition)

	if strings.Contains(cond, "lung") || strings.Contains(cond, "cancer") || strings.Contains(cond, "respiratory") {
		return []string{
			"Chest X-ray",
			"CT scan of chest",
			"PET-CT scan",
			"Bronchoscopy with biopsy",
			"Sputum cytology",
			"Pulmonary function tests",
			"Complete blood count (CBC)",
			"Liver function tests",
		}
	}

	if strings.Contains(cond, "thyroid") || strings.Contains(cond, "hyperthyroid") || strings.Contains(cond, "hypothyroid") {
		return []string{
			"TSH (Thyroid Stimulating Hormone)",
			"Free T4 (Thyroxine)",
			"Free T3 (Triiodothyronine)",
			"Thyroid ultrasound",
			"Thyroid antibody tests",
			"Fine needle aspiration biopsy",
			"Radioactive iodine uptake test",
			"Thyroglobulin test",
		}
	}

	if strings.Contains(cond, "heart") || strings.Contains(cond, "cardiac") || strings.Contains(cond, "cardiovascular") {
		return []string{
			"Electrocardiogram (ECG/EKG)",
			"Echocardiogram",
			"Stress test",
			"Cardiac catheterization",
			"Coronary angiography",
			"Holter monitor",
			"Chest X-ray",
			"Blood tests (troponin, CK-MB)",
			"Lipid profile",
		}
	}

	return []string{
		"Complete blood count (CBC)",
		"Comprehensive metabolic panel",
		"Urinalysis",
		"Chest X-ray",
		"Physical examination",
	}
}
