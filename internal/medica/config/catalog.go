package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DiseaseRecord is the JSON shape of one disease catalog entry.
type DiseaseRecord struct {
	Disease         string   `json:"disease"`
	Symptoms        []string `json:"symptoms"`
	Description     string   `json:"description"`
	Severity        int      `json:"severity"`
	Precautions     []string `json:"precautions"`
	Treatments      []string `json:"treatments"`
	RiskFactors     []string `json:"risk_factors"`
	DiagnosticTests []string `json:"diagnostic_tests"`
}

// DrugRecord is the JSON shape of one drug catalog entry.
// Pricing is illustrative: sell_price is NOT required to exceed purchase_price.
type DrugRecord struct {
	BrandName     string  `json:"brand_name"`
	GenericName   string  `json:"generic_name"`
	NDC           int     `json:"ndc"`
	Dosage        float64 `json:"dosage"`
	PurchasePrice float64 `json:"purchase_price"`
	SellPrice     float64 `json:"sell_price"`
	Indication    string  `json:"indication"`
	Category      string  `json:"category"`
}

// ValidateDiseaseCatalog decodes and validates a disease catalog JSON document.
// Invariants checked per record: unique non-empty name, non-empty symptom list,
// severity within 1..10. Symptom phrases are normalized to lowercase since all
// matching downstream is case-insensitive substring work.
func ValidateDiseaseCatalog(r io.Reader) ([]DiseaseRecord, error) {
	var records []DiseaseRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode disease catalog JSON: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("disease catalog must not be empty")
	}

	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.Disease == "" {
			return nil, fmt.Errorf("disease record %d missing name", i)
		}
		key := strings.ToLower(rec.Disease)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate disease name %q", rec.Disease)
		}
		seen[key] = struct{}{}

		if len(rec.Symptoms) == 0 {
			return nil, fmt.Errorf("disease %q has no symptoms", rec.Disease)
		}
		for j, s := range rec.Symptoms {
			if strings.TrimSpace(s) == "" {
				return nil, fmt.Errorf("disease %q symptom %d is blank", rec.Disease, j)
			}
			records[i].Symptoms[j] = strings.ToLower(strings.TrimSpace(s))
		}

		if rec.Severity < 1 || rec.Severity > 10 {
			return nil, fmt.Errorf("disease %q severity %d out of range 1..10", rec.Disease, rec.Severity)
		}
	}

	return records, nil
}

// ValidateDrugCatalog decodes and validates a drug catalog JSON document.
func ValidateDrugCatalog(r io.Reader) ([]DrugRecord, error) {
	var records []DrugRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode drug catalog JSON: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("drug catalog must not be empty")
	}

	seenNDC := make(map[int]struct{}, len(records))
	for i, rec := range records {
		if rec.BrandName == "" {
			return nil, fmt.Errorf("drug record %d missing brand name", i)
		}
		if rec.GenericName == "" {
			return nil, fmt.Errorf("drug %q missing generic name", rec.BrandName)
		}
		if rec.NDC != 0 {
			if _, dup := seenNDC[rec.NDC]; dup {
				return nil, fmt.Errorf("duplicate NDC %d for drug %q", rec.NDC, rec.BrandName)
			}
			seenNDC[rec.NDC] = struct{}{}
		}
		if rec.PurchasePrice < 0 || rec.SellPrice < 0 {
			return nil, fmt.Errorf("drug %q has negative price", rec.BrandName)
		}
	}

	return records, nil
}
