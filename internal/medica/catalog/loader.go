package catalog

import (
	"fmt"
	"os"

	"github.com/RishiRohanKalapala/medica/internal/medica/config"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Load builds a catalog from optional JSON override files. An empty path
// means "use the built-in table" for that side, so Load("", "") is
// equivalent to Default. Files are validated via the config package before
// the catalog indexes are built.
func Load(diseasesPath, drugsPath string) (*Catalog, error) {
	diseases := builtinDiseases
	drugs := builtinDrugs

	if diseasesPath != "" {
		logger.L().Debugw("Loading disease catalog", "path", diseasesPath)

		file, err := os.Open(diseasesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open disease catalog %s: %w", diseasesPath, err)
		}
		records, err := config.ValidateDiseaseCatalog(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to validate disease catalog: %w", err)
		}

		diseases = make([]Disease, 0, len(records))
		for _, rec := range records {
			diseases = append(diseases, Disease{
				Name:            rec.Disease,
				Symptoms:        rec.Symptoms,
				Description:     rec.Description,
				Severity:        rec.Severity,
				Precautions:     rec.Precautions,
				Treatments:      rec.Treatments,
				RiskFactors:     rec.RiskFactors,
				DiagnosticTests: rec.DiagnosticTests,
			})
		}
		logger.L().Infow("Disease catalog loaded", "path", diseasesPath, "records", len(diseases))
	}

	if drugsPath != "" {
		logger.L().Debugw("Loading drug catalog", "path", drugsPath)

		file, err := os.Open(drugsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open drug catalog %s: %w", drugsPath, err)
		}
		records, err := config.ValidateDrugCatalog(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to validate drug catalog: %w", err)
		}

		drugs = make([]Drug, 0, len(records))
		for _, rec := range records {
			drugs = append(drugs, Drug{
				BrandName:     rec.BrandName,
				GenericName:   rec.GenericName,
				NDC:           rec.NDC,
				Dosage:        rec.Dosage,
				PurchasePrice: rec.PurchasePrice,
				SellPrice:     rec.SellPrice,
				Indication:    rec.Indication,
				Category:      rec.Category,
			})
		}
		logger.L().Infow("Drug catalog loaded", "path", drugsPath, "records", len(drugs))
	}

	return New(diseases, drugs), nil
}
