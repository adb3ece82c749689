package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RishiRohanKalapala/medica/internal/medica/config"
)

var diseasesFile string
var drugsFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate disease and drug catalog files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate disease and drug catalog JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if diseasesFile == "" || drugsFile == "" {
			return fmt.Errorf("--diseases and --drugs are required")
		}

		df, err := os.Open(diseasesFile)
		if err != nil {
			return fmt.Errorf("open diseases file: %w", err)
		}
		defer df.Close()

		diseases, err := config.ValidateDiseaseCatalog(df)
		if err != nil {
			return fmt.Errorf("disease catalog validation failed: %w", err)
		}

		rf, err := os.Open(drugsFile)
		if err != nil {
			return fmt.Errorf("open drugs file: %w", err)
		}
		defer rf.Close()

		drugs, err := config.ValidateDrugCatalog(rf)
		if err != nil {
			return fmt.Errorf("drug catalog validation failed: %w", err)
		}

		fmt.Fprintf(os.Stdout, "disease and drug catalogs validated successfully\n")
		fmt.Fprintf(os.Stdout, "diseases: %d, drugs: %d\n", len(diseases), len(drugs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)

	catalogValidateCmd.Flags().StringVar(&diseasesFile, "diseases", "", "Path to disease catalog JSON file")
	catalogValidateCmd.Flags().StringVar(&drugsFile, "drugs", "", "Path to drug catalog JSON file")

	_ = catalogValidateCmd.MarkFlagRequired("diseases")
	_ = catalogValidateCmd.MarkFlagRequired("drugs")
}
