package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RishiRohanKalapala/medica/internal/medica/config"
	"github.com/RishiRohanKalapala/medica/internal/medica/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Run the health risk questionnaire scoring",
	Long: `Risk scores a fixed questionnaire (age, smoking, family history,
diabetes, blood pressure, cholesterol, weight and height) with a weighted
sum and reports an overall low/moderate/high level plus preventive
measures. Age can be given directly or derived from --birthdate.`,
	RunE: runRisk,
}

var (
	riskFlagAge       int
	riskFlagBirthdate string
	riskFlagSmoker    bool
	riskFlagFamily    bool
	riskFlagDiabetes  bool
	riskFlagBP        bool
	riskFlagChol      bool
	riskFlagWeight    float64
	riskFlagHeight    float64
	riskFlagFormat    string
)

func init() {
	riskCmd.Flags().IntVar(&riskFlagAge, "age", 0, "age in years")
	riskCmd.Flags().StringVar(&riskFlagBirthdate, "birthdate", "", "birthdate in any common format (alternative to --age)")
	riskCmd.Flags().BoolVar(&riskFlagSmoker, "smoker", false, "current smoker")
	riskCmd.Flags().BoolVar(&riskFlagFamily, "family-history", false, "family history of serious illness")
	riskCmd.Flags().BoolVar(&riskFlagDiabetes, "diabetes", false, "diagnosed diabetes")
	riskCmd.Flags().BoolVar(&riskFlagBP, "high-blood-pressure", false, "high blood pressure")
	riskCmd.Flags().BoolVar(&riskFlagChol, "high-cholesterol", false, "high cholesterol")
	riskCmd.Flags().Float64Var(&riskFlagWeight, "weight", 0, "weight in kilograms")
	riskCmd.Flags().Float64Var(&riskFlagHeight, "height", 0, "height in centimeters")
	riskCmd.Flags().StringVar(&riskFlagFormat, "format", "", "output format: json or text (default from config)")
}

func runRisk(cmd *cobra.Command, args []string) error {
	age := riskFlagAge
	if riskFlagBirthdate != "" {
		derived, err := risk.AgeFromBirthdate(riskFlagBirthdate, time.Now())
		if err != nil {
			return err
		}
		age = derived
	}

	assessment, err := risk.Assess(risk.Input{
		Age:               age,
		Smoker:            riskFlagSmoker,
		FamilyHistory:     riskFlagFamily,
		Diabetes:          riskFlagDiabetes,
		HighBloodPressure: riskFlagBP,
		HighCholesterol:   riskFlagChol,
		WeightKg:          riskFlagWeight,
		HeightCm:          riskFlagHeight,
	})
	if err != nil {
		return err
	}

	format := riskFlagFormat
	if format == "" {
		format = config.Get().Output.Format
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment)
	}

	fmt.Printf("Overall risk: %s (score %d)\n", assessment.OverallRisk, assessment.RiskScore)
	fmt.Printf("%s\n", assessment.RiskExplanation)
	if assessment.BMI > 0 {
		fmt.Printf("BMI: %.1f\n", assessment.BMI)
	}
	if len(assessment.RiskFactors) > 0 {
		fmt.Println("\nRisk factors:")
		for _, f := range assessment.RiskFactors {
			fmt.Printf("  - %s\n", f)
		}
	}
	fmt.Println("\nPreventive measures:")
	for _, m := range assessment.PreventiveMeasures {
		fmt.Printf("  - %s\n", m)
	}

	return nil
}
