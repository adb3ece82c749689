package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RishiRohanKalapala/medica/internal/medica/config"
	"github.com/RishiRohanKalapala/medica/internal/medica/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Scan medical report text for indicator findings",
	Long: `Report scans pasted report text (radiology impressions, lab summaries)
for indicator phrases and produces key findings, suspected conditions,
recommended follow-up tests and an urgency level on the 1-10 scale.`,
	RunE: runReport,
}

var (
	reportFlagText   string
	reportFlagInput  string
	reportFlagFormat string
)

func init() {
	reportCmd.Flags().StringVar(&reportFlagText, "text", "", "report text to scan")
	reportCmd.Flags().StringVar(&reportFlagInput, "input", "", "report text file (default stdin)")
	reportCmd.Flags().StringVar(&reportFlagFormat, "format", "", "output format: json or text (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	input, err := readInputText(reportFlagText, reportFlagInput)
	if err != nil {
		return err
	}

	analysis := report.Analyze(input)

	format := reportFlagFormat
	if format == "" {
		format = config.Get().Output.Format
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Printf("Urgency level: %d/10\n", analysis.UrgencyLevel)
	if len(analysis.KeyFindings) == 0 {
		fmt.Println("No notable indicators found.")
		return nil
	}
	fmt.Println("\nKey findings:")
	for _, f := range analysis.KeyFindings {
		fmt.Printf("  - %s\n", f)
	}
	fmt.Println("\nSuspected conditions:")
	for _, c := range analysis.SuspectedConditions {
		fmt.Printf("  - %s\n", c)
	}
	fmt.Println("\nRecommended tests:")
	for _, t := range analysis.RecommendedTests {
		fmt.Printf("  - %s\n", t)
	}

	return nil
}
