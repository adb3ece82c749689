package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RishiRohanKalapala/medica/internal/medica/analyze"
	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
	"github.com/RishiRohanKalapala/medica/internal/medica/config"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze free-text symptoms and medication mentions",
	Long: `Analyze matches free text against the disease and drug catalogs and
produces a structured result:
- Ranked diagnoses with confidence scores (catalog matches plus keyword screening)
- Medication suggestions from the condition rule list
- Composed clinical advice text

Input: --text, or a file via --input (stdin when neither is given)
Output: JSON or rendered text on stdout or --output`,
	RunE: runAnalyze,
}

var (
	analyzeFlagText   string
	analyzeFlagInput  string
	analyzeFlagOutput string
	analyzeFlagFormat string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlagText, "text", "", "input text to analyze")
	analyzeCmd.Flags().StringVar(&analyzeFlagInput, "input", "", "input text file (default stdin)")
	analyzeCmd.Flags().StringVar(&analyzeFlagOutput, "output", "", "output file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeFlagFormat, "format", "", "output format: json or text (default from config)")
}

// newAnalyzer builds the analyzer shared by the analyze and plan commands
// from the loaded config.
func newAnalyzer() (*analyze.Analyzer, error) {
	cfg := config.Get()

	cat, err := catalog.Load(cfg.Catalogs.DiseasesFile, cfg.Catalogs.DrugsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	return analyze.New(cat, analyze.Options{
		MaxDiagnoses:    cfg.Analysis.MaxDiagnoses,
		ConfidenceBoost: cfg.Analysis.ConfidenceBoost,
		ConfidenceCap:   cfg.Analysis.ConfidenceCap,
	}), nil
}

func readInputText(text, inputPath string) (string, error) {
	if text != "" {
		return text, nil
	}
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	input, err := readInputText(analyzeFlagText, analyzeFlagInput)
	if err != nil {
		return err
	}

	result := analyzer.Analyze(input)

	out, err := openOutput(analyzeFlagOutput)
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	format := analyzeFlagFormat
	if format == "" {
		format = config.Get().Output.Format
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	case "text", "":
		for i, d := range result.Diagnoses {
			fmt.Fprintf(out, "%d. %s (%.0f%%)\n   %s\n", i+1, d.Condition, d.Probability*100, d.Description)
		}
		for _, m := range result.Medications {
			fmt.Fprintf(out, "Rx %s %s - %s\n", m.Name, m.Dosage, m.Frequency)
		}
		fmt.Fprintf(out, "\n%s\n", result.Advice)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	logger.L().Infow("Analyze command completed",
		"diagnoses", len(result.Diagnoses),
		"medications", len(result.Medications),
		"duration", time.Since(startTime))

	return nil
}
