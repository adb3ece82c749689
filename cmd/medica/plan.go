package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RishiRohanKalapala/medica/internal/medica/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a treatment plan from symptom text",
	Long: `Plan runs the analysis engine over the input text and expands the
top-ranked diagnosis into a phased treatment plan: timeline, specialist
roster, follow-up schedule and medication monitoring. The plan is rendered
as plain text, or as a PDF with --pdf.`,
	RunE: runPlan,
}

var (
	planFlagText   string
	planFlagInput  string
	planFlagOutput string
	planFlagPDF    bool
)

func init() {
	planCmd.Flags().StringVar(&planFlagText, "text", "", "input text to analyze")
	planCmd.Flags().StringVar(&planFlagInput, "input", "", "input text file (default stdin)")
	planCmd.Flags().StringVar(&planFlagOutput, "output", "", "output file (default stdout)")
	planCmd.Flags().BoolVar(&planFlagPDF, "pdf", false, "render the plan as a PDF document")
}

func runPlan(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	input, err := readInputText(planFlagText, planFlagInput)
	if err != nil {
		return err
	}

	result := analyzer.Analyze(input)

	p, err := plan.Build(result.Diagnoses, result.Medications, time.Now())
	if err != nil {
		return err
	}

	out, err := openOutput(planFlagOutput)
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	if planFlagPDF {
		if planFlagOutput == "" {
			return fmt.Errorf("--pdf requires --output")
		}
		if err := plan.WritePDF(out, p); err != nil {
			return fmt.Errorf("render plan PDF: %w", err)
		}
		return nil
	}

	if err := plan.WriteText(out, p); err != nil {
		return fmt.Errorf("render plan text: %w", err)
	}
	return nil
}
