// Package casegen produces synthetic patient narratives for exercising the
// analysis engine: free-text symptom descriptions sampled from the catalog
// vocabulary, with optional medication mentions. Output is NDJSON so cases
// can be piped straight into `medica analyze`.
package casegen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"

	"github.com/RishiRohanKalapala/medica/internal/medica/catalog"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Config describes one generation run, parsed from YAML.
type Config struct {
	Seed            uint64  `yaml:"seed"`
	Cases           int     `yaml:"cases"`
	Output          string  `yaml:"output"` // empty means stdout
	MaxSymptoms     int     `yaml:"maxSymptoms"`
	DrugMentionRate float64 `yaml:"drugMentionRate"`
}

// Case is one generated narrative.
type Case struct {
	CaseID    string `json:"case_id"`
	Narrative string `json:"narrative"`
}

// ReadConfig parses the YAML run config and applies defaults.
func ReadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read casegen config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse casegen config: %w", err)
	}
	if cfg.Cases <= 0 {
		cfg.Cases = 10
	}
	if cfg.MaxSymptoms <= 0 {
		cfg.MaxSymptoms = 4
	}
	if cfg.DrugMentionRate <= 0 {
		cfg.DrugMentionRate = 0.3
	}
	return cfg, nil
}

var openers = []string{
	"For the past %d weeks I have been experiencing %s.",
	"I am a %d year old patient and lately I've noticed %s.",
	"My main complaints are %s, which started about %d days ago.",
	"Over the last %d days I've been dealing with %s.",
}

// Generate produces cases deterministically for a given seed. The narrative
// vocabulary comes from the catalog so generated cases always contain
// extractable terms.
func Generate(cfg Config, cat *catalog.Catalog) []Case {
	gofakeit.Seed(cfg.Seed)

	symptoms := cat.SymptomPhrases()
	drugs := cat.Drugs()

	cases := make([]Case, 0, cfg.Cases)
	for i := 0; i < cfg.Cases; i++ {
		count := gofakeit.Number(1, cfg.MaxSymptoms)
		// a trimmed override catalog may hold fewer distinct phrases
		// than maxSymptoms asks for
		if count > len(symptoms) {
			count = len(symptoms)
		}
		picked := make([]string, 0, count)
		seen := make(map[string]struct{}, count)
		for len(picked) < count {
			s := symptoms[gofakeit.Number(0, len(symptoms)-1)]
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			picked = append(picked, s)
		}

		var narrative string
		switch gofakeit.Number(0, len(openers)-1) {
		case 0:
			narrative = fmt.Sprintf(openers[0], gofakeit.Number(1, 12), joinSymptoms(picked))
		case 1:
			narrative = fmt.Sprintf(openers[1], gofakeit.Number(18, 90), joinSymptoms(picked))
		case 2:
			narrative = fmt.Sprintf(openers[2], joinSymptoms(picked), gofakeit.Number(2, 60))
		default:
			narrative = fmt.Sprintf(openers[3], gofakeit.Number(2, 60), joinSymptoms(picked))
		}

		if gofakeit.Float64Range(0, 1) < cfg.DrugMentionRate && len(drugs) > 0 {
			drug := drugs[gofakeit.Number(0, len(drugs)-1)]
			narrative += fmt.Sprintf(" I am currently taking %s %.0fmg.", drug.BrandName, drug.Dosage)
		}

		cases = append(cases, Case{
			CaseID:    gofakeit.UUID(),
			Narrative: narrative,
		})
	}
	return cases
}

func joinSymptoms(symptoms []string) string {
	if len(symptoms) == 1 {
		return symptoms[0]
	}
	return strings.Join(symptoms[:len(symptoms)-1], ", ") + " and " + symptoms[len(symptoms)-1]
}

// WriteNDJSON writes cases one JSON object per line.
func WriteNDJSON(w io.Writer, cases []Case) error {
	for _, c := range cases {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal case %s: %w", c.CaseID, err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("write case %s: %w", c.CaseID, err)
		}
	}
	return nil
}

// Run executes a full generation: read config, generate against the built-in
// catalog, write NDJSON to the configured output.
func Run(configPath string) error {
	cfg, err := ReadConfig(configPath)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	cases := Generate(cfg, catalog.Default())
	if err := WriteNDJSON(out, cases); err != nil {
		return err
	}

	logger.L().Infow("Case generation completed",
		"cases", len(cases),
		"output", cfg.Output)
	return nil
}
