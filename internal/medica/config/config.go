package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type LoggingCfg struct {
	Level string `mapstructure:"level"`
}

// CatalogsCfg points at optional JSON catalog overrides. When a path is
// empty the built-in dataset is used.
type CatalogsCfg struct {
	DiseasesFile string `mapstructure:"diseases_file"`
	DrugsFile    string `mapstructure:"drugs_file"`
}

// AnalysisCfg tunes the composer: four catalog diagnoses by default, with a
// +0.10 confidence boost capped at 0.95.
type AnalysisCfg struct {
	MaxDiagnoses    int     `mapstructure:"max_diagnoses"`
	ConfidenceBoost float64 `mapstructure:"confidence_boost"`
	ConfidenceCap   float64 `mapstructure:"confidence_cap"`
}

type OutputCfg struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

type Config struct {
	Version  string      `mapstructure:"version"`
	Catalogs CatalogsCfg `mapstructure:"catalogs"`
	Analysis AnalysisCfg `mapstructure:"analysis"`
	Output   OutputCfg   `mapstructure:"output"`
	Logging  LoggingCfg  `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("version", "0.1")
	v.SetDefault("analysis.max_diagnoses", 4)
	v.SetDefault("analysis.confidence_boost", 0.10)
	v.SetDefault("analysis.confidence_cap", 0.95)
	v.SetDefault("output.format", "text")
	v.SetDefault("logging.level", "info")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
