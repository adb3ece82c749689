package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RishiRohanKalapala/medica/internal/medica/config"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

var (
	cfgFile string
	Version = "v0.1"
	rootCmd = &cobra.Command{
		Use:   "medica",
		Short: "medica - symptom and medication analysis engine",
		Long:  "medica: match free-text symptoms and drug mentions against curated disease and pharmacy catalogs to produce ranked diagnoses, medication suggestions and advice (educational demo scope).",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env first so env-based overrides reach viper
			_ = godotenv.Load()

			// load config
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
			} else {
				// default: ./config.yaml
				viper.SetConfigFile("config.yaml")
			}
			if err := viper.ReadInConfig(); err != nil {
				// Every command works on the built-in catalogs without a
				// config file, so a missing file is only worth a note.
				fmt.Fprintf(os.Stderr, "Warning: could not read config (%v). Using defaults and flags.\n", err)
			}
			if err := config.Load(viper.GetViper()); err != nil {
				return err
			}

			// init logger
			cfg := config.Get()
			if err := logger.InitLogger(cfg.Logging.Level); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	// add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
