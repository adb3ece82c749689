package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show medica version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("medica %s\n", Version)
	},
}
