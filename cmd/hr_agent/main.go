// Package main provides the entry point for the HR screening agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hr_agent",
	Short: "HR candidate screening agent",
	Long:  "HR screening agent that extracts candidate fields from resumes, dispatches automated screening calls and qualifies candidates against role-scoped hiring rules.",
}

var (
	flagDebug   bool
	flagLogJSON bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Emit JSON logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
