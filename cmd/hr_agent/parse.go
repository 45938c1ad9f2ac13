package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-screener/internal/observability"
	"github.com/jonathan/hr-screener/internal/parsing"
	"github.com/jonathan/hr-screener/internal/pipeline"
	"github.com/jonathan/hr-screener/internal/rules"
)

var (
	parseRulesFile string
	parseAsJSON    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Extract candidate fields from a resume without storing anything",
	Long:  "Extract name, email, phone and detected role from a resume file (PDF, DOCX, HTML or plain text) and print the result.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseRulesFile, "rules", "", "Path to hiring config with role keywords")
	parseCmd.Flags().BoolVar(&parseAsJSON, "json", false, "Print the profile as JSON")
	rootCmd.AddCommand(parseCmd)
}

// loadKeywords loads role keywords from a hiring config file, falling back to
// the built-in mappings when no file is given.
func loadKeywords(path string) (*parsing.RoleKeywordMap, error) {
	if path == "" {
		return parsing.DefaultRoleKeywords(), nil
	}
	cfg, err := rules.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.KeywordMap(), nil
}

func runParse(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	keywords, err := loadKeywords(parseRulesFile)
	if err != nil {
		return err
	}

	imp := pipeline.NewImporter(nil, keywords, nil)
	res := imp.ImportOne(context.Background(), pipeline.Document{
		Filename: filepath.Base(path),
		Data:     data,
	})
	if res.Err != nil {
		return res.Err
	}

	if parseAsJSON {
		out, err := json.MarshalIndent(res.Profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintProfile(&res.Profile)
	return nil
}
