package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/logger"
	"github.com/jonathan/hr-screener/internal/observability"
	"github.com/jonathan/hr-screener/internal/pipeline"
)

var (
	importDir       string
	importRulesFile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a directory of resumes into the candidate database",
	Long:  "Extract candidate fields from every resume in a directory and store them. Duplicate phone numbers and unreadable files are reported but never abort the batch.",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importDir, "dir", "d", "", "Directory of resume files (required)")
	importCmd.Flags().StringVar(&importRulesFile, "rules", "", "Path to hiring config with role keywords")
	_ = importCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	entries, err := os.ReadDir(importDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var docs []pipeline.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(importDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", entry.Name(), err)
			continue
		}
		docs = append(docs, pipeline.Document{Filename: entry.Name(), Data: data})
	}
	if len(docs) == 0 {
		return fmt.Errorf("no files found in %s", importDir)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	keywords, err := loadKeywords(importRulesFile)
	if err != nil {
		return err
	}

	log, err := logger.New(flagLogJSON, flagDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	imp := pipeline.NewImporter(database, keywords, log)
	result := imp.ImportBatch(ctx, docs)

	observability.NewPrinter(os.Stdout).PrintBatchResult(&result)
	return nil
}
