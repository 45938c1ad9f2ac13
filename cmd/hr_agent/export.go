package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-screener/internal/export"
	"github.com/jonathan/hr-screener/internal/logger"
)

var (
	exportOutFile         string
	exportSpreadsheetID   string
	exportCredentialsFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export evaluated screening calls",
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Write evaluated calls to an XLSX workbook",
	RunE:  runExportXLSX,
}

var exportSheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Append evaluated calls to a Google Sheet",
	RunE:  runExportSheets,
}

func init() {
	exportXLSXCmd.Flags().StringVarP(&exportOutFile, "out", "o", "screening-results.xlsx", "Output file path")
	exportSheetsCmd.Flags().StringVar(&exportSpreadsheetID, "spreadsheet", "", "Spreadsheet ID (defaults to SPREADSHEET_ID)")
	exportSheetsCmd.Flags().StringVar(&exportCredentialsFile, "credentials", "", "Service account file (defaults to SHEETS_CREDENTIALS_FILE)")
	exportCmd.AddCommand(exportXLSXCmd)
	exportCmd.AddCommand(exportSheetsCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadExportRows reads all evaluated calls as spreadsheet rows.
func loadExportRows(ctx context.Context) ([][]any, error) {
	database, err := connectDB(ctx)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	calls, err := database.ListEvaluatedCalls(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(calls))
	for _, call := range calls {
		rows = append(rows, export.BuildRow(call))
	}
	return rows, nil
}

func runExportXLSX(_ *cobra.Command, _ []string) error {
	rows, err := loadExportRows(context.Background())
	if err != nil {
		return err
	}

	data, err := export.WriteXLSX(rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOutFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), exportOutFile)
	return nil
}

func runExportSheets(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	spreadsheetID := exportSpreadsheetID
	if spreadsheetID == "" {
		spreadsheetID = os.Getenv("SPREADSHEET_ID")
	}
	credentials := exportCredentialsFile
	if credentials == "" {
		credentials = os.Getenv("SHEETS_CREDENTIALS_FILE")
	}

	log, err := logger.New(flagLogJSON, flagDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	exporter, err := export.NewSheetsExporter(ctx, credentials, spreadsheetID, log)
	if err != nil {
		return err
	}

	rows, err := loadExportRows(ctx)
	if err != nil {
		return err
	}

	appended, err := exporter.Append(ctx, rows)
	if err != nil {
		return err
	}

	fmt.Printf("Appended %d rows (%d already present)\n", appended, len(rows)-appended)
	return nil
}
