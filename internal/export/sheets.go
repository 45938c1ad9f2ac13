package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsExporter appends screening results to a Google Sheet, skipping rows
// whose call ID already appears in column A.
type SheetsExporter struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheetsExporter builds an exporter authenticated with a service-account
// credentials file.
func NewSheetsExporter(ctx context.Context, credentialsFile, spreadsheetID string, logger *zap.Logger) (*SheetsExporter, error) {
	if credentialsFile == "" || spreadsheetID == "" {
		return nil, fmt.Errorf("sheets export requires credentials file and spreadsheet ID")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &SheetsExporter{svc: svc, spreadsheetID: spreadsheetID, logger: logger}, nil
}

// existingIDs reads column A so already-exported calls can be skipped.
func (e *SheetsExporter) existingIDs(ctx context.Context) (map[string]bool, error) {
	resp, err := e.svc.Spreadsheets.Values.Get(e.spreadsheetID, "A:A").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read existing rows: %w", err)
	}

	ids := make(map[string]bool, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) > 0 {
			if id, ok := row[0].(string); ok {
				ids[id] = true
			}
		}
	}
	return ids, nil
}

// Append writes the header on an empty sheet, then appends every row whose
// call ID is not already present. Returns the number of rows appended.
func (e *SheetsExporter) Append(ctx context.Context, rows [][]any) (int, error) {
	existing, err := e.existingIDs(ctx)
	if err != nil {
		return 0, err
	}

	var pending [][]any
	if len(existing) == 0 {
		header := make([]any, len(Headers))
		for i, h := range Headers {
			header[i] = h
		}
		pending = append(pending, header)
	}

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, _ := row[0].(string)
		if id != "" && existing[id] {
			continue
		}
		pending = append(pending, row)
	}

	if len(pending) == 0 {
		e.logger.Info("sheets export up to date", zap.Int("rows", len(rows)))
		return 0, nil
	}

	_, err = e.svc.Spreadsheets.Values.
		Append(e.spreadsheetID, "A:A", &sheets.ValueRange{Values: pending}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to append rows: %w", err)
	}

	e.logger.Info("appended rows to sheet", zap.Int("appended", len(pending)))
	return len(pending), nil
}
