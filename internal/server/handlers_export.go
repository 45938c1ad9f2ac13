package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/hr-screener/internal/export"
)

// handleExportSheets appends evaluated calls to the configured Google Sheet.
// Rows already present (by call ID) are skipped.
func (s *Server) handleExportSheets(w http.ResponseWriter, r *http.Request) {
	exporter, err := export.NewSheetsExporter(r.Context(),
		s.cfg.SheetsCredentialsFile, s.cfg.SpreadsheetID, s.logger)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	calls, err := s.db.ListEvaluatedCalls(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([][]any, 0, len(calls))
	for _, call := range calls {
		rows = append(rows, export.BuildRow(call))
	}

	appended, err := exporter.Append(r.Context(), rows)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]int{
		"total":    len(rows),
		"appended": appended,
	})
}

// handleExportXLSX streams evaluated calls as an XLSX workbook.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	calls, err := s.db.ListEvaluatedCalls(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([][]any, 0, len(calls))
	for _, call := range calls {
		rows = append(rows, export.BuildRow(call))
	}

	data, err := export.WriteXLSX(rows)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="screening-results.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}
