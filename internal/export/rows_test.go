package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/hr-screener/internal/db"
)

func sampleCall() db.EvaluatedCall {
	return db.EvaluatedCall{
		CallRecord: db.CallRecord{
			ID:              uuid.MustParse("11111111-2222-3333-4444-555555555555"),
			Outcome:         "contacted",
			DurationSeconds: 240,
			Decision:        "reject",
			Reasons:         []string{"stated budget 45000 exceeds ceiling 40000", "missing topic: laravel"},
			CreatedAt:       time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		},
		CandidateName:  "Kartik Sharma",
		CandidatePhone: "9876543210",
		JobTitle:       "laravel-developer",
	}
}

func TestBuildRow(t *testing.T) {
	row := BuildRow(sampleCall())

	require.Len(t, row, len(Headers))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", row[0])
	assert.Equal(t, "Kartik Sharma", row[1])
	assert.Equal(t, "reject", row[5])
	assert.Equal(t, "stated budget 45000 exceeds ceiling 40000; missing topic: laravel", row[6])
	assert.Equal(t, 240, row[7])
	assert.Equal(t, "2026-08-01 10:30:00", row[8])
}

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX([][]any{BuildRow(sampleCall())})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Call ID", header)

	name, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Kartik Sharma", name)
}

func TestWriteXLSX_Empty(t *testing.T) {
	data, err := WriteXLSX(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
