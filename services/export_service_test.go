package services

import (
	"testing"
	"time"

	"brickscapital/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportEnquiries(t *testing.T) {
	enquiries := []types.Enquiry{
		{ID: "a1", Name: "Ana", Email: "ana@example.com", Fund: "both", Message: "Hola", Language: "es", CreatedAt: time.Date(2025, 2, 3, 10, 30, 0, 0, time.UTC)},
		{ID: "b2", Name: "Ben", Email: "ben@example.com", Message: "Hi", Language: "en", CreatedAt: time.Date(2025, 2, 4, 9, 0, 0, 0, time.UTC)},
	}

	buf, err := ExportEnquiries(enquiries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(enquirySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, enquiryColumns, rows[0])
	assert.Equal(t, "a1", rows[1][0])
	assert.Equal(t, "2025-02-03 10:30:00", rows[1][1])
	assert.Equal(t, "Ana", rows[1][2])
	assert.Equal(t, "both", rows[1][5])
	assert.Equal(t, "en", rows[2][9])
}

func TestExportEnquiriesEmpty(t *testing.T) {
	buf, err := ExportEnquiries(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(enquirySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
