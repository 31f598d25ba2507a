package services

import (
	"bytes"
	"fmt"

	"brickscapital/types"

	"github.com/xuri/excelize/v2"
)

const enquirySheet = "Enquiries"

var enquiryColumns = []string{"ID", "Received", "Name", "Email", "Phone", "Fund", "Investment range", "Subject", "Message", "Language"}

// ExportEnquiries writes enquiries to an XLSX workbook with one row each.
func ExportEnquiries(enquiries []types.Enquiry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", enquirySheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(enquiryColumns))
	for i, c := range enquiryColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(enquirySheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, e := range enquiries {
		row := []interface{}{
			e.ID,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Name,
			e.Email,
			e.Phone,
			e.Fund,
			e.InvestmentRange,
			e.Subject,
			e.Message,
			e.Language,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(enquirySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing enquiry %s: %w", e.ID, err)
		}
	}

	return f.WriteToBuffer()
}
