// Package export builds the admin spreadsheet with all users' counts.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sneezelab/SneezeBot/app/models"
)

const (
	totalsSheet  = "Totals"
	detailsSheet = "Details"
)

// Workbook builds the two-sheet export: per-user totals with a grand-total
// row, and one row per (user, day, count) record ordered by user then day.
func Workbook(totals []models.UserTotal, details []models.SneezeRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of leaving an empty "Sheet1" behind.
	if err := f.SetSheetName("Sheet1", totalsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(detailsSheet); err != nil {
		return nil, err
	}

	if err := writeTotals(f, totals); err != nil {
		return nil, err
	}
	if err := writeDetails(f, details); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}

func writeTotals(f *excelize.File, totals []models.UserTotal) error {
	if err := f.SetSheetRow(totalsSheet, "A1", &[]interface{}{"User ID", "Total"}); err != nil {
		return err
	}

	grand := 0
	row := 2
	for _, t := range totals {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(totalsSheet, cell, &[]interface{}{t.UserID, t.Total}); err != nil {
			return err
		}
		grand += t.Total
		row++
	}

	cell := fmt.Sprintf("A%d", row)
	return f.SetSheetRow(totalsSheet, cell, &[]interface{}{"Total", grand})
}

func writeDetails(f *excelize.File, details []models.SneezeRecord) error {
	if err := f.SetSheetRow(detailsSheet, "A1", &[]interface{}{"User ID", "Date", "Count"}); err != nil {
		return err
	}

	for i, rec := range details {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(detailsSheet, cell, &[]interface{}{rec.UserID, rec.Day, rec.Count}); err != nil {
			return err
		}
	}
	return nil
}
