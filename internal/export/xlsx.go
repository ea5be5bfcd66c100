package export

import (
	"io"

	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Salaries"

func writeXLSX(w io.Writer, records []models.EmployeeRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			r.Name,
			r.Position,
			r.BaseSalary.Round(2).InexactFloat64(),
			r.Bonus.Round(2).InexactFloat64(),
			r.Insurance.Round(2).InexactFloat64(),
			r.Tax.Round(2).InexactFloat64(),
			r.NetSalary().Round(2).InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}
