package export

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// pdfWidths are the table column widths in mm; they fill a landscape A4
// page inside the default margins.
var pdfWidths = []float64{55, 50, 35, 30, 30, 30, 35}

func writePDF(w io.Writer, records []models.EmployeeRecord) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range Header {
		pdf.CellFormat(pdfWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	total := decimal.Zero
	for _, r := range records {
		for i, v := range row(r) {
			align := "R"
			if i < 2 {
				align = "L"
				v = tr(v)
			}
			pdf.CellFormat(pdfWidths[i], 7, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		total = total.Add(r.NetSalary())
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d    Total net salary: %s", len(records), total.StringFixed(2)))

	return pdf.Output(w)
}
