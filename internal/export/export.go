// Package export renders the salary report to XLSX, CSV or PDF files.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/paybook/internal/filex"
	"github.com/dmitrijs2005/paybook/internal/models"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

var Formats = []Format{FormatXLSX, FormatCSV, FormatPDF}

// ParseFormat accepts a format name in any case; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatXLSX, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Header is the column row shared by every format.
var Header = []string{"Name", "Position", "Base salary", "Bonus", "Insurance", "Tax", "Net salary"}

// columnWidths are the XLSX column widths, in characters.
var columnWidths = []float64{10, 15, 12, 10, 10, 10, 12}

// FileName returns the dated report name, e.g. salary-report_2024-03-31.xlsx.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("salary-report_%s.%s", now.Format("2006-01-02"), f)
}

// Write renders records to w, one row per record.
func Write(w io.Writer, f Format, records []models.EmployeeRecord) error {
	switch f {
	case FormatXLSX:
		return writeXLSX(w, records)
	case FormatCSV:
		return writeCSV(w, records)
	case FormatPDF:
		return writePDF(w, records)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// ToFile writes the report into dir, creating it when missing, and returns
// the path of the new file.
func ToFile(dir string, f Format, records []models.EmployeeRecord, now time.Time) (string, error) {
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(f, now))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(file, f, records); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write %s export: %w", f, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	return path, nil
}

// row formats the text cells of r with two decimals.
func row(r models.EmployeeRecord) []string {
	return []string{
		r.Name,
		r.Position,
		r.BaseSalary.StringFixed(2),
		r.Bonus.StringFixed(2),
		r.Insurance.StringFixed(2),
		r.Tax.StringFixed(2),
		r.NetSalary().StringFixed(2),
	}
}
