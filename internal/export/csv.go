package export

import (
	"encoding/csv"
	"io"

	"github.com/dmitrijs2005/paybook/internal/models"
)

func writeCSV(w io.Writer, records []models.EmployeeRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(row(r)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
