package ingest

import (
	"encoding/csv"
	"os"

	"cleantab/domain/table"
	"cleantab/internal/errors"
)

// WriteCSV writes a table to a CSV file, rendering missing cells as empty
// strings.
func WriteCSV(t *table.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.IngestError("failed to create output file", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.ColumnNames()); err != nil {
		return errors.IngestError("failed to write header", err)
	}
	for pos := 0; pos < t.NumRows(); pos++ {
		row := t.Row(pos)
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = v.String()
		}
		if err := w.Write(record); err != nil {
			return errors.IngestError("failed to write row", err)
		}
	}
	w.Flush()
	return w.Error()
}
