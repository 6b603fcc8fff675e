package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"cleantab/domain/table"
	"cleantab/internal/errors"
)

// DataReader reads CSV and Excel files into typed tables
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
	coercer  *ColumnCoercer
}

// NewDataReader creates a reader for the given file, picking the format
// from the extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xlsm" {
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		coercer:  NewColumnCoercer(DefaultCoercionConfig()),
	}
}

// Name identifies the resource
func (r *DataReader) Name() string {
	return r.filePath
}

// Read ingests the file into a table
func (r *DataReader) Read() (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("file %s", r.filePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	return r.buildTable(rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IngestError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are padded with missing cells
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.IngestError("failed to read CSV file", err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IngestError("failed to open Excel file", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.IngestError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	return rows, nil
}

// buildTable turns raw string rows (header first) into a typed table
func (r *DataReader) buildTable(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, errors.IngestError(
			fmt.Sprintf("%s needs a header row and at least one data row", r.filePath), nil)
	}

	headers := rows[0]
	data := rows[1:]

	cols := make([]table.Column, 0, len(headers))
	for i, name := range headers {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		raw := make([]string, len(data))
		for j, row := range data {
			if i < len(row) {
				raw[j] = row[i]
			}
		}
		cols = append(cols, r.coercer.CoerceColumn(name, raw))
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, errors.IngestError("ingested data does not form a valid table", err)
	}
	return t, nil
}
