package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"cleantab/domain/table"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestDataReaderCSV(t *testing.T) {
	path := writeTempCSV(t, "amount,label\n1,a\n2,b\nNA,a\n4,c\n")

	tbl, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if tbl.NumRows() != 4 || tbl.NumCols() != 2 {
		t.Fatalf("shape = %d rows x %d cols, want 4x2", tbl.NumRows(), tbl.NumCols())
	}

	amount, err := tbl.Column("amount")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if amount.Kind != table.KindNumeric {
		t.Errorf("amount kind = %s, want numeric", amount.Kind)
	}
	if !amount.Values[2].IsMissing {
		t.Error("NA cell should be missing")
	}

	label, err := tbl.Column("label")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if label.Kind != table.KindText {
		t.Errorf("label kind = %s, want text", label.Kind)
	}
}

func TestDataReaderRaggedRowsArePadded(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n3\n")

	tbl, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	col, err := tbl.Column("b")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if !col.Values[1].IsMissing {
		t.Error("padded cell should be missing")
	}
}

func TestDataReaderRejectsHeaderOnlyFiles(t *testing.T) {
	path := writeTempCSV(t, "a,b\n")
	if _, err := NewDataReader(path).Read(); err == nil {
		t.Fatal("expected an error for a header-only file")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	src := writeTempCSV(t, "amount,label\n1,a\n,b\n")
	tbl, err := NewDataReader(src).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(tbl, out); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	again, err := NewDataReader(out).Read()
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if again.NumRows() != tbl.NumRows() || again.NumCols() != tbl.NumCols() {
		t.Errorf("shape changed across round trip: %dx%d -> %dx%d",
			tbl.NumRows(), tbl.NumCols(), again.NumRows(), again.NumCols())
	}
	col, err := again.Column("amount")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if !col.Values[1].IsMissing {
		t.Error("missing cell lost across round trip")
	}
}
