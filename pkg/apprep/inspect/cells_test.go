package inspect

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellFormula(sheetName, "C2", "SUM(A2:B2)")
	f.SetCellValue(sheetName, "A4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, 3)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	// Row 3 is empty and skipped.
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}
	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"])
	}
	if got := rows[1].Formulas["3"]; got != "SUM(A2:B2)" {
		t.Errorf("Expected formula SUM(A2:B2), got %q", got)
	}
	if rows[0].Formulas != nil {
		t.Errorf("Expected no formulas on row 1, got %v", rows[0].Formulas)
	}
	if rows[2].R != 4 {
		t.Errorf("Expected row 4, got %d", rows[2].R)
	}
}

func TestExtractCellsWithoutFormulaProbe(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellFormula("Sheet1", "B1", "A1*2")

	rows, err := ExtractCells(f, "Sheet1", 0)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Formulas != nil {
		t.Errorf("Expected formulas not to be probed, got %v", rows[0].Formulas)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"B+", "B+"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), expected %v (%T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "x"},
		{"", "y", "", "z"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 1 || maxRow != 2 || minCol != 1 || maxCol != 3 {
		t.Errorf("findDataBounds = (%d, %d, %d, %d), expected (1, 2, 1, 3)", minRow, maxRow, minCol, maxCol)
	}

	minRow, _, _, _ = findDataBounds(nil)
	if minRow != -1 {
		t.Errorf("Expected -1 for empty rows, got %d", minRow)
	}
}

func TestDataBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	bounds, err := DataBounds(f, "Sheet1")
	if err != nil {
		t.Fatalf("DataBounds failed: %v", err)
	}
	if bounds != "" {
		t.Errorf("Expected empty bounds, got %q", bounds)
	}

	f.SetCellValue("Sheet1", "B2", "a")
	f.SetCellValue("Sheet1", "AM6", "b")
	bounds, err = DataBounds(f, "Sheet1")
	if err != nil {
		t.Fatalf("DataBounds failed: %v", err)
	}
	if bounds != "B2:AM6" {
		t.Errorf("Expected B2:AM6, got %q", bounds)
	}
}
