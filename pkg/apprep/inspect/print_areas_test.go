package inspect

import (
	"reflect"
	"testing"

	"github.com/ukaji3/apprep-go/pkg/apprep/models"
	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		areas []models.PrintArea
	}{
		{
			ref:   "'2024 Report'!$A$1:$AM$6",
			sheet: "2024 Report",
			areas: []models.PrintArea{{R1: 1, C1: 1, R2: 6, C2: 39}},
		},
		{
			ref:   "Sheet1!$A$1:$D$10,Sheet1!$F$1:$G$2",
			sheet: "Sheet1",
			areas: []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}, {R1: 1, C1: 6, R2: 2, C2: 7}},
		},
		{
			ref:   "'O''Brien'!$B$2:$C$3",
			sheet: "O'Brien",
			areas: []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}},
		},
		{
			ref: "$A$1:$B$2",
		},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.sheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.sheet)
		}
		if !reflect.DeepEqual(areas, tt.areas) {
			t.Errorf("parsePrintAreaReference(%q) areas = %v, expected %v", tt.ref, areas, tt.areas)
		}
	}
}

func TestParseRangeToArea(t *testing.T) {
	if area := parseRangeToArea("A1"); area != nil {
		t.Errorf("Expected nil for a single cell, got %v", area)
	}
	if area := parseRangeToArea("A1:?"); area != nil {
		t.Errorf("Expected nil for an invalid cell, got %v", area)
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$4",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	areas := ExtractPrintAreas(f)
	want := []models.PrintArea{{R1: 1, C1: 1, R2: 4, C2: 3}}
	if !reflect.DeepEqual(areas["Sheet1"], want) {
		t.Errorf("Expected %v, got %v", want, areas["Sheet1"])
	}
}
