package models

// SheetData represents what was read back from a saved report sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains non-empty rows with cell values and formulas.
	Rows []CellRow `json:"rows,omitempty"`
	// Bounds is the range covering every non-empty cell (e.g. "A1:AM6").
	Bounds string `json:"bounds,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// MergedCells lists merged ranges (e.g. "J3:X3").
	MergedCells []string `json:"merged_cells,omitempty"`
}

// Row returns the row with the given 1-based index, or nil.
func (s *SheetData) Row(r int) *CellRow {
	for i := range s.Rows {
		if s.Rows[i].R == r {
			return &s.Rows[i]
		}
	}
	return nil
}
