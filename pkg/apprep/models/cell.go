package models

// CellRow represents a single row of cells read back from a saved report.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// Formulas maps column index to the cell formula (optional).
	Formulas map[string]string `json:"formulas,omitempty"`
}
