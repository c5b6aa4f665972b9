package models

import "github.com/shopspring/decimal"

// Cell is one laid-out cell. A cell with neither Value nor Formula is blank.
type Cell struct {
	// Value is a literal (string or float64).
	Value interface{}
	// Formula is a spreadsheet formula without the leading "=".
	Formula string
}

// IsBlank reports whether nothing is written to the cell.
func (c Cell) IsBlank() bool {
	return c.Value == nil && c.Formula == ""
}

// ReportRow is one data row of the report grid.
type ReportRow struct {
	// R is the sheet row (1-based).
	R int
	// Cells holds one entry per report column, left to right.
	Cells []Cell
	// Summary is the evaluated view of the row's formulas.
	Summary RowSummary
}

// ScoreSummary is the evaluated total, scaled score and rating of one score block.
type ScoreSummary struct {
	Total  decimal.Decimal `json:"total"`
	Score  decimal.Decimal `json:"score"`
	Rating string          `json:"rating"`
}

// RowSummary mirrors what the row's formulas evaluate to.
type RowSummary struct {
	// Form is the appraisal form title.
	Form string `json:"form"`
	// Period is the formatted review period.
	Period string `json:"period"`
	// Employee is the employee score block.
	Employee ScoreSummary `json:"employee"`
	// Manager is the manager score block; its rating is the final rating.
	Manager ScoreSummary `json:"manager"`
}
