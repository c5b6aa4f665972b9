package models

// Dataset is the decoded report input.
type Dataset struct {
	// Year is the reporting year as provided (string or number).
	Year Text `json:"year"`
	// Employee is the subject of the report.
	Employee Employee `json:"employee"`
	// Appraisals are laid out one row each, in order.
	Appraisals []Appraisal `json:"appraisals"`
}

// YearLabel returns the year as text.
func (d *Dataset) YearLabel() string { return d.Year.String() }
