package layout

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/apprep-go/pkg/apprep/models"
)

// Report is a dataset laid out as the report grid.
type Report struct {
	// SheetName is the single sheet's name, "<year> Report".
	SheetName string
	// Title is the text of the merged title cell.
	Title string
	// Employee is the employee name, used as the document subject.
	Employee string
	// Divisor scales every block total into a score.
	Divisor decimal.Decimal
	// Rows are the data rows in dataset order.
	Rows []models.ReportRow
}

// SheetName returns the sheet name used for a reporting year.
func SheetName(year string) string {
	return year + " Report"
}

// Layout computes the report grid for ds.
func Layout(ds *models.Dataset) *Report {
	year := ds.YearLabel()
	emp := ds.Employee
	divisor := Divisor(emp.RoleName())

	r := &Report{
		SheetName: SheetName(year),
		Title:     "Summary of " + year + " Appraisal Ratings - " + emp.CompanyOrDefault(),
		Employee:  emp.DisplayName(),
		Divisor:   divisor,
		Rows:      make([]models.ReportRow, 0, len(ds.Appraisals)),
	}
	for i, a := range ds.Appraisals {
		r.Rows = append(r.Rows, layoutRow(FirstDataRow+i, emp, a, divisor))
	}
	return r
}

// LastRow returns the last sheet row the grid occupies.
func (r *Report) LastRow() int {
	return HeaderRow + len(r.Rows)
}

func layoutRow(row int, emp models.Employee, a models.Appraisal, divisor decimal.Decimal) models.ReportRow {
	cells := make([]models.Cell, TotalColumns)
	identity := []string{
		emp.Company(),
		emp.Department.String(),
		emp.DisplayName(),
		emp.EmpNumber.String(),
		a.Form(),
		emp.RoleTitle(),
		emp.Position.String(),
		emp.DateJoined.String(),
		a.Period(),
	}
	for i, v := range identity {
		cells[i] = models.Cell{Value: v}
	}

	slots := a.Slots(SectionSlots)
	summary := models.RowSummary{Form: a.Form(), Period: a.Period()}
	summary.Employee = layoutBlock(cells, EmployeeBlock, row, slots, models.Section.Employee, divisor)
	summary.Manager = layoutBlock(cells, ManagerBlock, row, slots, models.Section.Manager, divisor)

	return models.ReportRow{R: row, Cells: cells, Summary: summary}
}

// layoutBlock fills one score block of a row. Slots without a section stay blank.
func layoutBlock(cells []models.Cell, b Block, row int, slots []models.Section,
	score func(models.Section) decimal.Decimal, divisor decimal.Decimal) models.ScoreSummary {
	total := decimal.Zero
	for i, s := range slots {
		v := score(s)
		total = total.Add(v)
		cells[b.Slot(i)] = models.Cell{Value: v.InexactFloat64()}
	}
	cells[b.Total()] = models.Cell{Formula: SumFormula(b, row)}
	cells[b.Score()] = models.Cell{Formula: ScoreFormula(b, row, divisor)}
	cells[b.Rating()] = models.Cell{Formula: RatingFormula(b, row)}

	scaled := ScaledScore(total, divisor)
	return models.ScoreSummary{Total: total, Score: scaled, Rating: Rating(scaled)}
}
