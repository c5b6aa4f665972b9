package apprep

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/ukaji3/apprep-go/pkg/apprep/inspect"
	"github.com/ukaji3/apprep-go/pkg/apprep/layout"
)

// verifyArtifact checks the saved file exists and is non-empty. A zero-byte file is
// removed so it is not mistaken for a report.
func verifyArtifact(path string) (int64, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0, errors.Wrapf(ErrOutputMissing, "%s", path)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", path)
	}
	if info.Size() == 0 {
		if rmErr := os.Remove(path); rmErr != nil {
			return 0, errors.Wrapf(ErrOutputEmpty, "%s (remove: %v)", path, rmErr)
		}
		return 0, errors.Wrapf(ErrOutputEmpty, "%s", path)
	}
	return info.Size(), nil
}

// verifyStructure reopens the saved workbook and checks it against the laid-out report.
func verifyStructure(path string, report *layout.Report) error {
	sheet, err := inspect.Sheet(path, report.SheetName, layout.TotalColumns)
	if err != nil {
		return errors.Wrapf(ErrVerification, "%v", err)
	}

	header := sheet.Row(layout.HeaderRow)
	if header == nil {
		return errors.Wrap(ErrVerification, "header row is missing")
	}
	for i, want := range layout.Headers() {
		if got := fmt.Sprint(header.C[strconv.Itoa(i+1)]); got != want {
			return errors.Wrapf(ErrVerification, "header %s: got %q, want %q", layout.ColumnName(i), got, want)
		}
	}

	dataRows := 0
	for _, row := range sheet.Rows {
		if row.R >= layout.FirstDataRow {
			dataRows++
		}
	}
	if dataRows != len(report.Rows) {
		return errors.Wrapf(ErrVerification, "got %d data rows, want %d", dataRows, len(report.Rows))
	}

	for _, row := range report.Rows {
		got := sheet.Row(row.R)
		if got == nil {
			return errors.Wrapf(ErrVerification, "row %d is missing", row.R)
		}
		for _, b := range []layout.Block{layout.EmployeeBlock, layout.ManagerBlock} {
			key := strconv.Itoa(b.Total() + 1)
			if want := layout.SumFormula(b, row.R); got.Formulas[key] != want {
				return errors.Wrapf(ErrVerification, "row %d total: got %q, want %q", row.R, got.Formulas[key], want)
			}
		}
	}
	return nil
}
