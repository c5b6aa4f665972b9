package layout

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Creator is recorded as the author of generated workbooks.
const Creator = "apprep"

// Write renders r onto the first sheet of f, renaming it to r.SheetName.
func (r *Report) Write(f *excelize.File) error {
	if err := f.SetSheetName(f.GetSheetName(0), r.SheetName); err != nil {
		return fmt.Errorf("sheet name %q: %w", r.SheetName, err)
	}
	styles, err := NewStyles(f)
	if err != nil {
		return fmt.Errorf("styles: %w", err)
	}

	steps := []struct {
		name string
		fn   func(*excelize.File, *Styles) error
	}{
		{"title", r.writeTitle},
		{"section headers", r.writeSectionHeaders},
		{"header row", r.writeHeaderRow},
		{"column widths", r.writeColumnWidths},
		{"data rows", r.writeRows},
		{"panes", r.writePanes},
		{"print setup", r.writePrintSetup},
	}
	for _, step := range steps {
		if err := step.fn(f, styles); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return f.SetDocProps(&excelize.DocProperties{
		Title:          r.Title,
		Subject:        r.Employee,
		Creator:        Creator,
		LastModifiedBy: Creator,
		Category:       "Appraisal Report",
	})
}

func (r *Report) writeTitle(f *excelize.File, s *Styles) error {
	cell := CellName(0, TitleRow)
	if err := f.SetCellValue(r.SheetName, cell, r.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(r.SheetName, cell, cell, s.Title); err != nil {
		return err
	}
	return f.MergeCell(r.SheetName, cell, CellName(TitleSpan-1, TitleRow))
}

func (r *Report) writeSectionHeaders(f *excelize.File, s *Styles) error {
	for _, b := range []Block{EmployeeBlock, ManagerBlock} {
		start, end := CellName(b.First, SectionHeaderRow), CellName(b.Last(), SectionHeaderRow)
		if err := f.MergeCell(r.SheetName, start, end); err != nil {
			return err
		}
		if err := f.SetCellValue(r.SheetName, start, b.Label); err != nil {
			return err
		}
		if err := f.SetCellStyle(r.SheetName, start, end, s.SectionHeader); err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) writeHeaderRow(f *excelize.File, s *Styles) error {
	headers := Headers()
	if err := f.SetSheetRow(r.SheetName, CellName(0, HeaderRow), &headers); err != nil {
		return err
	}
	return f.SetCellStyle(r.SheetName, CellName(0, HeaderRow), CellName(TotalColumns-1, HeaderRow), s.Header)
}

func (r *Report) writeColumnWidths(f *excelize.File, _ *Styles) error {
	for i, w := range ColumnWidths() {
		col := ColumnName(i)
		if err := f.SetColWidth(r.SheetName, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) writeRows(f *excelize.File, s *Styles) error {
	for _, row := range r.Rows {
		for col, c := range row.Cells {
			ref := CellName(col, row.R)
			switch {
			case c.Formula != "":
				if err := f.SetCellFormula(r.SheetName, ref, c.Formula); err != nil {
					return err
				}
			case c.Value != nil:
				if err := f.SetCellValue(r.SheetName, ref, c.Value); err != nil {
					return err
				}
			}
		}
	}
	if len(r.Rows) == 0 {
		return nil
	}

	// Styles go on whole ranges so blank slots get their borders too.
	last := r.LastRow()
	if err := f.SetCellStyle(r.SheetName, CellName(0, FirstDataRow), CellName(IdentityColumns-1, last), s.Identity); err != nil {
		return err
	}
	return f.SetCellStyle(r.SheetName, CellName(IdentityColumns, FirstDataRow), CellName(TotalColumns-1, last), s.Score)
}

func (r *Report) writePanes(f *excelize.File, _ *Styles) error {
	topLeft := CellName(0, FirstDataRow)
	return f.SetPanes(r.SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      HeaderRow,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: "bottomLeft"},
		},
	})
}

func (r *Report) writePrintSetup(f *excelize.File, _ *Styles) error {
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: r.PrintArea(),
		Scope:    r.SheetName,
	}); err != nil {
		return err
	}

	orientation, fitWidth, fitHeight, fitToPage := "landscape", 1, 0, true
	if err := f.SetPageLayout(r.SheetName, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		FitToWidth:  &fitWidth,
		FitToHeight: &fitHeight,
	}); err != nil {
		return err
	}
	return f.SetSheetProps(r.SheetName, &excelize.SheetPropsOptions{FitToPage: &fitToPage})
}

// PrintArea returns the print area reference covering the whole grid.
func (r *Report) PrintArea() string {
	last := ColumnName(TotalColumns - 1)
	return fmt.Sprintf("'%s'!$A$%d:$%s$%d", strings.ReplaceAll(r.SheetName, "'", "''"), TitleRow, last, r.LastRow())
}
