package inspect

import (
	"github.com/pkg/errors"
	"github.com/ukaji3/apprep-go/pkg/apprep/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Sheet opens the workbook at path and reads back one sheet.
// width is the number of columns probed for formulas.
func Sheet(path, sheetName string, width int) (*models.SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return ReadSheet(f, sheetName, width)
}

// ReadSheet reads back one sheet of an open workbook.
func ReadSheet(f *excelize.File, sheetName string, width int) (*models.SheetData, error) {
	if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "%q (have %v)", sheetName, f.GetSheetList())
	}

	rows, err := ExtractCells(f, sheetName, width)
	if err != nil {
		return nil, errors.Wrap(err, "cells")
	}
	bounds, err := DataBounds(f, sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "bounds")
	}
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "merged cells")
	}

	sheet := &models.SheetData{
		Name:       sheetName,
		Rows:       rows,
		Bounds:     bounds,
		PrintAreas: ExtractPrintAreas(f)[sheetName],
	}
	for _, m := range merged {
		sheet.MergedCells = append(sheet.MergedCells, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	return sheet, nil
}
