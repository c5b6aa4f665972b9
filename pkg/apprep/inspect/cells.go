// Package inspect reads a saved report back so its structure can be verified.
package inspect

import (
	"strconv"

	"github.com/ukaji3/apprep-go/pkg/apprep/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows. When width is positive,
// the first width columns of every row are also probed for formulas; formula cells
// carry no cached value until a spreadsheet application recalculates them.
func ExtractCells(f *excelize.File, sheetName string, width int) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{})
		formulaMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}

		for colIdx := 0; colIdx < width; colIdx++ {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if formula != "" {
				formulaMap[strconv.Itoa(colIdx+1)] = formula
			}
		}

		if len(cellMap) == 0 && len(formulaMap) == 0 {
			continue
		}
		cellRow := models.CellRow{
			R: rowNum,
			C: cellMap,
		}
		if len(formulaMap) > 0 {
			cellRow.Formulas = formulaMap
		}
		result = append(result, cellRow)
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
