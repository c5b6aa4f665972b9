// Package layout lays an appraisal dataset out as the fixed 39-column report grid
// and writes it onto an excelize worksheet.
package layout

import "strconv"

// Grid geometry. Column indexes are zero-based; rows are 1-based sheet rows.
const (
	IdentityColumns = 9
	SectionSlots    = 12
	// BlockColumns is the width of one score block: the slots plus total, score and rating.
	BlockColumns = SectionSlots + 3
	TotalColumns = IdentityColumns + 2*BlockColumns

	// TitleSpan is the number of columns the title cell is merged across.
	TitleSpan = 18

	TitleRow         = 1
	SectionHeaderRow = 3
	HeaderRow        = 4
	FirstDataRow     = 5
)

// Block is one score block (employee or manager) of the grid.
type Block struct {
	// Label is the merged heading written above the block.
	Label string
	// RatingLabel is the header of the block's rating column.
	RatingLabel string
	// First is the column of section slot 1.
	First int
}

// Blocks of the report, left to right.
var (
	EmployeeBlock = Block{
		Label:       "Performance Assessment - Employee Scores",
		RatingLabel: "Rating",
		First:       IdentityColumns,
	}
	ManagerBlock = Block{
		Label:       "Performance Assessment - Manager Scores",
		RatingLabel: "Final Rating",
		First:       IdentityColumns + BlockColumns,
	}
)

// Slot returns the column of the zero-based section slot i.
func (b Block) Slot(i int) int { return b.First + i }

// Total returns the column of the block total.
func (b Block) Total() int { return b.First + SectionSlots }

// Score returns the column of the scaled score.
func (b Block) Score() int { return b.First + SectionSlots + 1 }

// Rating returns the column of the rating.
func (b Block) Rating() int { return b.First + SectionSlots + 2 }

// Last returns the last column of the block.
func (b Block) Last() int { return b.Rating() }

var identityHeaders = [IdentityColumns]string{
	"Company", "Dept", "Name", "Staff No.", "Form", "Role", "Position", "Date Joined", "Period",
}

var identityWidths = [IdentityColumns]float64{15, 15, 20, 12, 18, 12, 20, 12, 15}

const (
	slotWidth   = 8
	derivedWide = 10
	finalWidth  = 12
)

// ColumnName maps a zero-based column index to its spreadsheet label:
// 0 -> "A", 25 -> "Z", 26 -> "AA", 38 -> "AM". Negative indexes map to "".
func ColumnName(index int) string {
	if index < 0 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// CellName returns the reference of a zero-based column and 1-based row, e.g. (21, 5) -> "V5".
func CellName(col, row int) string {
	return ColumnName(col) + strconv.Itoa(row)
}

// Headers returns the header labels of all report columns.
func Headers() []string {
	headers := make([]string, 0, TotalColumns)
	headers = append(headers, identityHeaders[:]...)
	for _, b := range []Block{EmployeeBlock, ManagerBlock} {
		for i := 0; i < SectionSlots; i++ {
			headers = append(headers, "S"+strconv.Itoa(i+1))
		}
		headers = append(headers, "Total", "Score", b.RatingLabel)
	}
	return headers
}

// ColumnWidths returns the width of every report column.
func ColumnWidths() []float64 {
	widths := make([]float64, TotalColumns)
	copy(widths, identityWidths[:])
	for _, b := range []Block{EmployeeBlock, ManagerBlock} {
		for i := 0; i < SectionSlots; i++ {
			widths[b.Slot(i)] = slotWidth
		}
		widths[b.Total()] = derivedWide
		widths[b.Score()] = derivedWide
		widths[b.Rating()] = derivedWide
	}
	widths[ManagerBlock.Rating()] = finalWidth
	return widths
}
