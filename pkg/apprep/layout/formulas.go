package layout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SumFormula sums the section slots of block b on row.
func SumFormula(b Block, row int) string {
	return fmt.Sprintf("SUM(%s:%s)", CellName(b.Slot(0), row), CellName(b.Slot(SectionSlots-1), row))
}

// ScoreFormula rounds the block total divided by divisor to zero places.
func ScoreFormula(b Block, row int, divisor decimal.Decimal) string {
	return fmt.Sprintf("ROUND(%s/%s,0)", CellName(b.Total(), row), divisor.String())
}

// RatingFormula maps the block's scaled score to its rating tier, the same way Rating does.
func RatingFormula(b Block, row int) string {
	ref := CellName(b.Score(), row)

	var sb strings.Builder
	fmt.Fprintf(&sb, `IF(%s=0,"",`, ref)
	for _, t := range ratingTiers {
		fmt.Fprintf(&sb, `IF(%s<%d,"%s",`, ref, t.below, t.label)
	}
	fmt.Fprintf(&sb, `"%s"`, topRating)
	sb.WriteString(strings.Repeat(")", len(ratingTiers)+1))
	return sb.String()
}
