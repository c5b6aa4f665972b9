package layout

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	managerDivisor = decimal.RequireFromString("1.2")
	workerDivisor  = decimal.RequireFromString("0.8")
	defaultDivisor = decimal.NewFromInt(1)
)

// Divisor returns the role-dependent divisor that scales a raw total into a score.
// Matching is a case-insensitive substring test; "manager" and "admin" win over "worker".
func Divisor(role string) decimal.Decimal {
	role = strings.ToLower(role)
	switch {
	case strings.Contains(role, "manager"), strings.Contains(role, "admin"):
		return managerDivisor
	case strings.Contains(role, "worker"):
		return workerDivisor
	default:
		return defaultDivisor
	}
}

type ratingTier struct {
	below int64
	label string
}

// ratingTiers are ordered by upper bound; each tier is inclusive-low.
var ratingTiers = []ratingTier{
	{below: 50, label: "C"},
	{below: 60, label: "B-"},
	{below: 75, label: "B"},
	{below: 85, label: "B+"},
}

const topRating = "A"

// Rating returns the rating tier of a scaled score. A zero score has no rating.
func Rating(score decimal.Decimal) string {
	if score.IsZero() {
		return ""
	}
	for _, t := range ratingTiers {
		if score.LessThan(decimal.NewFromInt(t.below)) {
			return t.label
		}
	}
	return topRating
}

// ScaledScore divides total by divisor and rounds half away from zero, as ROUND(x,0) does.
func ScaledScore(total, divisor decimal.Decimal) decimal.Decimal {
	return total.Div(divisor).Round(0)
}
