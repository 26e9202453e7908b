// Package decimal holds the decimal arithmetic used for batch summaries.
package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// FromInt creates decimal from int
func FromInt(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

// Percentage computes part/total*100 rounded to 2 places.
// A zero total yields zero.
func Percentage(part, total int) decimal.Decimal {
	if total == 0 {
		return Zero
	}
	return FromInt(part).Mul(hundred).Div(FromInt(total)).Round(2)
}

// FormatPercentage renders a percentage with two fixed decimals and a % sign
func FormatPercentage(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// Tally counts valid and invalid results in a batch
type Tally struct {
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Add records one result
func (t *Tally) Add(valid bool) {
	if valid {
		t.Valid++
	} else {
		t.Invalid++
	}
}

// Total returns the number of recorded results
func (t Tally) Total() int {
	return t.Valid + t.Invalid
}

// ValidRate returns the share of valid results as a percentage
func (t Tally) ValidRate() decimal.Decimal {
	return Percentage(t.Valid, t.Total())
}
