package savemoney

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount bounds for a single transaction, in whole rupiah.
const (
	MinAmount = 100
	MaxAmount = 999_999_999_999
)

// Rupiah is a monetary amount in whole rupiah. The app never deals in
// minor units: amounts are validated as positive integers, and fractions
// only appear in derived figures (averages), which are carried as
// decimals until display.
type Rupiah int64

// idr supplies the grouping separator and symbol. Going through the
// go-money constructor guarantees a non-nil currency.
func idr() *money.Currency { return money.New(0, money.IDR).Currency() }

// String formats the amount with the currency prefix and grouped digits,
// e.g. "Rp 5.000.000".
func (r Rupiah) String() string {
	cur := idr()
	sign := ""
	v := int64(r)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + cur.Grapheme + " " + groupDigits(v, cur.Thousand)
}

// groupDigits renders v with a separator every three digits.
func groupDigits(v int64, sep string) string {
	digits := decimal.NewFromInt(v).String()
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// RupiahFromDecimal rounds a derived figure to the nearest whole rupiah
// for display.
func RupiahFromDecimal(d decimal.Decimal) Rupiah {
	return Rupiah(d.Round(0).IntPart())
}
