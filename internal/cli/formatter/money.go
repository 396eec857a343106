package formatter

import "github.com/dustin/go-humanize"

// Money renders a dollar amount with thousands separators, e.g. $5,000.
// Whole amounts drop the decimal part; fractional amounts keep it.
func Money(v float64) string {
	return "$" + humanize.Commaf(v)
}
