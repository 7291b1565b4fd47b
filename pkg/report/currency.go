package report

import "fmt"

// FormatCurrency renders a dollar amount compactly: millions as $x.xxM,
// thousands as $x.xK, smaller amounts with cents.
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.2fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.1fK", amount/1_000)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}
