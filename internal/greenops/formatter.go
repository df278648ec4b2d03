package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Shared English-grouping printer.
var groupPrinter = message.NewPrinter(language.English)

// FormatNumber groups digits in threes: 22894 becomes "22,894".
func FormatNumber(n int64) string {
	return groupPrinter.Sprintf("%d", n)
}

// FormatFloat rounds f to precision decimals and adds thousand separators to
// the integer part. Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	scale := math.Pow10(precision)
	rounded := math.Round(f*scale) / scale

	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	sign, digits := "", formatted
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	whole, frac, _ := strings.Cut(digits, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return formatted
	}
	return sign + FormatNumber(n) + "." + frac
}

// FormatRupees formats a rupee amount with the ₹ symbol and separators.
func FormatRupees(amount int64) string {
	if amount < 0 {
		return "-₹" + FormatNumber(-amount)
	}
	return "₹" + FormatNumber(amount)
}

// FormatLarge abbreviates counts of a million or more ("~5.2 million",
// "~1.5 billion") and groups smaller ones.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
