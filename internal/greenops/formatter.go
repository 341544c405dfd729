package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	rounded := roundTo(f, precision)

	if precision == 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)

	intPart, fracPart, found := strings.Cut(formatted, ".")
	if !found {
		return formatted
	}

	negative := strings.HasPrefix(intPart, "-")
	var n int64
	if _, err := fmt.Sscan(strings.TrimPrefix(intPart, "-"), &n); err != nil {
		return formatted
	}

	out := printer.Sprintf("%d", n) + "." + fracPart
	if negative && math.Abs(rounded) > 0 {
		out = "-" + out
	}
	return out
}

// FormatGrams formats a CO2 figure the way the page shows it, e.g. "750g".
func FormatGrams(grams int) string {
	return FormatNumber(int64(grams)) + "g"
}
