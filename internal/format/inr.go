package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// INR renders an amount as "₹1,23,456" with Indian digit grouping
// (last three digits, then groups of two). Fractions are kept only
// when present, matching how the panel has always displayed money.
func INR(amount float64) string {
	return "₹" + GroupINR(amount)
}

// GroupINR formats the bare number with Indian grouping. The amount is
// rounded to whole paise up front so a fraction of .995 or more
// carries into the rupees instead of printing a three-digit paise
// field.
func GroupINR(amount float64) string {
	neg := amount < 0
	paise := int64(math.Round(math.Abs(amount) * 100))

	whole := paise / 100
	frac := paise % 100

	out := groupIndian(strconv.FormatInt(whole, 10))
	if frac != 0 {
		// Two decimal places, trailing zeros kept (paise).
		out = fmt.Sprintf("%s.%02d", out, frac)
	}

	if neg && paise != 0 {
		return "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	// Rightmost group of three, then groups of two.
	out := digits[n-3:]
	rest := digits[:n-3]

	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}

	return rest + "," + out
}

// Count renders a plain integer with Indian grouping.
func Count(n int64) string {
	if n < 0 {
		return "-" + groupIndian(strconv.FormatInt(-n, 10))
	}
	return groupIndian(strconv.FormatInt(n, 10))
}

// ShortDate renders a timestamp the way the panel shows booking dates:
// day/month/year without leading zeros (en-IN style).
func ShortDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2/1/2006")
}
