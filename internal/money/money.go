package money

import (
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	digitRun    = regexp.MustCompile(`\d+`)
	nonZeroRune = regexp.MustCompile(`[1-9]`)
	negativeAmt = regexp.MustCompile(`\A\s*-\s*\d`)
)

// PenniesFor converts a textual amount into an integer count of cents.
//
//	"-123.45" -> -12345
//	"123"     -> 12300
//	"11,11"   -> 1111
//
// Any non-digit separates the integer part from the fraction, and only the
// first two fraction digits are kept (no rounding). A fraction made only of
// zeros counts as no fraction at all. Empty input returns ok == false; any
// other input yields a best-effort value. Amounts beyond the int64 range
// saturate at math.MaxInt64 or math.MinInt64.
func PenniesFor(amount string) (int64, bool) {
	if amount == "" {
		return 0, false
	}

	var intPart, fraction string
	runs := digitRun.FindAllString(amount, 2)
	if len(runs) > 0 {
		intPart = runs[0]
	}
	if len(runs) > 1 {
		fraction = runs[1]
	}

	var cents int64
	saturated := false
	if nonZeroRune.MatchString(fraction) {
		if len(fraction) > 2 {
			fraction = fraction[:2]
		}
		cents, saturated = atoi(intPart + fraction)
	} else {
		units, sat := atoi(intPart)
		if sat || units > math.MaxInt64/100 {
			cents, saturated = math.MaxInt64, true
		} else {
			cents = units * 100
		}
	}

	if negativeAmt.MatchString(amount) {
		if saturated {
			return math.MinInt64, true
		}
		cents = -cents
	}
	return cents, true
}

// Decimal returns the amount as a two-place decimal derived from PenniesFor,
// so it always agrees with the cents value.
func Decimal(amount string) (decimal.Decimal, bool) {
	cents, ok := PenniesFor(amount)
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.New(cents, -2), true
}

// atoi parses a run of ASCII digits. Empty input is zero; values past the
// int64 range return math.MaxInt64 with saturated set.
func atoi(digits string) (n int64, saturated bool) {
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return math.MaxInt64, true
	}
	return n, false
}
