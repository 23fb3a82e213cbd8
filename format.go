package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	minOrder = -12
	maxOrder = 12
)

// SI prefixes for the supported orders of magnitude.
var siPrefixes = map[int]string{
	-12: "p",
	-9:  "n",
	-6:  "µ",
	-3:  "m",
	0:   "",
	3:   "k",
	6:   "M",
	9:   "G",
	12:  "T",
}

// formatEng renders a component value in engineering notation: a
// mantissa rounded to prec significant digits, followed by a space,
// an SI prefix and the unit symbol, e.g.
// formatEng(2400000, "Ω", 5) == "2.4 MΩ".
//
// Magnitudes outside the pico..tera range are printed verbatim with no
// prefix. Zero yields "0 <symbol>" and negative values keep their
// sign. Decimal arithmetic avoids the drift of repeated binary
// floating-point scaling.
func formatEng(value float64, symbol string, prec int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64) + " " + symbol
	}
	d := decimal.NewFromFloat(value)
	if d.IsZero() {
		return "0 " + symbol
	}
	sign := ""
	if d.Sign() < 0 {
		sign = "-"
		d = d.Abs()
	}

	ten := decimal.NewFromInt(10)
	one := decimal.NewFromInt(1)
	mantissa, order := d, 0
	for mantissa.GreaterThanOrEqual(ten) {
		mantissa = mantissa.Shift(-1)
		order++
	}
	for mantissa.LessThan(one) {
		mantissa = mantissa.Shift(1)
		order--
	}
	// Snap the order down to a multiple of three, compensating the
	// mantissa, so that it lines up with an SI prefix.
	for order%3 != 0 {
		mantissa = mantissa.Shift(1)
		order--
	}

	mantissa = roundSignificant(mantissa, prec)
	if mantissa.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		// Rounding carried the mantissa into the next bucket.
		mantissa = mantissa.Shift(-3)
		order += 3
	}
	if order < minOrder || order > maxOrder {
		return sign + d.String() + " " + symbol
	}
	return sign + trimFraction(mantissa.String()) + " " + siPrefixes[order] + symbol
}

// roundSignificant rounds a mantissa in [1, 1000) to prec significant
// digits.
func roundSignificant(m decimal.Decimal, prec int32) decimal.Decimal {
	places := prec - int32(len(strconv.FormatInt(m.IntPart(), 10)))
	if places < 0 {
		places = 0
	}
	return m.Round(places)
}

// trimFraction strips trailing zeros after the decimal point, and the
// point itself for exact integers.
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
