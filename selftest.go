package main

import "fmt"

type formatExpectation struct {
	value  float64
	symbol string
	out    string
}

// selfTestTable pins the formatter behavior, including the
// out-of-range fallback and the zero and negative cases.
var selfTestTable = []formatExpectation{
	{3300000000000, "Ω", "3.3 TΩ"},
	{2200000000, "Ω", "2.2 GΩ"},
	{2400000, "Ω", "2.4 MΩ"},
	{1000, "Ω", "1 kΩ"},
	{470, "Ω", "470 Ω"},
	{1, "F", "1 F"},
	{0.0016, "F", "1.6 mF"},
	{0.000008, "F", "8 µF"},
	{0.00000000123, "F", "1.23 nF"},
	{0.0000000000011, "F", "1.1 pF"},
	{1e16, "Ω", "10000000000000000 Ω"},
	{0.0000000000001, "F", "0.0000000000001 F"},
	{0, "V", "0 V"},
	{-4700, "Ω", "-4.7 kΩ"},
}

// runSelfTest checks the formatter against the expectation table.
// It prints nothing on success.
func runSelfTest() error {
	for _, e := range selfTestTable {
		actual := formatEng(e.value, e.symbol, defaultPrecision)
		if actual != e.out {
			return fmt.Errorf("format(%v, %v): expected %q, but got %q",
				e.value, e.symbol, e.out, actual)
		}
	}
	return nil
}
