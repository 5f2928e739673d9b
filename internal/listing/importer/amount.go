package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads the number formats found in South African spreadsheets:
// "R 3 450,00", "3,450.00", "3450", "12,5". A lone comma followed by exactly three
// digits is a thousands separator ("1,500" is 1500) unless the integer part is
// zero ("0,500" is 0.5); any other lone comma is the decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\'':
			return -1
		}

		return r
	}, s)

	clean = strings.TrimPrefix(strings.TrimPrefix(strings.ToUpper(clean), "ZAR"), "R")

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case lastComma >= 0:
		intPart := strings.TrimPrefix(clean[:lastComma], "-")
		if strings.Count(clean, ",") > 1 || (len(clean)-lastComma-1 == 3 && intPart != "0") {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.Replace(clean, ",", ".", 1)
		}
	}

	return decimal.NewFromString(clean)
}
