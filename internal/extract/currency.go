package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAmountChars = regexp.MustCompile(`[^\d.,]`)

// NormalizeCurrency converts a loosely formatted amount such as "R$ 1.234,56"
// into a float. Brazilian and plain formats are accepted; anything that
// cannot be read yields 0.
func NormalizeCurrency(s string) float64 {
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, "&nbsp;", "")
	s = nonAmountChars.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	case hasDot:
		// Two digits after the last dot means cents; otherwise dots group thousands.
		if len(s)-strings.LastIndex(s, ".")-1 != 2 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
