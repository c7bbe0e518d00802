package standing

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const fallbackDisplayName = "Player"

// FormatPlayerDisplayName turns a full name into "First L." form. Middle
// names are dropped.
func FormatPlayerDisplayName(fullName string) string {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return fallbackDisplayName
	}

	first := capitalize(tokens[0])
	if len(tokens) == 1 {
		return first
	}

	initial, _ := utf8.DecodeRuneInString(tokens[len(tokens)-1])
	return first + " " + strings.ToUpper(string(initial)) + "."
}

func capitalize(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError && size <= 1 {
		return token
	}
	return strings.ToUpper(string(r)) + token[size:]
}

// FormatNumber renders whole numbers without decimals and everything else
// with the given precision. Non-finite values render as "0".
func FormatNumber(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	if decimals < 0 {
		decimals = 2
	}
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// Round2 rounds half away from zero to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
