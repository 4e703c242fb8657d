package coderep

import (
	"bytes"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// RenderNumber returns the shortest numeric literal text for a non-negative
// number. Infinity is written as "2e308" which overflows to Infinity when
// parsed. Callers must reject NaN and negative values before getting here.
func RenderNumber(absValue float64) string {
	if math.IsInf(absValue, 1) {
		return "2e308"
	}

	// We can avoid the slow call to strconv.FormatFloat() for integers less than
	// 1000 because we know that exponential notation will always be longer than
	// the integer representation. This is not the case for 1000 which is "1e3".
	if absValue < 1000 {
		if asInt := int64(absValue); absValue == float64(asInt) {
			return strconv.FormatInt(asInt, 10)
		}
	}

	result := shortestDecimal(absValue)

	// Integers that are large enough can sometimes be written in fewer
	// characters as hexadecimal
	if absValue >= 1000 && absValue == math.Trunc(absValue) {
		if hex := hexInteger(absValue); len(hex) < len(result) {
			return hex
		}
	}
	return result
}

func shortestDecimal(absValue float64) string {
	result := []byte(strconv.FormatFloat(absValue, 'g', -1, 64))

	// Simplify the exponent
	// "e+05" => "e5"
	// "e-05" => "e-5"
	if e := bytes.LastIndexByte(result, 'e'); e != -1 {
		from := e + 1
		to := from

		switch result[from] {
		case '+':
			// Strip off the leading "+"
			from++

		case '-':
			// Skip past the leading "-"
			to++
			from++
		}

		// Strip off leading zeros
		for from < len(result) && result[from] == '0' {
			from++
		}

		result = append(result[:to], result[from:]...)
	}

	dot := bytes.IndexByte(result, '.')

	if dot == 1 && result[0] == '0' {
		// Simplify numbers starting with "0."
		afterDot := 2

		// Strip off the leading zero
		//
		//   "0.5" => ".5"
		//   "0.05" => ".05"
		//
		result = result[1:]
		afterDot--

		// Try using an exponent
		//
		//   "0.001" => "1e-3"
		//   "0.0001" => "1e-4"
		//
		zeroCount := 0
		for afterDot+zeroCount < len(result) && result[afterDot+zeroCount] == '0' {
			zeroCount++
		}
		if zeroCount > 0 {
			var exponent []byte
			exponent = append(exponent, result[afterDot+zeroCount:]...)
			exponent = append(exponent, 'e', '-')
			exponent = strconv.AppendInt(exponent, int64(zeroCount+1), 10)

			// Only use the exponent if it's strictly shorter
			if len(exponent) < len(result) {
				result = exponent
			}
		}
	} else if dot != -1 {
		// Try to get rid of a "." and maybe also an "e"
		if e := bytes.LastIndexByte(result, 'e'); e != -1 {
			integer := result[:dot]
			fraction := result[dot+1 : e]
			exponent := parseSmallInt(result[e+1:]) - len(fraction)

			// Handle small exponents by appending zeros instead
			if exponent >= 0 && exponent <= 2 {
				// "1.2e1" => "12"
				// "1.2e2" => "120"
				// "1.2e3" => "1200"
				if len(result) >= len(integer)+len(fraction)+exponent {
					var next []byte
					next = append(next, integer...)
					next = append(next, fraction...)
					for i := 0; i < exponent; i++ {
						next = append(next, '0')
					}
					result = next
				}
			} else {
				// "1.2e4" => "12e3"
				var next []byte
				next = append(next, integer...)
				next = append(next, fraction...)
				next = append(next, 'e')
				next = strconv.AppendInt(next, int64(exponent), 10)

				// Only use the exponent if it's not longer
				if len(next) <= len(result) {
					result = next
				}
			}
		}
	} else if result[len(result)-1] == '0' && bytes.IndexByte(result, 'e') == -1 {
		// Simplify numbers ending with "0" by trying to use an exponent
		//
		//   "1000" => "1e3"
		//   "12000" => "12e3"
		//
		zeroCount := 0
		for zeroCount+1 < len(result) && result[len(result)-1-zeroCount] == '0' {
			zeroCount++
		}
		var exponent []byte
		exponent = append(exponent, result[:len(result)-zeroCount]...)
		exponent = append(exponent, 'e')
		exponent = strconv.AppendInt(exponent, int64(zeroCount), 10)

		// Only use the exponent if it's strictly shorter
		if len(exponent) < len(result) {
			result = exponent
		}
	}

	return string(result)
}

func hexInteger(absValue float64) string {
	if absValue < 1<<63 {
		return "0x" + strconv.FormatUint(uint64(absValue), 16)
	}
	i, _ := new(big.Float).SetFloat64(absValue).Int(nil)
	return "0x" + i.Text(16)
}

// Returns the exponent for "1e-4" style text. The input never has a sign other
// than "-" because the "+" was already stripped.
func parseSmallInt(bytes []byte) int {
	if len(bytes) == 0 {
		return 0
	}
	negative := bytes[0] == '-'
	if negative {
		bytes = bytes[1:]
	}
	result := 0
	for _, c := range bytes {
		result = result*10 + int(c-'0')
	}
	if negative {
		return -result
	}
	return result
}

// NumberToString converts a number to text exactly the way the language's
// own Number-to-String conversion does. A static property name that matches
// this form can be written as a numeric literal without changing the key.
func NumberToString(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case value == 0:
		return "0"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value < 0:
		return "-" + NumberToString(-value)
	}

	// "d.ddddde±xx" holds the shortest round-tripping digits and the exponent
	text := strconv.FormatFloat(value, 'e', -1, 64)
	e := strings.IndexByte(text, 'e')
	digits := strings.Replace(text[:e], ".", "", 1)
	exponent, _ := strconv.Atoi(text[e+1:])
	k := len(digits)
	n := exponent + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)

	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]

	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	abs := n - 1
	if abs < 0 {
		abs = -abs
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(abs)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(abs)
}
