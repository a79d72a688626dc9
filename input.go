package numwords

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// parseInput validates an external value into a numericInput. It never
// fails: anything unrecognizable becomes specialInvalid and is resolved by
// the fallback handler, so no negative or non-finite value ever reaches
// decomposition.
func parseInput(value any) numericInput {
	switch v := value.(type) {
	case nil:
		return numericInput{special: specialInvalid}
	case int:
		return inputFromInt64(int64(v))
	case int8:
		return inputFromInt64(int64(v))
	case int16:
		return inputFromInt64(int64(v))
	case int32:
		return inputFromInt64(int64(v))
	case int64:
		return inputFromInt64(v)
	case uint:
		return inputFromUint64(uint64(v))
	case uint8:
		return inputFromUint64(uint64(v))
	case uint16:
		return inputFromUint64(uint64(v))
	case uint32:
		return inputFromUint64(uint64(v))
	case uint64:
		return inputFromUint64(v)
	case *big.Int:
		if v == nil {
			return numericInput{special: specialInvalid}
		}
		mag := new(big.Int).Abs(v)
		return numericInput{negative: v.Sign() < 0, integer: mag}
	case float32:
		return inputFromFloat(float64(v))
	case float64:
		return inputFromFloat(v)
	case string:
		return parseNumericString(v)
	default:
		return numericInput{special: specialInvalid}
	}
}

func inputFromInt64(n int64) numericInput {
	neg := n < 0
	mag := new(big.Int).SetInt64(n)
	mag.Abs(mag)
	return numericInput{negative: neg, integer: mag}
}

func inputFromUint64(n uint64) numericInput {
	return numericInput{integer: new(big.Int).SetUint64(n)}
}

func inputFromFloat(v float64) numericInput {
	switch {
	case math.IsNaN(v):
		return numericInput{special: specialNaN}
	case math.IsInf(v, 1):
		return numericInput{special: specialPosInf}
	case math.IsInf(v, -1):
		return numericInput{special: specialNegInf}
	}
	// Shortest exact decimal form; 123.0 becomes "123" so no phantom
	// fractional clause is ever spelled.
	return parseNumericString(strconv.FormatFloat(v, 'f', -1, 64))
}

// parseNumericString accepts an optional sign, decimal digits, and at most
// one '.' or ',' separator. Named special values are matched
// case-insensitively.
func parseNumericString(s string) numericInput {
	s = strings.TrimSpace(s)
	if s == "" {
		return numericInput{special: specialInvalid}
	}

	switch strings.ToLower(s) {
	case "nan":
		return numericInput{special: specialNaN}
	case "inf", "+inf", "infinity", "+infinity":
		return numericInput{special: specialPosInf}
	case "-inf", "-infinity":
		return numericInput{special: specialNegInf}
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return numericInput{special: specialInvalid}
	}

	sepIdx := strings.IndexAny(s, ".,")
	whole, frac := s, ""
	if sepIdx >= 0 {
		whole = s[:sepIdx]
		frac = s[sepIdx+1:]
		if strings.IndexAny(frac, ".,") >= 0 || frac == "" {
			return numericInput{special: specialInvalid}
		}
		if !allDigits(frac) {
			return numericInput{special: specialInvalid}
		}
	}

	if whole == "" {
		whole = "0"
	}
	if !allDigits(whole) {
		return numericInput{special: specialInvalid}
	}

	mag, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return numericInput{special: specialInvalid}
	}

	// Trailing fractional zeros carry no spoken content: 123.50 and 123.5
	// spell identically, and 123.0 spells as the integer alone.
	frac = strings.TrimRight(frac, "0")

	if negative && mag.Sign() == 0 && frac == "" {
		negative = false
	}

	return numericInput{negative: negative, integer: mag, fraction: frac}
}

// allDigits reports whether s consists entirely of ASCII digits.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
