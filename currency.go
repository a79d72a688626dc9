package numwords

import (
	"math/big"
	"strings"

	"golang.org/x/text/currency"
)

// renderCurrency splits the value into major and minor units, spells each
// through the cardinal path under the currency's own noun agreement, and
// joins them with the pack's (or override's) joiner. A zero minor part is
// omitted entirely.
func (c *Converter) renderCurrency(in numericInput, ro renderOptions) (string, error) {
	p := c.pack

	info := p.Currency
	if ro.currency != nil {
		info = *ro.currency
	}

	digits := minorUnitDigits(info)
	minor, carry := roundFraction(in.fraction, digits)

	major := in.integer
	if carry {
		major = new(big.Int).Add(major, one)
	}

	groups, err := decompose(major, p)
	if err != nil {
		return "", err
	}

	majorCtx := spellCtx{gender: c.currencyGender(info.MajorGender, ro), beforeNoun: len(info.MajorNames) > 0}
	tokens := assemble(groups, majorCtx, p)
	if len(info.MajorNames) > 0 {
		tokens = append(tokens, unitNounForm(agreementCount(major), info.MajorNames, p))
	}

	if minor > 0 && len(info.MinorNames) > 0 {
		if info.Joiner != "" {
			tokens = append(tokens, info.Joiner)
		}
		minorCtx := spellCtx{gender: c.currencyGender(info.MinorGender, ro), beforeNoun: true}
		tokens = append(tokens, spellCoefficient(minor, minorCtx, p)...)
		tokens = append(tokens, unitNounForm(minor, info.MinorNames, p))
	}

	out := strings.Join(tokens, " ")
	if in.negative && (major.Sign() > 0 || minor > 0) {
		out = c.negativePrefix(ro) + " " + out
	}
	return out, nil
}

func (c *Converter) currencyGender(g Gender, ro renderOptions) Gender {
	if g != GenderNone {
		return g
	}
	if ro.gender != GenderNone {
		return ro.gender
	}
	return c.pack.DefaultGender
}

// minorUnitDigits resolves the minor-unit precision: an explicit override
// wins, then the ISO 4217 rounding data for the code, then the common
// two-digit default.
func minorUnitDigits(info CurrencyInfo) int {
	if info.MinorDigits > 0 {
		return info.MinorDigits
	}
	if info.Code != "" {
		if unit, err := currency.ParseISO(info.Code); err == nil {
			scale, _ := currency.Standard.Rounding(unit)
			if scale >= 0 {
				return scale
			}
		}
	}
	return 2
}

// roundFraction rounds an explicit fractional digit sequence to the given
// precision, half away from zero. carry reports an overflow into the major
// unit (e.g. 0.999 at two digits).
func roundFraction(fraction string, digits int) (minor int64, carry bool) {
	if fraction == "" {
		return 0, false
	}

	if digits == 0 {
		return 0, fraction[0] >= '5'
	}

	var value int64
	for i := 0; i < digits; i++ {
		value *= 10
		if i < len(fraction) {
			value += int64(fraction[i] - '0')
		}
	}

	if len(fraction) > digits && fraction[digits] >= '5' {
		value++
	}

	limit := int64(1)
	for i := 0; i < digits; i++ {
		limit *= 10
	}
	if value >= limit {
		return 0, true
	}
	return value, false
}

// agreementCount folds an arbitrary-precision count into the int64 the
// plural classifier consumes. Counts beyond int64 keep their low-order
// digits, which is all modulus-based plural systems inspect, with the
// not-exactly-one property preserved.
func agreementCount(n *big.Int) int64 {
	if n.IsInt64() {
		return n.Int64()
	}
	folded := new(big.Int).Mod(n, big.NewInt(100)).Int64()
	return folded + 100
}
