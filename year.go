package numwords

import "strings"

// renderYear renders a calendar year. Century-style splitting is gated by
// the pack's YearForm classifier; packs without the convention (Spanish)
// spell years as plain cardinals. Negative years take the pack's
// BC-equivalent suffix in place of the generic negative prefix; the
// AD-equivalent suffix for positive years is opt-in via WithEraSuffix.
// Any fractional digits are ignored: years are integral.
func (c *Converter) renderYear(in numericInput, ro renderOptions) (string, error) {
	p := c.pack

	var tokens []string
	if !in.negative && p.YearForm != nil && in.integer.IsInt64() {
		if split, ok := p.YearForm(in.integer.Int64()); ok {
			tokens = c.yearSplitTokens(split)
		}
	}

	if tokens == nil {
		groups, err := decompose(in.integer, p)
		if err != nil {
			return "", err
		}
		tokens = assemble(groups, c.baseCtx(ro), p)
	}

	out := strings.Join(tokens, " ")

	switch {
	case in.negative && p.EraBC != "":
		out = out + " " + p.EraBC
	case in.negative:
		out = c.negativePrefix(ro) + " " + out
	case ro.eraSuffix && p.EraAD != "":
		out = out + " " + p.EraAD
	}

	return out, nil
}

// westernCenturyYearForm is the century-split convention shared by the
// English packs: years 1100-9999 split into two two-digit halves
// ("nineteen eighty-four"), an exact century keeps the hundred word
// ("nineteen hundred"), round thousands and low remainders (1901-1909
// style) fall back to plain cardinals.
func westernCenturyYearForm(year int64) (YearSplit, bool) {
	if year < 1100 || year > 9999 || year%1000 == 0 {
		return YearSplit{}, false
	}
	high, low := year/100, year%100
	if low == 0 {
		return YearSplit{High: high, HundredWord: true}, true
	}
	if low < 10 {
		return YearSplit{}, false
	}
	return YearSplit{High: high, Low: low}, true
}

// yearSplitTokens spells a century-split year: the high half, an optional
// hundred word ("nineteen hundred"), then the low half when present.
func (c *Converter) yearSplitTokens(split YearSplit) []string {
	p := c.pack
	ctx := spellCtx{gender: p.DefaultGender}

	tokens := spellSmall(split.High, ctx, p)
	if split.HundredWord {
		// Packs with an inflecting hundreds table use its base form.
		word := p.HundredWord
		if word == "" {
			word = p.Hundreds[1]
		}
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	if split.Low > 0 {
		tokens = append(tokens, spellSmall(split.Low, ctx, p)...)
	}
	return tokens
}
