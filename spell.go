package numwords

// spellCtx carries the grammatical context a numeral is spelled in.
// beforeNoun is true when a scale word or unit noun immediately follows the
// numeral, which is where apocopated forms apply (Spanish "un millón").
type spellCtx struct {
	gender     Gender
	beforeNoun bool
}

// inner returns the context for numeral tokens that are not the last word
// of the phrase. Gender agreement carries through; apocope does not.
func (ctx spellCtx) inner() spellCtx {
	return spellCtx{gender: ctx.gender}
}

// spellSmall renders n in [0, GroupBase) as an ordered token sequence.
// Output stays token-granular so the assembler can apply join rules
// uniformly; fused forms ("veintiuno", "twenty-one") occupy one token.
func spellSmall(n int64, ctx spellCtx, p *LanguagePack) []string {
	if n == 0 {
		return []string{p.Zero}
	}

	tokens := make([]string, 0, 6)

	// Myriad packs spell a secondary thousand inside the group.
	if n >= 1000 && p.GroupThousand != "" {
		tctx := ctx.inner()
		tctx.beforeNoun = true
		tokens = append(tokens, p.digitWord(n/1000, tctx))
		tokens = append(tokens, p.GroupThousand)
		n %= 1000
		if n == 0 {
			return tokens
		}
	}

	h := n / 100
	r := n % 100

	if h > 0 {
		hctx := ctx.inner()
		if r == 0 {
			hctx = ctx
		}
		tokens = p.appendHundreds(tokens, h, r, hctx)
		if r > 0 && p.HundredConjunction != "" {
			tokens = append(tokens, p.HundredConjunction)
		}
	}

	if r > 0 {
		tokens = p.appendTensUnits(tokens, r, ctx)
	}

	return tokens
}

// appendHundreds writes the hundreds part for multiplier h in [1, 9].
// Packs either compose an invariant hundred word ("three hundred") or carry
// a fused, inflecting table ("doscientos"/"doscientas").
func (p *LanguagePack) appendHundreds(tokens []string, h, r int64, ctx spellCtx) []string {
	if p.HundredWord != "" {
		tokens = append(tokens, p.digitWord(h, ctx.inner()))
		return append(tokens, p.HundredWord)
	}

	if h == 1 && r == 0 && p.HundredExact != "" {
		return append(tokens, p.HundredExact)
	}

	word := p.Hundreds[h]
	if ctx.gender == GenderFeminine && p.HundredsFeminine[h] != "" {
		word = p.HundredsFeminine[h]
	}
	return append(tokens, word)
}

// appendTensUnits writes r in [1, 99], honoring fused irregulars, the teen
// range, and the pack's tens-unit join rule.
func (p *LanguagePack) appendTensUnits(tokens []string, r int64, ctx spellCtx) []string {
	if r < 10 {
		return append(tokens, p.digitWord(r, ctx))
	}

	if word, ok := p.Fused[r]; ok {
		return append(tokens, p.applyForms(word, r, ctx))
	}

	if r < 20 && p.Teens[r-10] != "" {
		return append(tokens, p.applyForms(p.Teens[r-10], r, ctx))
	}

	tens := p.Tens[r/10]
	unit := r % 10
	if unit == 0 {
		return append(tokens, p.applyForms(tens, r, ctx))
	}

	switch {
	case p.TensUnitHyphen:
		return append(tokens, tens+"-"+p.digitWord(unit, ctx))
	case p.TensUnitConjunction != "":
		return append(tokens, tens, p.TensUnitConjunction, p.digitWord(unit, ctx))
	default:
		return append(tokens, tens, p.digitWord(unit, ctx))
	}
}

// digitWord returns the word for a single digit 0-9 under ctx.
func (p *LanguagePack) digitWord(d int64, ctx spellCtx) string {
	if d == 0 {
		return p.Zero
	}
	return p.applyForms(p.Ones[d], d, ctx)
}

// applyForms swaps in a gender or apocope variant when the pack declares
// one for this value; otherwise the base word stands.
func (p *LanguagePack) applyForms(word string, value int64, ctx spellCtx) string {
	forms, ok := p.Overrides[value]
	if !ok {
		return word
	}
	if ctx.gender == GenderFeminine && forms.Feminine != "" {
		return forms.Feminine
	}
	if ctx.beforeNoun && forms.Apocopated != "" {
		return forms.Apocopated
	}
	return word
}
