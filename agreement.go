package numwords

// resolveScaleWord picks the inflected scale word for a coefficient and
// reports the gender the entry demands of its coefficient, GenderNone when
// the entry is transparent and agreement flows from the surrounding
// context. The plural classifier is total over the pack's declared
// categories (enforced at validation), so conversion-time lookups never
// miss.
func resolveScaleWord(coefficient int64, entry *MagnitudeEntry, p *LanguagePack) (string, Gender) {
	category := p.PluralForm(coefficient)
	return entry.scaleName(category), entry.Gender
}

// unitNounForm picks the inflected currency unit noun for a count. Counts
// outside the int64 range of the classifier are folded to their low-order
// digits with the not-one property preserved, which is all modulus-based
// plural systems inspect.
func unitNounForm(count int64, names map[PluralCategory]string, p *LanguagePack) string {
	category := p.PluralForm(count)
	if name, ok := names[category]; ok {
		return name
	}
	return names[PluralOther]
}

// PluralOneOther is the binary singular/plural classifier most packs use.
func PluralOneOther(n int64) PluralCategory {
	if n == 1 {
		return PluralOne
	}
	return PluralOther
}

// PluralSlavic implements the 1 / 2-4 / 5+ class split used by Russian,
// Ukrainian and related languages: n%10==1 excluding n%100==11 is "one",
// n%10 in 2..4 excluding n%100 in 12..14 is "few", everything else "many".
func PluralSlavic(n int64) PluralCategory {
	if n < 0 {
		n = -n
	}
	mod10 := n % 10
	mod100 := n % 100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}
