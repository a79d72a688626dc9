package numwords

// newEnglishPack builds the built-in English pack: invariant hundred word,
// hyphenated tens-unit compounds, short-scale thousands up to septillion,
// and century-split year reading.
func newEnglishPack() *LanguagePack {
	return &LanguagePack{
		Locale: "en",
		Name:   "English",
		Zero:   "zero",
		Ones: [10]string{
			"", "one", "two", "three", "four",
			"five", "six", "seven", "eight", "nine",
		},
		Teens: [10]string{
			"ten", "eleven", "twelve", "thirteen", "fourteen",
			"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
		},
		Tens: [10]string{
			"", "ten", "twenty", "thirty", "forty",
			"fifty", "sixty", "seventy", "eighty", "ninety",
		},
		TensUnitHyphen: true,
		HundredWord:    "hundred",
		Magnitudes:     englishMagnitudes(),
		PluralForm:     PluralOneOther,

		NegativePrefix: "minus",
		SeparatorWords: map[Separator]string{
			SeparatorPoint:  "point",
			SeparatorComma:  "comma",
			SeparatorPeriod: "point",
		},
		DefaultSeparator: SeparatorPoint,

		Currency: CurrencyInfo{
			Code:       "USD",
			MajorNames: map[PluralCategory]string{PluralOne: "dollar", PluralOther: "dollars"},
			MinorNames: map[PluralCategory]string{PluralOne: "cent", PluralOther: "cents"},
			Joiner:     "and",
		},

		EraBC:    "BC",
		EraAD:    "AD",
		YearForm: westernCenturyYearForm,

		Fallback: FallbackText{
			Invalid:          "invalid number",
			NaN:              "not a number",
			Infinity:         "infinity",
			NegativeInfinity: "negative infinity",
		},
	}
}

// englishMagnitudes lists the short-scale entries, largest first. The
// scale words do not inflect, so only the fallback form is declared.
func englishMagnitudes() []MagnitudeEntry {
	scales := []struct {
		exp  int64
		name string
	}{
		{24, "septillion"},
		{21, "sextillion"},
		{18, "quintillion"},
		{15, "quadrillion"},
		{12, "trillion"},
		{9, "billion"},
		{6, "million"},
		{3, "thousand"},
	}

	entries := make([]MagnitudeEntry, 0, len(scales))
	for _, s := range scales {
		entries = append(entries, MagnitudeEntry{
			Threshold: pow10(s.exp),
			Names:     map[PluralCategory]string{PluralOther: s.name},
		})
	}
	return entries
}
