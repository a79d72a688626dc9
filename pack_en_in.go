package numwords

// newIndianEnglishPack builds the built-in Indian English pack. It shares
// the English word tables but groups by the lakh/crore convention: after
// the first thousand boundary every step is a hundredfold, so the
// magnitude table carries explicit thresholds instead of a uniform base.
func newIndianEnglishPack() *LanguagePack {
	pack := newEnglishPack()
	pack.Locale = "en-IN"
	pack.Name = "English (India)"

	scales := []struct {
		exp  int64
		name string
	}{
		{17, "shankh"},
		{15, "padma"},
		{13, "neel"},
		{11, "kharab"},
		{9, "arab"},
		{7, "crore"},
		{5, "lakh"},
		{3, "thousand"},
	}

	entries := make([]MagnitudeEntry, 0, len(scales))
	for _, s := range scales {
		entries = append(entries, MagnitudeEntry{
			Threshold: pow10(s.exp),
			Names:     map[PluralCategory]string{PluralOther: s.name},
		})
	}
	pack.Magnitudes = entries
	pack.TopLimit = pow10(2)

	pack.HundredConjunction = "and"
	pack.FinalConjunction = "and"

	pack.Currency = CurrencyInfo{
		Code:       "INR",
		MajorNames: map[PluralCategory]string{PluralOne: "rupee", PluralOther: "rupees"},
		MinorNames: map[PluralCategory]string{PluralOne: "paisa", PluralOther: "paise"},
		Joiner:     "and",
	}

	return pack
}
