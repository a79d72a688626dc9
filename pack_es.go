package numwords

import "math/big"

// newSpanishPack builds the built-in Spanish pack. Spanish inflects its
// hundreds (doscientos/doscientas), fuses 16-29 into single words, omits
// the coefficient before "mil", apocopates "uno" before a noun ("un
// millón", "veintiún euros"), and uses the long scale: millón/billón steps
// of a million, with thousands of each spelled recursively ("mil
// millones").
func newSpanishPack() *LanguagePack {
	return &LanguagePack{
		Locale: "es",
		Name:   "Spanish",
		Zero:   "cero",
		Ones: [10]string{
			"", "uno", "dos", "tres", "cuatro",
			"cinco", "seis", "siete", "ocho", "nueve",
		},
		Teens: [10]string{
			"diez", "once", "doce", "trece", "catorce",
			"quince", "", "", "", "",
		},
		Tens: [10]string{
			"", "diez", "veinte", "treinta", "cuarenta",
			"cincuenta", "sesenta", "setenta", "ochenta", "noventa",
		},
		Fused: map[int64]string{
			16: "dieciséis", 17: "diecisiete", 18: "dieciocho", 19: "diecinueve",
			21: "veintiuno", 22: "veintidós", 23: "veintitrés", 24: "veinticuatro",
			25: "veinticinco", 26: "veintiséis", 27: "veintisiete",
			28: "veintiocho", 29: "veintinueve",
		},
		Overrides: map[int64]NumeralForms{
			1:  {Feminine: "una", Apocopated: "un"},
			21: {Feminine: "veintiuna", Apocopated: "veintiún"},
		},
		Hundreds: [10]string{
			"", "ciento", "doscientos", "trescientos", "cuatrocientos",
			"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
		},
		HundredsFeminine: [10]string{
			"", "ciento", "doscientas", "trescientas", "cuatrocientas",
			"quinientas", "seiscientas", "setecientas", "ochocientas", "novecientas",
		},
		HundredExact:        "cien",
		TensUnitConjunction: "y",
		Magnitudes: []MagnitudeEntry{
			{
				Threshold: pow10(24),
				Names:     map[PluralCategory]string{PluralOne: "cuatrillón", PluralOther: "cuatrillones"},
				Gender:    GenderMasculine,
			},
			{
				Threshold: pow10(18),
				Names:     map[PluralCategory]string{PluralOne: "trillón", PluralOther: "trillones"},
				Gender:    GenderMasculine,
			},
			{
				Threshold: pow10(12),
				Names:     map[PluralCategory]string{PluralOne: "billón", PluralOther: "billones"},
				Gender:    GenderMasculine,
			},
			{
				Threshold: pow10(6),
				Names:     map[PluralCategory]string{PluralOne: "millón", PluralOther: "millones"},
				Gender:    GenderMasculine,
			},
			{
				Threshold: pow10(3),
				Names:     map[PluralCategory]string{PluralOther: "mil"},
				OmitOne:   true,
			},
		},
		// Long scale: the step between named scales is a million.
		TopLimit:      pow10(6),
		PluralForm:    PluralOneOther,
		DefaultGender: GenderMasculine,

		NegativePrefix: "menos",
		SeparatorWords: map[Separator]string{
			SeparatorPoint:  "punto",
			SeparatorComma:  "coma",
			SeparatorPeriod: "punto",
		},
		DefaultSeparator: SeparatorComma,

		Currency: CurrencyInfo{
			Code:        "EUR",
			MajorNames:  map[PluralCategory]string{PluralOne: "euro", PluralOther: "euros"},
			MinorNames:  map[PluralCategory]string{PluralOne: "céntimo", PluralOther: "céntimos"},
			MajorGender: GenderMasculine,
			MinorGender: GenderMasculine,
			Joiner:      "con",
		},

		EraBC: "a.C.",
		EraAD: "d.C.",

		Fallback: FallbackText{
			Invalid:          "valor no numérico",
			NaN:              "no es un número",
			Infinity:         "infinito",
			NegativeInfinity: "menos infinito",
		},
	}
}

// pow10 returns 10^exp as a big integer.
func pow10(exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
}
