package numwords

import (
	"errors"
	"math/big"
	"testing"
)

func TestValidateBuiltins(t *testing.T) {
	t.Parallel()

	for _, pack := range []*LanguagePack{newSpanishPack(), newEnglishPack(), newIndianEnglishPack()} {
		if err := pack.Validate(); err != nil {
			t.Fatalf("%s: %v", pack.Locale, err)
		}
	}
}

// Configuration errors surface at validation time, never during conversion.
func TestValidateRejectsMalformedPacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*LanguagePack)
	}{
		{"missing locale", func(p *LanguagePack) { p.Locale = "" }},
		{"missing zero word", func(p *LanguagePack) { p.Zero = "" }},
		{"missing digit word", func(p *LanguagePack) { p.Ones[4] = "" }},
		{"missing tens word", func(p *LanguagePack) { p.Tens[4] = "" }},
		{"no hundred rule", func(p *LanguagePack) { p.HundredWord = "" }},
		{"conflicting hundred rules", func(p *LanguagePack) { p.Hundreds[2] = "zweihundert" }},
		{"conflicting tens-unit rules", func(p *LanguagePack) { p.TensUnitConjunction = "and" }},
		{"bad group base", func(p *LanguagePack) { p.GroupBase = 500 }},
		{"myriad base without group thousand", func(p *LanguagePack) {
			p.GroupBase = 10000
			p.Magnitudes = []MagnitudeEntry{
				{Threshold: pow10(4), Names: map[PluralCategory]string{PluralOther: "myriad"}},
			}
		}},
		{"magnitude missing other form", func(p *LanguagePack) {
			p.Magnitudes[0].Names = map[PluralCategory]string{PluralOne: "septillion"}
		}},
		{"thresholds not descending", func(p *LanguagePack) {
			p.Magnitudes[0].Threshold = big.NewInt(1000)
		}},
		{"threshold does not divide successor", func(p *LanguagePack) {
			p.Magnitudes[len(p.Magnitudes)-2].Threshold = big.NewInt(7000000)
		}},
		{"lowest threshold below group base", func(p *LanguagePack) {
			p.Magnitudes[len(p.Magnitudes)-1].Threshold = big.NewInt(100)
		}},
		{"lowest threshold above group base", func(p *LanguagePack) {
			p.Magnitudes = p.Magnitudes[:len(p.Magnitudes)-1]
		}},
		{"top limit too small", func(p *LanguagePack) { p.TopLimit = big.NewInt(1) }},
		{"currency missing other form", func(p *LanguagePack) {
			p.Currency.MajorNames = map[PluralCategory]string{PluralOne: "dollar"}
		}},
		{"currency minor digits out of range", func(p *LanguagePack) { p.Currency.MinorDigits = 12 }},
		{"missing default separator word", func(p *LanguagePack) {
			p.SeparatorWords = map[Separator]string{SeparatorComma: "comma"}
			p.DefaultSeparator = SeparatorPoint
		}},
	}

	for _, tc := range tests {
		pack := newEnglishPack()
		tc.mutate(pack)
		if err := pack.Validate(); !errors.Is(err, ErrInvalidPack) {
			t.Fatalf("%s: err = %v, want ErrInvalidPack", tc.name, err)
		}
	}
}

func TestValidateNilPack(t *testing.T) {
	t.Parallel()

	var pack *LanguagePack
	if err := pack.Validate(); !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("err = %v, want ErrInvalidPack", err)
	}
}

func TestValidateDerivesBounds(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newEnglishPack())

	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil)
	if pack.max.Cmp(want) != 0 {
		t.Fatalf("max = %s, want %s", pack.max, want)
	}

	// thousand's coefficient is bounded by the million threshold ratio.
	last := pack.Magnitudes[len(pack.Magnitudes)-1]
	if last.limit.Int64() != 1000 {
		t.Fatalf("thousand limit = %s", last.limit)
	}
}

func TestScaleNameFallsBackToOther(t *testing.T) {
	t.Parallel()

	entry := &MagnitudeEntry{
		Names: map[PluralCategory]string{PluralOne: "millón", PluralOther: "millones"},
	}
	if got := entry.scaleName(PluralOne); got != "millón" {
		t.Fatalf("scaleName(one) = %q", got)
	}
	if got := entry.scaleName(PluralFew); got != "millones" {
		t.Fatalf("scaleName(few) = %q", got)
	}
}
