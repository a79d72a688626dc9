package numwords

import (
	"math/big"
	"testing"
)

func TestPluralOneOther(t *testing.T) {
	t.Parallel()

	if got := PluralOneOther(1); got != PluralOne {
		t.Fatalf("PluralOneOther(1) = %q", got)
	}
	for _, n := range []int64{0, 2, 5, 11, 21, 100} {
		if got := PluralOneOther(n); got != PluralOther {
			t.Fatalf("PluralOneOther(%d) = %q", n, got)
		}
	}
}

func TestPluralSlavic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want PluralCategory
	}{
		{1, PluralOne},
		{21, PluralOne},
		{101, PluralOne},
		{11, PluralMany},
		{2, PluralFew},
		{3, PluralFew},
		{4, PluralFew},
		{22, PluralFew},
		{12, PluralMany},
		{13, PluralMany},
		{14, PluralMany},
		{5, PluralMany},
		{0, PluralMany},
		{100, PluralMany},
		{-3, PluralFew},
	}

	for _, tc := range tests {
		if got := PluralSlavic(tc.n); got != tc.want {
			t.Fatalf("PluralSlavic(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

// Scale words inflect by the coefficient's plural class, falling back to
// the "other" form for undeclared classes.
func TestResolveScaleWord(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, &LanguagePack{
		Locale: "xx",
		Zero:   "nul",
		Ones:   [10]string{"", "adin", "dva", "tri", "chetyre", "pyat", "shest", "sem", "vosem", "devyat"},
		Teens:  [10]string{"desyat", "", "", "", "", "", "", "", "", ""},
		Tens: [10]string{
			"", "desyat", "dvadtsat", "tridtsat", "sorok",
			"pyatdesyat", "shestdesyat", "semdesyat", "vosemdesyat", "devyanosto",
		},
		HundredWord: "sto",
		Magnitudes: []MagnitudeEntry{
			{
				Threshold: pow10(3),
				Names: map[PluralCategory]string{
					PluralOne:   "tysyacha",
					PluralFew:   "tysyachi",
					PluralMany:  "tysyach",
					PluralOther: "tysyach",
				},
				Gender: GenderFeminine,
			},
		},
		PluralForm:     PluralSlavic,
		SeparatorWords: map[Separator]string{SeparatorPoint: "tochka"},
	})

	entry := &pack.Magnitudes[0]

	tests := []struct {
		coefficient int64
		word        string
		gender      Gender
	}{
		{1, "tysyacha", GenderFeminine},
		{2, "tysyachi", GenderFeminine},
		{12, "tysyach", GenderFeminine},
		{21, "tysyacha", GenderFeminine},
		{100, "tysyach", GenderFeminine},
	}

	for _, tc := range tests {
		word, gender := resolveScaleWord(tc.coefficient, entry, pack)
		if word != tc.word || gender != tc.gender {
			t.Fatalf("resolveScaleWord(%d) = %q,%v want %q,%v",
				tc.coefficient, word, gender, tc.word, tc.gender)
		}
	}
}

func TestUnitNounForm(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newSpanishPack())
	names := map[PluralCategory]string{PluralOne: "euro", PluralOther: "euros"}

	if got := unitNounForm(1, names, pack); got != "euro" {
		t.Fatalf("unitNounForm(1) = %q", got)
	}
	if got := unitNounForm(0, names, pack); got != "euros" {
		t.Fatalf("unitNounForm(0) = %q", got)
	}
	if got := unitNounForm(2, names, pack); got != "euros" {
		t.Fatalf("unitNounForm(2) = %q", got)
	}
}

// Counts beyond int64 keep their low-order digits and never classify as
// exactly one.
func TestAgreementCount(t *testing.T) {
	t.Parallel()

	if got := agreementCount(big.NewInt(21)); got != 21 {
		t.Fatalf("agreementCount(21) = %d", got)
	}

	huge, _ := new(big.Int).SetString("100000000000000000000000021", 10)
	got := agreementCount(huge)
	if got%100 != 21 || got == 1 {
		t.Fatalf("agreementCount(huge) = %d", got)
	}
}
