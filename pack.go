package numwords

import (
	"fmt"
	"math/big"
)

// PluralFormFunc classifies a count into one of the pack's declared plural
// categories. It must be total: any int64 maps to some category, and lookups
// for categories without a declared form fall back to PluralOther.
type PluralFormFunc func(n int64) PluralCategory

// YearFormFunc decides whether a year takes century-style splitting and, if
// so, how. Packs without the convention leave it nil.
type YearFormFunc func(year int64) (YearSplit, bool)

// LanguagePack bundles the vocabulary tables and rule flags for one locale.
// A pack is validated once, at load or registration time, and must not be
// mutated afterwards; validated packs are safe for concurrent use.
type LanguagePack struct {
	Locale string
	Name   string

	// Zero is the word for zero, also used for fractional zero digits.
	Zero string

	// Ones holds the digit words 0-9. Index zero may be empty; Zero is
	// used for the digit 0.
	Ones [10]string

	// Teens holds irregular words for 10-19 (index n-10). Empty slots
	// compose from Tens and Ones.
	Teens [10]string

	// Tens is indexed by tens digit 1-9; index 0 is unused.
	Tens [10]string

	// Fused maps irregular fused values below one hundred to a single
	// word, e.g. Spanish 21 "veintiuno". Checked before composition.
	Fused map[int64]string

	// Overrides supplies gender and apocope variants for numeral words
	// that inflect, keyed by value.
	Overrides map[int64]NumeralForms

	// HundredWord is the invariant multiplier form: "three hundred".
	// Packs whose hundred word inflects leave it empty and fill Hundreds.
	HundredWord string

	// Hundreds holds fused hundred forms indexed by multiplier,
	// e.g. Spanish "doscientos". HundredsFeminine mirrors it for
	// feminine agreement.
	Hundreds         [10]string
	HundredsFeminine [10]string

	// HundredExact replaces Hundreds[1] when the spelled value is exactly
	// one hundred (Spanish "cien" vs "ciento uno").
	HundredExact string

	// HundredConjunction is inserted between the hundreds part and a
	// non-zero remainder, e.g. "and" in Indian English.
	HundredConjunction string

	// TensUnitConjunction joins a tens word and a unit word as a separate
	// token, e.g. Spanish "y". TensUnitHyphen instead fuses them into one
	// hyphenated token, e.g. "twenty-one". At most one applies.
	TensUnitConjunction string
	TensUnitHyphen      bool

	// GroupThousand names the in-group thousand for myriad (base 10000)
	// packs, where a group spells values up to 9999.
	GroupThousand string

	// GroupBase is the exclusive upper bound of a spelled group: 100,
	// 1000 (default) or 10000.
	GroupBase int64

	// Magnitudes lists scale entries with strictly descending thresholds.
	// Steps need not be uniform; lakh/crore tables encode their own
	// boundaries.
	Magnitudes []MagnitudeEntry

	// TopLimit bounds the highest entry's coefficient (exclusive).
	// Zero defaults to the threshold ratio convention: GroupBase for
	// short-scale packs, or the pack's own long-scale bound.
	TopLimit *big.Int

	// FinalConjunction is inserted before a trailing units group when at
	// least one scale group precedes it, e.g. "and" in "one lakh and one".
	FinalConjunction string

	// PluralForm classifies coefficients for scale-word and unit-noun
	// agreement. Nil defaults to one/other.
	PluralForm PluralFormFunc

	// DefaultGender is the agreement used when neither the caller nor a
	// magnitude entry demands one.
	DefaultGender Gender

	NegativePrefix string

	// SeparatorWords maps each selectable separator to its spoken word.
	// DefaultSeparator is used when the caller does not choose.
	SeparatorWords   map[Separator]string
	DefaultSeparator Separator

	// Currency is the pack's default currency; callers may override per
	// call.
	Currency CurrencyInfo

	// EraBC and EraAD are the year-mode era suffix tokens. An empty EraBC
	// falls back to the generic negative prefix for negative years.
	EraBC string
	EraAD string

	// YearForm gates century-style splitting. Nil means years render as
	// plain cardinals.
	YearForm YearFormFunc

	// Fallback holds the strings returned for invalid or non-finite
	// input.
	Fallback FallbackText

	// max is the exclusive bound on representable magnitudes, computed by
	// Validate.
	max *big.Int
}

var one = big.NewInt(1)

// Validate checks the pack's tables and derives internal bounds. It is the
// single place configuration errors surface; conversion assumes a validated
// pack and never re-checks.
func (p *LanguagePack) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil pack", ErrInvalidPack)
	}
	if p.Locale == "" {
		return fmt.Errorf("%w: missing locale", ErrInvalidPack)
	}
	if p.Zero == "" {
		return fmt.Errorf("%w: %s: missing zero word", ErrInvalidPack, p.Locale)
	}
	for d := 1; d <= 9; d++ {
		if p.Ones[d] == "" {
			return fmt.Errorf("%w: %s: missing word for digit %d", ErrInvalidPack, p.Locale, d)
		}
	}

	switch p.GroupBase {
	case 0:
		p.GroupBase = 1000
	case 100, 1000, 10000:
	default:
		return fmt.Errorf("%w: %s: unsupported group base %d", ErrInvalidPack, p.Locale, p.GroupBase)
	}

	if p.GroupBase > 100 {
		for d := 1; d <= 9; d++ {
			if p.Tens[d] == "" {
				return fmt.Errorf("%w: %s: missing word for tens digit %d", ErrInvalidPack, p.Locale, d)
			}
		}
		if p.HundredWord == "" && !p.hasHundredsTable() {
			return fmt.Errorf("%w: %s: no hundred word or hundreds table", ErrInvalidPack, p.Locale)
		}
		if p.HundredWord != "" && p.hasHundredsTable() {
			return fmt.Errorf("%w: %s: both invariant hundred word and hundreds table set", ErrInvalidPack, p.Locale)
		}
	}
	if p.GroupBase == 10000 && p.GroupThousand == "" {
		return fmt.Errorf("%w: %s: base 10000 requires a group thousand word", ErrInvalidPack, p.Locale)
	}
	if p.TensUnitConjunction != "" && p.TensUnitHyphen {
		return fmt.Errorf("%w: %s: conflicting tens-unit join rules", ErrInvalidPack, p.Locale)
	}

	if p.PluralForm == nil {
		p.PluralForm = func(n int64) PluralCategory {
			if n == 1 {
				return PluralOne
			}
			return PluralOther
		}
	}

	base := big.NewInt(p.GroupBase)
	prev := (*big.Int)(nil)
	for i := range p.Magnitudes {
		entry := &p.Magnitudes[i]
		if entry.Threshold == nil || entry.Threshold.Cmp(base) < 0 {
			return fmt.Errorf("%w: %s: magnitude %d threshold below group base", ErrInvalidPack, p.Locale, i)
		}
		if _, ok := entry.Names[PluralOther]; !ok {
			return fmt.Errorf("%w: %s: magnitude %d missing %q form", ErrInvalidPack, p.Locale, i, PluralOther)
		}
		if prev != nil {
			if entry.Threshold.Cmp(prev) >= 0 {
				return fmt.Errorf("%w: %s: magnitude thresholds not strictly descending at %d", ErrInvalidPack, p.Locale, i)
			}
			q, r := new(big.Int).QuoRem(prev, entry.Threshold, new(big.Int))
			if r.Sign() != 0 {
				return fmt.Errorf("%w: %s: threshold at %d does not divide its successor", ErrInvalidPack, p.Locale, i)
			}
			entry.limit = q
		}
		prev = entry.Threshold
	}

	if len(p.Magnitudes) > 0 {
		last := &p.Magnitudes[len(p.Magnitudes)-1]
		if last.Threshold.Cmp(base) != 0 {
			return fmt.Errorf("%w: %s: lowest magnitude threshold must equal group base", ErrInvalidPack, p.Locale)
		}
		for i := range p.Magnitudes {
			entry := &p.Magnitudes[i]
			if entry.limit != nil && !entry.limit.IsInt64() {
				return fmt.Errorf("%w: %s: magnitude %d coefficient range too wide", ErrInvalidPack, p.Locale, i)
			}
		}
		top := &p.Magnitudes[0]
		if p.TopLimit != nil {
			if p.TopLimit.Cmp(one) <= 0 || !p.TopLimit.IsInt64() {
				return fmt.Errorf("%w: %s: invalid top coefficient limit", ErrInvalidPack, p.Locale)
			}
			top.limit = new(big.Int).Set(p.TopLimit)
		} else {
			top.limit = new(big.Int).Set(base)
		}
		p.max = new(big.Int).Mul(top.Threshold, top.limit)
	} else {
		p.max = new(big.Int).Set(base)
	}

	if err := p.Currency.validate(p.Locale); err != nil {
		return err
	}

	if p.SeparatorWords == nil {
		p.SeparatorWords = map[Separator]string{}
	}
	if p.DefaultSeparator == SeparatorDefault {
		p.DefaultSeparator = SeparatorPoint
	}
	if _, ok := p.SeparatorWords[p.DefaultSeparator]; !ok {
		return fmt.Errorf("%w: %s: no word for default decimal separator", ErrInvalidPack, p.Locale)
	}

	return nil
}

func (p *LanguagePack) hasHundredsTable() bool {
	for d := 1; d <= 9; d++ {
		if p.Hundreds[d] != "" {
			return true
		}
	}
	return false
}

func (c *CurrencyInfo) validate(locale string) error {
	if len(c.MajorNames) == 0 && len(c.MinorNames) == 0 && c.Code == "" {
		return nil
	}
	if _, ok := c.MajorNames[PluralOther]; !ok {
		return fmt.Errorf("%w: %s: currency major names missing %q form", ErrInvalidPack, locale, PluralOther)
	}
	if len(c.MinorNames) > 0 {
		if _, ok := c.MinorNames[PluralOther]; !ok {
			return fmt.Errorf("%w: %s: currency minor names missing %q form", ErrInvalidPack, locale, PluralOther)
		}
	}
	if c.MinorDigits < 0 || c.MinorDigits > 9 {
		return fmt.Errorf("%w: %s: currency minor digits out of range", ErrInvalidPack, locale)
	}
	return nil
}

// scaleName returns the inflected scale word for the given plural category,
// falling back to the PluralOther form. Lookups are total for validated
// entries.
func (e *MagnitudeEntry) scaleName(category PluralCategory) string {
	if name, ok := e.Names[category]; ok {
		return name
	}
	return e.Names[PluralOther]
}
