package numwords

import "math/big"

// PluralCategory buckets a count into a language-defined plural class.
// The member set follows CLDR naming; packs declare forms only for the
// categories their classifier can return.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Gender marks grammatical gender agreement between a numeral and the noun
// it modifies. GenderNone means the pack draws no distinction.
type Gender int

const (
	GenderNone Gender = iota
	GenderMasculine
	GenderFeminine
)

// Mode selects the rendering pipeline.
type Mode int

const (
	ModePlain Mode = iota
	ModeCurrency
	ModeYear
)

// Separator selects the spoken word for the decimal separator.
// SeparatorDefault defers to the pack's preference.
type Separator int

const (
	SeparatorDefault Separator = iota
	SeparatorPoint
	SeparatorComma
	SeparatorPeriod
)

// MagnitudeEntry is one row of a pack's magnitude table.
type MagnitudeEntry struct {
	// Threshold is the value this scale multiplies, e.g. 1000 for "thousand".
	Threshold *big.Int

	// Names maps plural categories to the inflected scale word.
	// PluralOther is required and acts as the fallback form.
	Names map[PluralCategory]string

	// OmitOne drops the coefficient word when it equals one,
	// e.g. Spanish "mil" rather than "un mil".
	OmitOne bool

	// Gender is the agreement the coefficient must take before this scale
	// word. GenderNone inherits the caller's context.
	Gender Gender

	// limit is the exclusive upper bound for this entry's coefficient,
	// derived from the next-higher threshold during validation.
	limit *big.Int
}

// Group pairs a coefficient with the magnitude it multiplies. Entry is nil
// for the units group (threshold one).
type Group struct {
	Coefficient int64
	Entry       *MagnitudeEntry
}

// NumeralForms carries agreement variants for a single numeral word.
// Empty fields fall back to the default cardinal form.
type NumeralForms struct {
	// Feminine form, e.g. Spanish "una" for 1.
	Feminine string
	// Apocopated form used immediately before a masculine noun or scale
	// word, e.g. Spanish "un" / "veintiún".
	Apocopated string
}

// CurrencyInfo describes the unit nouns and join token for currency mode.
type CurrencyInfo struct {
	// Code is the ISO 4217 code; when MinorDigits is zero the minor-unit
	// precision is derived from it.
	Code string

	MajorNames map[PluralCategory]string
	MinorNames map[PluralCategory]string

	MajorGender Gender
	MinorGender Gender

	// Joiner links the major and minor phrases, e.g. "con", "and".
	Joiner string

	// MinorDigits overrides the currency's minor-unit precision.
	MinorDigits int
}

// FallbackText holds the strings returned for non-finite or invalid input.
type FallbackText struct {
	Invalid          string
	NaN              string
	Infinity         string
	NegativeInfinity string
}

// specialValue classifies inputs that never reach decomposition.
type specialValue int

const (
	specialNone specialValue = iota
	specialNaN
	specialPosInf
	specialNegInf
	specialInvalid
)

// numericInput is the validated source value. Immutable once built.
type numericInput struct {
	negative bool
	integer  *big.Int
	fraction string // explicit fractional digits only, may be empty
	special  specialValue
}

// YearSplit is a pack classifier's decision for century-style year
// rendering. HundredWord appends the pack's hundred word after the high
// half, e.g. "nineteen hundred".
type YearSplit struct {
	High        int64
	Low         int64
	HundredWord bool
}
