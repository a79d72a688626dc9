// Package numwords converts numeric values into their spoken-word
// representation in a target language.
//
// The engine is data driven: all vocabulary and grammar variation lives in a
// LanguagePack (digit and scale-word tables, pluralization rules, grouping
// steps, currency nouns, era tokens). The shared algorithm decomposes an
// arbitrary-precision integer into named magnitude groups, spells each group
// under the language's counting irregularities, resolves scale-word
// agreement, and assembles the final word sequence.
//
// Three rendering modes are supported: plain cardinal, currency
// (major/minor unit split), and calendar year (century-style splitting and
// era suffixes where the language uses them).
//
//	out, err := numwords.Convert("es", 1000000)
//	// out == "un millón"
//
//	out, err = numwords.Convert("es", 123.45, numwords.WithMode(numwords.ModeCurrency))
//	// out == "ciento veintitrés euros con cuarenta y cinco céntimos"
//
// Packs for Spanish ("es"), English ("en") and Indian English ("en-IN",
// lakh/crore grouping) are built in; additional packs load from YAML or
// JSON files. Packs are immutable after registration and all conversion
// functions are safe for concurrent use by multiple goroutines.
package numwords
