package numwords

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves language packs used to seed a Registry.
type Loader interface {
	Load() ([]*LanguagePack, error)
}

// LoaderFunc adapts a bare function to the Loader interface.
type LoaderFunc func() ([]*LanguagePack, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() ([]*LanguagePack, error) {
	return fn()
}

// FileLoader reads language pack definitions from YAML or JSON files.
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a FileLoader over the given paths.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load decodes every configured file into a validated pack.
func (l *FileLoader) Load() ([]*LanguagePack, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("numwords: no loader paths configured")
	}

	packs := make([]*LanguagePack, 0, len(l.paths))
	for _, path := range l.paths {
		pack, err := LoadPackFile(path)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

// LoadFrom registers every pack the loader yields.
func (r *Registry) LoadFrom(loader Loader) error {
	if loader == nil {
		return errors.New("numwords: nil loader")
	}
	packs, err := loader.Load()
	if err != nil {
		return err
	}
	for _, pack := range packs {
		if err := r.Register(pack); err != nil {
			return err
		}
	}
	return nil
}

// LoadPackFile reads and validates a single pack definition, dispatching
// on the file extension.
func LoadPackFile(path string) (*LanguagePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("numwords: read %s: %w", path, err)
	}

	var file packFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("numwords: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("numwords: decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("numwords: %s: unsupported extension %q", path, ext)
	}

	pack, err := file.build()
	if err != nil {
		return nil, fmt.Errorf("numwords: %s: %w", path, err)
	}
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("numwords: %s: %w", path, err)
	}
	return pack, nil
}

// packFile is the serialized pack schema. Behavioral hooks cannot be
// serialized, so the plural classifier and year rule are selected by name.
type packFile struct {
	Locale              string                 `yaml:"locale" json:"locale"`
	Name                string                 `yaml:"name" json:"name"`
	Zero                string                 `yaml:"zero" json:"zero"`
	Ones                []string               `yaml:"ones" json:"ones"`
	Teens               []string               `yaml:"teens" json:"teens"`
	Tens                []string               `yaml:"tens" json:"tens"`
	Fused               map[string]string      `yaml:"fused" json:"fused"`
	Overrides           map[string]formsFile   `yaml:"overrides" json:"overrides"`
	HundredWord         string                 `yaml:"hundred_word" json:"hundred_word"`
	Hundreds            []string               `yaml:"hundreds" json:"hundreds"`
	HundredsFeminine    []string               `yaml:"hundreds_feminine" json:"hundreds_feminine"`
	HundredExact        string                 `yaml:"hundred_exact" json:"hundred_exact"`
	HundredConjunction  string                 `yaml:"hundred_conjunction" json:"hundred_conjunction"`
	TensUnitConjunction string                 `yaml:"tens_unit_conjunction" json:"tens_unit_conjunction"`
	TensUnitHyphen      bool                   `yaml:"tens_unit_hyphen" json:"tens_unit_hyphen"`
	GroupThousand       string                 `yaml:"group_thousand" json:"group_thousand"`
	GroupBase           int64                  `yaml:"group_base" json:"group_base"`
	Magnitudes          []magnitudeFile        `yaml:"magnitudes" json:"magnitudes"`
	TopLimit            string                 `yaml:"top_limit" json:"top_limit"`
	FinalConjunction    string                 `yaml:"final_conjunction" json:"final_conjunction"`
	PluralRule          string                 `yaml:"plural_rule" json:"plural_rule"`
	YearRule            string                 `yaml:"year_rule" json:"year_rule"`
	DefaultGender       string                 `yaml:"default_gender" json:"default_gender"`
	NegativePrefix      string                 `yaml:"negative_prefix" json:"negative_prefix"`
	Separators          map[string]string      `yaml:"separators" json:"separators"`
	DefaultSeparator    string                 `yaml:"default_separator" json:"default_separator"`
	Currency            currencyFile           `yaml:"currency" json:"currency"`
	EraBC               string                 `yaml:"era_bc" json:"era_bc"`
	EraAD               string                 `yaml:"era_ad" json:"era_ad"`
	Fallback            FallbackText           `yaml:"fallback" json:"fallback"`
}

type formsFile struct {
	Feminine   string `yaml:"feminine" json:"feminine"`
	Apocopated string `yaml:"apocopated" json:"apocopated"`
}

type magnitudeFile struct {
	Threshold string            `yaml:"threshold" json:"threshold"`
	Names     map[string]string `yaml:"names" json:"names"`
	OmitOne   bool              `yaml:"omit_one" json:"omit_one"`
	Gender    string            `yaml:"gender" json:"gender"`
}

type currencyFile struct {
	Code        string            `yaml:"code" json:"code"`
	Major       map[string]string `yaml:"major" json:"major"`
	Minor       map[string]string `yaml:"minor" json:"minor"`
	MajorGender string            `yaml:"major_gender" json:"major_gender"`
	MinorGender string            `yaml:"minor_gender" json:"minor_gender"`
	Joiner      string            `yaml:"joiner" json:"joiner"`
	MinorDigits int               `yaml:"minor_digits" json:"minor_digits"`
}

func (f packFile) build() (*LanguagePack, error) {
	pack := &LanguagePack{
		Locale:              f.Locale,
		Name:                f.Name,
		Zero:                f.Zero,
		HundredWord:         f.HundredWord,
		HundredExact:        f.HundredExact,
		HundredConjunction:  f.HundredConjunction,
		TensUnitConjunction: f.TensUnitConjunction,
		TensUnitHyphen:      f.TensUnitHyphen,
		GroupThousand:       f.GroupThousand,
		GroupBase:           f.GroupBase,
		FinalConjunction:    f.FinalConjunction,
		NegativePrefix:      f.NegativePrefix,
		EraBC:               f.EraBC,
		EraAD:               f.EraAD,
		Fallback:            f.Fallback,
	}

	if err := copyTable(pack.Ones[:], f.Ones, "ones"); err != nil {
		return nil, err
	}
	if err := copyTable(pack.Teens[:], f.Teens, "teens"); err != nil {
		return nil, err
	}
	if err := copyTable(pack.Tens[:], f.Tens, "tens"); err != nil {
		return nil, err
	}
	if err := copyTable(pack.Hundreds[:], f.Hundreds, "hundreds"); err != nil {
		return nil, err
	}
	if err := copyTable(pack.HundredsFeminine[:], f.HundredsFeminine, "hundreds_feminine"); err != nil {
		return nil, err
	}

	if len(f.Fused) > 0 {
		pack.Fused = make(map[int64]string, len(f.Fused))
		for key, word := range f.Fused {
			value, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: fused key %q", ErrInvalidPack, key)
			}
			pack.Fused[value] = word
		}
	}

	if len(f.Overrides) > 0 {
		pack.Overrides = make(map[int64]NumeralForms, len(f.Overrides))
		for key, forms := range f.Overrides {
			value, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: override key %q", ErrInvalidPack, key)
			}
			pack.Overrides[value] = NumeralForms{Feminine: forms.Feminine, Apocopated: forms.Apocopated}
		}
	}

	for i, m := range f.Magnitudes {
		threshold, ok := new(big.Int).SetString(m.Threshold, 10)
		if !ok {
			return nil, fmt.Errorf("%w: magnitude %d threshold %q", ErrInvalidPack, i, m.Threshold)
		}
		names, err := parseNames(m.Names)
		if err != nil {
			return nil, err
		}
		gender, err := parseGender(m.Gender)
		if err != nil {
			return nil, err
		}
		pack.Magnitudes = append(pack.Magnitudes, MagnitudeEntry{
			Threshold: threshold,
			Names:     names,
			OmitOne:   m.OmitOne,
			Gender:    gender,
		})
	}

	if f.TopLimit != "" {
		limit, ok := new(big.Int).SetString(f.TopLimit, 10)
		if !ok {
			return nil, fmt.Errorf("%w: top limit %q", ErrInvalidPack, f.TopLimit)
		}
		pack.TopLimit = limit
	}

	var err error
	if pack.DefaultGender, err = parseGender(f.DefaultGender); err != nil {
		return nil, err
	}

	switch f.PluralRule {
	case "", "one_other":
		pack.PluralForm = PluralOneOther
	case "slavic":
		pack.PluralForm = PluralSlavic
	default:
		return nil, fmt.Errorf("%w: unknown plural rule %q", ErrInvalidPack, f.PluralRule)
	}

	switch f.YearRule {
	case "":
	case "western_century":
		pack.YearForm = westernCenturyYearForm
	default:
		return nil, fmt.Errorf("%w: unknown year rule %q", ErrInvalidPack, f.YearRule)
	}

	if len(f.Separators) > 0 {
		pack.SeparatorWords = make(map[Separator]string, len(f.Separators))
		for key, word := range f.Separators {
			sep, err := parseSeparator(key)
			if err != nil {
				return nil, err
			}
			pack.SeparatorWords[sep] = word
		}
	}
	if f.DefaultSeparator != "" {
		if pack.DefaultSeparator, err = parseSeparator(f.DefaultSeparator); err != nil {
			return nil, err
		}
	}

	pack.Currency.Code = f.Currency.Code
	pack.Currency.Joiner = f.Currency.Joiner
	pack.Currency.MinorDigits = f.Currency.MinorDigits
	if pack.Currency.MajorNames, err = parseNames(f.Currency.Major); err != nil {
		return nil, err
	}
	if pack.Currency.MinorNames, err = parseNames(f.Currency.Minor); err != nil {
		return nil, err
	}
	if pack.Currency.MajorGender, err = parseGender(f.Currency.MajorGender); err != nil {
		return nil, err
	}
	if pack.Currency.MinorGender, err = parseGender(f.Currency.MinorGender); err != nil {
		return nil, err
	}

	return pack, nil
}

func copyTable(dst []string, src []string, name string) error {
	if len(src) == 0 {
		return nil
	}
	if len(src) > len(dst) {
		return fmt.Errorf("%w: %s table has %d entries, at most %d allowed", ErrInvalidPack, name, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

func parseNames(names map[string]string) (map[PluralCategory]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make(map[PluralCategory]string, len(names))
	for key, word := range names {
		category, err := parsePluralCategory(key)
		if err != nil {
			return nil, err
		}
		out[category] = word
	}
	return out, nil
}

func parsePluralCategory(value string) (PluralCategory, error) {
	switch category := PluralCategory(strings.ToLower(strings.TrimSpace(value))); category {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return category, nil
	default:
		return "", fmt.Errorf("%w: unknown plural category %q", ErrInvalidPack, value)
	}
}

func parseGender(value string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return GenderNone, nil
	case "masculine", "m":
		return GenderMasculine, nil
	case "feminine", "f":
		return GenderFeminine, nil
	default:
		return GenderNone, fmt.Errorf("%w: unknown gender %q", ErrInvalidPack, value)
	}
}

func parseSeparator(value string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "point":
		return SeparatorPoint, nil
	case "comma":
		return SeparatorComma, nil
	case "period":
		return SeparatorPeriod, nil
	default:
		return SeparatorDefault, fmt.Errorf("%w: unknown separator %q", ErrInvalidPack, value)
	}
}
