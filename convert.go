package numwords

import (
	"errors"
	"strings"
)

// Converter renders numbers for a single resolved language pack. It holds
// no per-call state; one Converter may serve any number of goroutines.
type Converter struct {
	pack         *LanguagePack
	registry     *Registry
	locale       string
	fallbackText string
}

// Option configures a Converter during construction.
type Option func(*Converter) error

// New builds a Converter via supplied options. The pack is resolved once,
// here; conversion calls never touch the registry again.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.pack == nil {
		if c.locale == "" {
			return nil, errors.New("numwords: no locale or pack configured")
		}
		if c.registry == nil {
			c.registry = DefaultRegistry()
		}
		pack, err := c.registry.Resolve(c.locale)
		if err != nil {
			return nil, err
		}
		c.pack = pack
	}

	return c, nil
}

// WithLocale selects the language pack by locale identifier, resolved
// against the configured (or default) registry with parent fallback.
func WithLocale(locale string) Option {
	return func(c *Converter) error {
		c.locale = locale
		return nil
	}
}

// WithRegistry resolves locales against a caller-owned registry.
func WithRegistry(registry *Registry) Option {
	return func(c *Converter) error {
		c.registry = registry
		return nil
	}
}

// WithPack uses the given pack directly, bypassing registry resolution.
// The pack is validated here.
func WithPack(pack *LanguagePack) Option {
	return func(c *Converter) error {
		if err := pack.Validate(); err != nil {
			return err
		}
		c.pack = pack
		return nil
	}
}

// WithFallbackText overrides the pack's "not a number"/invalid strings.
func WithFallbackText(text string) Option {
	return func(c *Converter) error {
		c.fallbackText = text
		return nil
	}
}

// renderOptions is the per-call configuration, built from ConvertOptions
// and never mutated after construction.
type renderOptions struct {
	mode           Mode
	separator      Separator
	negativePrefix string
	hasNegPrefix   bool
	eraSuffix      bool
	gender         Gender
	currency       *CurrencyInfo
}

// ConvertOption adjusts a single conversion call.
type ConvertOption func(*renderOptions)

// WithMode selects plain, currency, or year rendering.
func WithMode(mode Mode) ConvertOption {
	return func(o *renderOptions) { o.mode = mode }
}

// WithDecimalSeparator picks the spoken separator word, independent of the
// pack's default.
func WithDecimalSeparator(sep Separator) ConvertOption {
	return func(o *renderOptions) { o.separator = sep }
}

// WithNegativePrefix overrides the pack's negative prefix token.
func WithNegativePrefix(prefix string) ConvertOption {
	return func(o *renderOptions) {
		o.negativePrefix = prefix
		o.hasNegPrefix = true
	}
}

// WithEraSuffix opts positive years into the pack's AD-equivalent suffix.
func WithEraSuffix(include bool) ConvertOption {
	return func(o *renderOptions) { o.eraSuffix = include }
}

// WithGender overrides the agreement gender where the pack exposes one.
func WithGender(g Gender) ConvertOption {
	return func(o *renderOptions) { o.gender = g }
}

// WithCurrency overrides the pack's currency unit names for one call.
func WithCurrency(info CurrencyInfo) ConvertOption {
	return func(o *renderOptions) { o.currency = &info }
}

// Convert renders value for locale using the default registry. It is a
// convenience wrapper around New plus (*Converter).Convert.
func Convert(locale string, value any, opts ...ConvertOption) (string, error) {
	c, err := New(WithLocale(locale))
	if err != nil {
		return "", err
	}
	return c.Convert(value, opts...)
}

// Convert renders value as words. Invalid and non-finite inputs resolve to
// the pack's fallback strings with a nil error; the only per-call error is
// ErrMagnitudeOverflow.
//
// Numeric strings take an optional sign and at most one '.' or ',' decimal
// separator. Digit-grouping separators are not supported: "1,500" reads as
// one and five tenths, not fifteen hundred.
func (c *Converter) Convert(value any, opts ...ConvertOption) (string, error) {
	var ro renderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&ro)
		}
	}

	in := parseInput(value)
	if in.special != specialNone {
		return c.fallbackString(in.special), nil
	}

	switch ro.mode {
	case ModeCurrency:
		return c.renderCurrency(in, ro)
	case ModeYear:
		return c.renderYear(in, ro)
	default:
		return c.renderPlain(in, ro)
	}
}

// Pack returns the resolved language pack.
func (c *Converter) Pack() *LanguagePack {
	return c.pack
}

func (c *Converter) renderPlain(in numericInput, ro renderOptions) (string, error) {
	p := c.pack

	groups, err := decompose(in.integer, p)
	if err != nil {
		return "", err
	}

	tokens := assemble(groups, c.baseCtx(ro), p)

	if in.fraction != "" {
		tokens = append(tokens, c.separatorWord(ro.separator))
		for i := 0; i < len(in.fraction); i++ {
			tokens = append(tokens, p.digitWord(int64(in.fraction[i]-'0'), spellCtx{}))
		}
	}

	out := strings.Join(tokens, " ")
	if in.negative {
		out = c.negativePrefix(ro) + " " + out
	}
	return out, nil
}

func (c *Converter) baseCtx(ro renderOptions) spellCtx {
	g := ro.gender
	if g == GenderNone {
		g = c.pack.DefaultGender
	}
	return spellCtx{gender: g}
}

func (c *Converter) negativePrefix(ro renderOptions) string {
	if ro.hasNegPrefix {
		return ro.negativePrefix
	}
	return c.pack.NegativePrefix
}

// separatorWord resolves the spoken decimal-separator word, deferring to
// the pack default when the caller does not choose or the pack has no word
// for the chosen variant.
func (c *Converter) separatorWord(sep Separator) string {
	p := c.pack
	if sep == SeparatorDefault {
		sep = p.DefaultSeparator
	}
	if word, ok := p.SeparatorWords[sep]; ok {
		return word
	}
	return p.SeparatorWords[p.DefaultSeparator]
}
