package numwords

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Registry maps locale identifiers to validated language packs. Packs are
// registered up front and read-only thereafter; resolution walks the
// locale's parent chain so "es-MX" finds the "es" pack.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]*LanguagePack
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{packs: make(map[string]*LanguagePack)}
}

// Register validates the pack and stores it under its normalized locale.
// Re-registering a locale replaces the previous pack.
func (r *Registry) Register(pack *LanguagePack) error {
	if err := pack.Validate(); err != nil {
		return err
	}

	code := normalizeLocale(pack.Locale)
	if code == "" {
		return fmt.Errorf("%w: empty locale", ErrInvalidPack)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.packs[code] = pack
	return nil
}

// Resolve returns the pack for locale, trying the exact code first and
// then each parent in the locale's fallback chain.
func (r *Registry) Resolve(locale string) (*LanguagePack, error) {
	code := normalizeLocale(locale)
	if code == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if pack, ok := r.packs[code]; ok {
		return pack, nil
	}
	for _, parent := range localeParentChain(code) {
		if pack, ok := r.packs[parent]; ok {
			return pack, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// Locales returns the sorted registered locale codes.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.packs))
	for code := range r.packs {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry seeded with the built-in
// packs. Callers may register additional packs on it.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, pack := range []*LanguagePack{
			newSpanishPack(),
			newEnglishPack(),
			newIndianEnglishPack(),
		} {
			if err := defaultRegistry.Register(pack); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}

// normalizeLocale normalizes a locale identifier by replacing underscores
// with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// localeParentChain returns the locale's parents ordered from closest to
// root, derived from the language tag hierarchy with a lexical fallback for
// unparseable identifiers.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, exists := seen[value]; exists {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
