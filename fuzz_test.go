package numwords

import (
	"strings"
	"testing"
)

// FuzzConvert feeds arbitrary strings through the full pipeline. Conversion
// must never panic, must be deterministic, and must always produce either a
// non-empty phrase or a magnitude overflow.
func FuzzConvert(f *testing.F) {
	seeds := []string{
		"0", "-0", "21", "1001", "123.45", "1,5", "-3.14",
		"1000000", "999999999999999999999999", "1" + strings.Repeat("0", 30),
		"NaN", "inf", "-Infinity", "", "  42  ", "+7",
		"12a", "1.2.3", "--5", ".", "0.000", "-", "+",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	converters := make([]*Converter, 0, 3)
	for _, locale := range []string{"es", "en", "en-IN"} {
		c, err := New(WithLocale(locale))
		if err != nil {
			f.Fatal(err)
		}
		converters = append(converters, c)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, c := range converters {
			got, err := c.Convert(s)
			if err != nil {
				if err != ErrMagnitudeOverflow {
					t.Fatalf("%s: Convert(%q): %v", c.Pack().Locale, s, err)
				}
				continue
			}
			if got == "" {
				t.Fatalf("%s: Convert(%q) returned empty phrase", c.Pack().Locale, s)
			}
			if strings.Contains(got, "  ") {
				t.Fatalf("%s: Convert(%q) = %q has doubled spaces", c.Pack().Locale, s, got)
			}
			again, err := c.Convert(s)
			if err != nil || again != got {
				t.Fatalf("%s: Convert(%q) not deterministic: %q vs %q (err %v)",
					c.Pack().Locale, s, got, again, err)
			}
		}
	})
}

// FuzzConvertCurrency checks the rounding and carry paths never panic and
// never emit a negative-looking phrase for values that round to zero.
func FuzzConvertCurrency(f *testing.F) {
	f.Add("0.004")
	f.Add("-0.004")
	f.Add("1.999")
	f.Add("123.45")
	f.Add("-5")
	f.Add("0.5")

	c, err := New(WithLocale("en"))
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, s string) {
		got, err := c.Convert(s, WithMode(ModeCurrency))
		if err != nil {
			if err != ErrMagnitudeOverflow {
				t.Fatalf("Convert(%q): %v", s, err)
			}
			return
		}
		if got == "" {
			t.Fatalf("Convert(%q) returned empty phrase", s)
		}
		if got == "minus zero dollars" || strings.HasPrefix(got, "minus zero dollars") {
			t.Fatalf("Convert(%q) = %q spelled a negative zero amount", s, got)
		}
	})
}
