package numwords

import (
	"math/big"
	"testing"
)

func mustPack(t *testing.T, pack *LanguagePack) *LanguagePack {
	t.Helper()
	if err := pack.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return pack
}

func TestDecomposeThousandGrouping(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newEnglishPack())

	tests := []struct {
		in     int64
		coeffs []int64
	}{
		{0, []int64{0}},
		{7, []int64{7}},
		{999, []int64{999}},
		{1000, []int64{1}},
		{1001, []int64{1, 1}},
		{1234567, []int64{1, 234, 567}},
		{1000000007, []int64{1, 7}},
	}

	for _, tc := range tests {
		groups, err := decompose(big.NewInt(tc.in), pack)
		if err != nil {
			t.Fatalf("decompose(%d): %v", tc.in, err)
		}
		if got := coefficients(groups); !equalInt64(got, tc.coeffs) {
			t.Fatalf("decompose(%d) coefficients = %v, want %v", tc.in, got, tc.coeffs)
		}
	}
}

// Zero decomposes to a single unscaled zero group.
func TestDecomposeZero(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newEnglishPack())
	groups, err := decompose(new(big.Int), pack)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0].Coefficient != 0 || groups[0].Entry != nil {
		t.Fatalf("decompose(0) = %+v", groups)
	}
}

// Multiplying by the grouping base shifts every group one scale up and
// leaves the coefficient sequence unchanged.
func TestDecomposeMonotonicMagnitude(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newEnglishPack())
	base := big.NewInt(1000)

	for _, n := range []int64{1, 7, 42, 999, 1001, 123456} {
		value := big.NewInt(n)
		prev, err := decompose(value, pack)
		if err != nil {
			t.Fatal(err)
		}
		for step := 0; step < 3; step++ {
			value = new(big.Int).Mul(value, base)
			next, err := decompose(value, pack)
			if err != nil {
				t.Fatalf("decompose(%s): %v", value, err)
			}
			if !equalInt64(coefficients(prev), coefficients(next)) {
				t.Fatalf("n=%d step=%d: coefficients %v -> %v",
					n, step, coefficients(prev), coefficients(next))
			}
			prev = next
		}
	}
}

// Lakh/crore grouping uses hundredfold steps past the first thousand
// boundary, driven purely by the magnitude table.
func TestDecomposeIndianGrouping(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newIndianEnglishPack())

	tests := []struct {
		in     int64
		coeffs []int64
		scales []string
	}{
		{789, []int64{789}, []string{""}},
		{150000, []int64{1, 50}, []string{"lakh", "thousand"}},
		{123456789, []int64{12, 34, 56, 789}, []string{"crore", "lakh", "thousand", ""}},
		{10000000, []int64{1}, []string{"crore"}},
	}

	for _, tc := range tests {
		groups, err := decompose(big.NewInt(tc.in), pack)
		if err != nil {
			t.Fatalf("decompose(%d): %v", tc.in, err)
		}
		if got := coefficients(groups); !equalInt64(got, tc.coeffs) {
			t.Fatalf("decompose(%d) coefficients = %v, want %v", tc.in, got, tc.coeffs)
		}
		for i, g := range groups {
			name := ""
			if g.Entry != nil {
				name = g.Entry.Names[PluralOther]
			}
			if name != tc.scales[i] {
				t.Fatalf("decompose(%d) scale[%d] = %q, want %q", tc.in, i, name, tc.scales[i])
			}
		}
	}
}

func TestDecomposeOverflow(t *testing.T) {
	t.Parallel()

	pack := mustPack(t, newEnglishPack())
	over := new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil)

	if _, err := decompose(over, pack); err != ErrMagnitudeOverflow {
		t.Fatalf("err = %v, want ErrMagnitudeOverflow", err)
	}

	under := new(big.Int).Sub(over, big.NewInt(1))
	groups, err := decompose(under, pack)
	if err != nil {
		t.Fatal(err)
	}
	if groups[0].Coefficient != 999 {
		t.Fatalf("top coefficient = %d", groups[0].Coefficient)
	}
}

func coefficients(groups []Group) []int64 {
	out := make([]int64, len(groups))
	for i, g := range groups {
		out[i] = g.Coefficient
	}
	return out
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
