package numwords

import "math/big"

// decompose splits a non-negative magnitude into groups ordered from the
// highest scale down. The magnitude table is consumed as a sequence of
// explicit thresholds rather than a uniform radix, so lakh/crore-style
// grouping falls out of the same loop as plain thousands: each division
// uses the next entry's threshold, not a fixed base.
//
// Zero yields a single zero-coefficient units group. A magnitude at or
// beyond the pack's highest representable value returns
// ErrMagnitudeOverflow rather than a silently truncated result.
func decompose(magnitude *big.Int, p *LanguagePack) ([]Group, error) {
	if magnitude.Sign() == 0 {
		return []Group{{Coefficient: 0}}, nil
	}
	if magnitude.Cmp(p.max) >= 0 {
		return nil, ErrMagnitudeOverflow
	}

	groups := make([]Group, 0, len(p.Magnitudes)+1)
	rem := new(big.Int).Set(magnitude)

	for i := range p.Magnitudes {
		entry := &p.Magnitudes[i]
		if rem.Cmp(entry.Threshold) < 0 {
			continue
		}
		quo, next := new(big.Int).QuoRem(rem, entry.Threshold, new(big.Int))
		rem = next
		// The overflow check above bounds every quotient by the
		// entry's limit, so Int64 is exact here.
		groups = append(groups, Group{Coefficient: quo.Int64(), Entry: entry})
	}

	if rem.Sign() > 0 {
		groups = append(groups, Group{Coefficient: rem.Int64()})
	}

	return groups, nil
}
