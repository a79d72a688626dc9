package numwords

import "math/big"

// assemble concatenates per-group phrases in descending magnitude order.
// Zero groups were already dropped by decomposition, except when the whole
// value is zero, which renders as the bare zero word.
func assemble(groups []Group, ctx spellCtx, p *LanguagePack) []string {
	if len(groups) == 1 && groups[0].Entry == nil && groups[0].Coefficient == 0 {
		return []string{p.Zero}
	}

	tokens := make([]string, 0, len(groups)*4)

	for _, g := range groups {
		if g.Coefficient == 0 {
			continue
		}

		if g.Entry == nil {
			// The final-group conjunction applies only when no
			// hundreds part follows: "one lakh and one", but
			// "one lakh seven hundred and one".
			if len(tokens) > 0 && p.FinalConjunction != "" && g.Coefficient < 100 {
				tokens = append(tokens, p.FinalConjunction)
			}
			tokens = append(tokens, spellCoefficient(g.Coefficient, ctx, p)...)
			continue
		}

		word, gender := resolveScaleWord(g.Coefficient, g.Entry, p)

		if g.Entry.OmitOne && g.Coefficient == 1 {
			tokens = append(tokens, word)
			continue
		}

		cctx := spellCtx{gender: gender, beforeNoun: true}
		if cctx.gender == GenderNone {
			cctx.gender = ctx.gender
		}
		tokens = append(tokens, spellCoefficient(g.Coefficient, cctx, p)...)
		tokens = append(tokens, word)
	}

	return tokens
}

// spellCoefficient spells a group coefficient. Long-scale packs allow
// coefficients beyond the group base (Spanish "mil quinientos millones"),
// which recurse through decomposition over the lower scale entries.
func spellCoefficient(n int64, ctx spellCtx, p *LanguagePack) []string {
	if n < p.GroupBase {
		return spellSmall(n, ctx, p)
	}

	groups, err := decompose(big.NewInt(n), p)
	if err != nil {
		// Validation bounds every coefficient below the pack maximum.
		return nil
	}
	return assemble(groups, ctx, p)
}
