package numwords

// fallbackString maps a non-finite or invalid input to its configured
// string. Runtime error conditions resolve to text, never to an error; the
// converter-level override applies to the invalid and NaN cases, which
// share the "not a number" register.
func (c *Converter) fallbackString(s specialValue) string {
	f := c.pack.Fallback
	switch s {
	case specialNaN:
		if c.fallbackText != "" {
			return c.fallbackText
		}
		return f.NaN
	case specialPosInf:
		return f.Infinity
	case specialNegInf:
		return f.NegativeInfinity
	default:
		if c.fallbackText != "" {
			return c.fallbackText
		}
		return f.Invalid
	}
}
