package numwords

import "errors"

// ErrMagnitudeOverflow indicates the integer magnitude exceeds the largest
// scale the language pack defines. This is the only per-call error surfaced
// to callers; truncating would produce a numerically wrong answer.
var ErrMagnitudeOverflow = errors.New("numwords: magnitude exceeds largest defined scale")

// ErrInvalidPack marks a malformed language pack, detected at load or
// registration time.
var ErrInvalidPack = errors.New("numwords: invalid language pack")

// ErrUnknownLocale indicates no registered pack matches the requested
// locale or any of its parents.
var ErrUnknownLocale = errors.New("numwords: unknown locale")
