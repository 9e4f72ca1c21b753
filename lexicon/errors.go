package lexicon

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// Wrapped with context at the return site; test with errors.Is.
var (
	// ErrNotFound indicates the lexicon file does not exist.
	ErrNotFound = errors.New("lexicon: file not found")

	// ErrMalformedRow indicates a row without the word,pinyin shape.
	ErrMalformedRow = errors.New("lexicon: malformed row")
)
