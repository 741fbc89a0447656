package i18n

import (
	"errors"
	"fmt"
)

// Error variables define construction-time failure scenarios. Lookup misses
// are never errors: an unknown key, a missing variable, or a malformed
// Accept-Language header are expected runtime conditions and degrade softly.
var (
	// ErrEmptyLanguage indicates an empty language code was supplied.
	ErrEmptyLanguage = errors.New("language cannot be empty")

	// ErrEmptyNamespace indicates an empty namespace was supplied to a
	// fallback chain option.
	ErrEmptyNamespace = errors.New("namespace cannot be empty")

	// ErrNilPluralRule indicates a nil plural rule was registered.
	ErrNilPluralRule = errors.New("plural rule cannot be nil")

	// ErrFallbackCycle indicates the fallback configuration references
	// itself, directly or transitively. Chains are consulted as flat lists
	// at lookup time, so a cycle cannot loop, but it is always a
	// configuration mistake and is rejected up front.
	ErrFallbackCycle = errors.New("fallback configuration contains a cycle")
)

// UnsupportedValueError reports a value in a nested translation map that the
// flattener refuses to accept, such as an array where a string or a nested
// map was expected. This is a programming or catalog mistake, so construction
// fails rather than degrading.
type UnsupportedValueError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value of type %T at translation key %q", e.Value, e.Key)
}
