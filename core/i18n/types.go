package i18n

// M is a convenience type for variable maps used during interpolation.
// It maps placeholder names to their values.
type M map[string]any

// Style holds presentation attributes attached to an interpolated value,
// e.g. Style{"color": "red"}. The engine never interprets the attributes;
// rendering them is the caller's job.
type Style map[string]string

// Segment is one element of styled interpolation output. A nil Style marks
// plain literal text; a non-nil Style marks a substituted value that carries
// presentation attributes.
type Segment struct {
	Text  string
	Style Style
}

// Styled reports whether the segment carries presentation attributes.
func (s Segment) Styled() bool {
	return s.Style != nil
}

// DiagnosticKind classifies resolver diagnostics.
type DiagnosticKind int

const (
	// DiagnosticMissingKey reports a key that resolved to nothing in any
	// configured fallback; the caller displayed the key itself.
	DiagnosticMissingKey DiagnosticKind = iota
	// DiagnosticFallbackHit reports a lookup that succeeded only through a
	// namespace or language fallback rather than a direct hit.
	DiagnosticFallbackHit
	// DiagnosticMissingNamespace reports a configured fallback namespace
	// that holds no translations for the inspected language.
	DiagnosticMissingNamespace
)

// Diagnostic describes a single resolution event worth surfacing during
// development. Diagnostics are delivered through the handler registered with
// WithDiagnosticHandler; the resolver itself never logs.
type Diagnostic struct {
	Kind DiagnosticKind
	// Key is the key the caller asked for.
	Key string
	// Language is the language the caller asked for.
	Language string
	// UsedKey is the key that actually produced a value on a fallback hit.
	UsedKey string
	// UsedLanguage is the language that actually produced a value on a
	// fallback hit.
	UsedLanguage string
	// Namespace names the empty fallback namespace for
	// DiagnosticMissingNamespace events.
	Namespace string
}

// DiagnosticHandler receives resolver diagnostics.
type DiagnosticHandler func(Diagnostic)
