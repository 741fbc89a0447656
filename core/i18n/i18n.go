package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n resolves translation keys across per-language dictionaries with
// namespace and language fallback. It is immutable after creation, making it
// safe for concurrent use: every lookup is a pure read over maps built at
// construction time.
type I18n struct {
	// Flattened translations for O(1) lookups, keyed "lang:key.path".
	translations map[string]string

	// Namespaces present per language, used to diagnose fallback chains
	// that point at namespaces with no translations.
	namespaces map[string]map[string]bool

	// Namespace fallback chains: namespace -> ordered alternatives.
	fallbackChain map[string][]string

	// Language fallback chains: language -> ordered alternatives.
	languageFallback map[string][]string

	// Namespace tried for keys that carry no namespace prefix.
	defaultNamespace string

	// Plural rules per language.
	pluralRules map[string]PluralRule

	defaultLang string

	// Pre-computed list of available languages, default language first.
	languages []string

	// Languages seen in WithTranslations, before ordering.
	langSet map[string]bool

	// Optional diagnostics sink; nil disables all reporting.
	diagnostics DiagnosticHandler
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options. All configuration
// happens during construction, making the instance immutable and thread-safe
// from creation. Fallback chains are validated for cycles and
// self-references, which are always configuration mistakes.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations:     make(map[string]string),
		namespaces:       make(map[string]map[string]bool),
		fallbackChain:    make(map[string][]string),
		languageFallback: make(map[string][]string),
		pluralRules:      make(map[string]PluralRule),
		langSet:          make(map[string]bool),
		defaultLang:      DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	if node, ok := findCycle(i.fallbackChain); ok {
		return nil, fmt.Errorf("%w: namespace %q", ErrFallbackCycle, node)
	}
	if node, ok := findCycle(i.languageFallback); ok {
		return nil, fmt.Errorf("%w: language %q", ErrFallbackCycle, node)
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithDefaultNamespace sets the namespace tried for keys without a namespace
// prefix, so T(lang, "title") can find "common.title".
func WithDefaultNamespace(namespace string) Option {
	return func(i *I18n) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.defaultNamespace = namespace
		return nil
	}
}

// WithFallbackChain registers the ordered list of namespaces tried when a
// key's own namespace misses. Only the first namespace that has the key is
// used; partial translations are never merged across chain entries.
func WithFallbackChain(namespace string, chain ...string) Option {
	return func(i *I18n) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		for _, ns := range chain {
			if ns == "" {
				return ErrEmptyNamespace
			}
		}
		i.fallbackChain[namespace] = append([]string(nil), chain...)
		return nil
	}
}

// WithLanguageFallback registers the ordered list of languages tried when a
// key cannot be found in the requested language.
func WithLanguageFallback(lang string, chain ...string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		for _, l := range chain {
			if l == "" {
				return ErrEmptyLanguage
			}
		}
		i.languageFallback[lang] = append([]string(nil), chain...)
		return nil
	}
}

// WithPluralRule registers a custom plural rule for a language, overriding
// the rule inferred from the language code.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithLanguages sets the supported languages for the I18n instance. The
// default language is always included and placed first; other languages are
// sorted alphabetically. When omitted, the language list is derived from the
// languages that translations were loaded for.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}

		i.languages = make([]string, 0, len(langSet)+1)
		i.languages = append(i.languages, i.defaultLang)
		delete(langSet, i.defaultLang)

		if len(langSet) > 0 {
			otherLangs := make([]string, 0, len(langSet))
			for lang := range langSet {
				otherLangs = append(otherLangs, lang)
			}
			sort.Strings(otherLangs)
			i.languages = append(i.languages, otherLangs...)
		}

		return nil
	}
}

// WithDiagnosticHandler sets the sink for resolver diagnostics: fallback
// hits, missing keys, and fallback namespaces that hold no translations.
// Leaving it unset disables reporting entirely; the resolver never logs on
// its own.
func WithDiagnosticHandler(handler DiagnosticHandler) Option {
	return func(i *I18n) error {
		i.diagnostics = handler
		return nil
	}
}

// WithTranslations loads a nested translation map for a language. Top-level
// keys act as namespaces for fallback purposes. The map is flattened into
// dot-notation keys; see flattenTranslations for the accepted shapes.
func WithTranslations(lang string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if len(translations) == 0 {
			return nil
		}

		flattened, err := flattenTranslations(translations, "")
		if err != nil {
			return fmt.Errorf("translations for %q: %w", lang, err)
		}

		for key, value := range flattened {
			i.translations[buildKey(lang, key)] = value
			if ns, _, ok := strings.Cut(key, "."); ok {
				if i.namespaces[lang] == nil {
					i.namespaces[lang] = make(map[string]bool)
				}
				i.namespaces[lang][ns] = true
			}
		}
		i.langSet[lang] = true

		// Auto-apply plural rule based on language if not set.
		if _, exists := i.pluralRules[lang]; !exists {
			i.pluralRules[lang] = GetPluralRuleForLanguage(lang)
		}

		return nil
	}
}

// T retrieves a translation for the given language and key, runs it through
// the interpolator, and returns the result. A key that resolves to nothing
// anywhere in the fallback configuration is returned as-is: a missing
// translation is never a hard failure.
func (i *I18n) T(lang, key string, vars ...M) string {
	if template, ok := i.Resolve(lang, key); ok {
		return interpolateMerged(template, vars...)
	}
	i.reportMissing(lang, key)
	return key
}

// TStyled retrieves a translation and interpolates it into a segment
// sequence, attaching the registered style to each substituted variable. A
// missing key yields a single plain segment holding the key itself.
func (i *I18n) TStyled(lang, key string, vars M, styles map[string]Style) []Segment {
	if template, ok := i.Resolve(lang, key); ok {
		return InterpolateStyled(template, vars, styles)
	}
	i.reportMissing(lang, key)
	return []Segment{{Text: key}}
}

// Resolve looks a key up through the full fallback order and returns the raw
// template: direct hit, then namespace fallback and default namespace in the
// requested language, then the same steps for each configured fallback
// language. The first hit wins. The boolean is false when nothing matched.
func (i *I18n) Resolve(lang, key string) (string, bool) {
	if value, usedKey, ok := i.lookup(lang, key); ok {
		if usedKey != key {
			i.report(Diagnostic{
				Kind:         DiagnosticFallbackHit,
				Key:          key,
				Language:     lang,
				UsedKey:      usedKey,
				UsedLanguage: lang,
			})
		}
		return value, true
	}

	for _, fallbackLang := range i.languageFallback[lang] {
		if value, usedKey, ok := i.lookup(fallbackLang, key); ok {
			i.report(Diagnostic{
				Kind:         DiagnosticFallbackHit,
				Key:          key,
				Language:     lang,
				UsedKey:      usedKey,
				UsedLanguage: fallbackLang,
			})
			return value, true
		}
	}

	return "", false
}

// lookup runs the single-language steps: direct hit, namespace fallback
// chain for prefixed keys, default namespace for bare keys.
func (i *I18n) lookup(lang, key string) (value, usedKey string, ok bool) {
	if v, exists := i.translations[buildKey(lang, key)]; exists {
		return v, key, true
	}

	if namespace, rest, hasNS := strings.Cut(key, "."); hasNS {
		for _, fallbackNS := range i.fallbackChain[namespace] {
			if !i.namespaces[lang][fallbackNS] {
				i.report(Diagnostic{
					Kind:      DiagnosticMissingNamespace,
					Key:       key,
					Language:  lang,
					Namespace: fallbackNS,
				})
				continue
			}
			candidate := fallbackNS + "." + rest
			if v, exists := i.translations[buildKey(lang, candidate)]; exists {
				return v, candidate, true
			}
		}
		return "", "", false
	}

	if i.defaultNamespace != "" {
		candidate := i.defaultNamespace + "." + key
		if v, exists := i.translations[buildKey(lang, candidate)]; exists {
			return v, candidate, true
		}
	}

	return "", "", false
}

// Languages returns all configured languages, default language first. The
// list is pre-computed during construction, so this is an O(1) read.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the configured default language code.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// HasLanguage reports whether the given code is one of the configured
// languages. The comparison is case-insensitive.
func (i *I18n) HasLanguage(lang string) bool {
	norm := normalizeLanguageTag(lang)
	for _, l := range i.languages {
		if normalizeLanguageTag(l) == norm {
			return true
		}
	}
	return false
}

// DetectLanguage picks the initial language from client signals. A stored
// preference (typically a persisted cookie value) always wins when it names
// a configured language; otherwise the Accept-Language header is matched
// against the configured languages; the default language is the final
// fallback.
func (i *I18n) DetectLanguage(storedPreference, acceptLanguage string) string {
	if storedPreference != "" {
		norm := normalizeLanguageTag(storedPreference)
		for _, l := range i.languages {
			if normalizeLanguageTag(l) == norm {
				return l
			}
		}
	}

	if lang := MatchAcceptLanguage(acceptLanguage, i.languages); lang != "" {
		return lang
	}

	return i.defaultLang
}

func (i *I18n) report(d Diagnostic) {
	if i.diagnostics != nil {
		i.diagnostics(d)
	}
}

func (i *I18n) reportMissing(lang, key string) {
	i.report(Diagnostic{
		Kind:     DiagnosticMissingKey,
		Key:      key,
		Language: lang,
	})
}

// buildLanguagesList builds the pre-computed language list. Called once
// during construction after all options are applied.
func (i *I18n) buildLanguagesList() []string {
	// Explicit WithLanguages wins.
	if len(i.languages) > 0 {
		return i.languages
	}

	langs := []string{i.defaultLang}
	others := make([]string, 0, len(i.langSet))
	for lang := range i.langSet {
		if lang != i.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	return append(langs, others...)
}

// buildKey creates a composite key for the translations map.
func buildKey(lang, key string) string {
	return lang + ":" + key
}

// findCycle reports a node that can reach itself in the given adjacency
// lists. Resolution walks chains as flat lists and cannot loop, but a cycle
// still means the configuration does not say what its author intended.
func findCycle(graph map[string][]string) (string, bool) {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(graph))

	var visit func(node string) (string, bool)
	visit = func(node string) (string, bool) {
		state[node] = inStack
		for _, next := range graph[node] {
			switch state[next] {
			case inStack:
				return next, true
			case unvisited:
				if n, found := visit(next); found {
					return n, true
				}
			}
		}
		state[node] = done
		return "", false
	}

	for node := range graph {
		if state[node] == unvisited {
			if n, found := visit(node); found {
				return n, true
			}
		}
	}
	return "", false
}
