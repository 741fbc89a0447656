package i18n

// Translator provides a simplified translation interface with a fixed
// language and an optional namespace context. It wraps an I18n instance and
// eliminates the need to pass the language to every call, which is the shape
// request handlers want after the language has been detected once.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
}

// NewTranslator creates a Translator bound to the given language. An empty
// language falls back to the instance's default. The optional namespace is
// prefixed onto every key, so a translator bound to "common" resolves
// T("save") as "common.save".
func NewTranslator(i *I18n, language string, namespace ...string) *Translator {
	if i == nil {
		panic("i18n instance is not provided")
	}
	if language == "" {
		language = i.DefaultLanguage()
	}
	t := &Translator{
		i18n:     i,
		language: language,
	}
	if len(namespace) > 0 {
		t.namespace = namespace[0]
	}
	return t
}

// T translates a key in the translator's language context.
func (t *Translator) T(key string, vars ...M) string {
	return t.i18n.T(t.language, t.qualify(key), vars...)
}

// Tn translates a key with pluralization in the translator's language context.
func (t *Translator) Tn(key string, n int, vars ...M) string {
	return t.i18n.Tn(t.language, t.qualify(key), n, vars...)
}

// TStyled translates a key into a styled segment sequence in the
// translator's language context.
func (t *Translator) TStyled(key string, vars M, styles map[string]Style) []Segment {
	return t.i18n.TStyled(t.language, t.qualify(key), vars, styles)
}

// Language returns the language the translator is bound to.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the namespace prefix the translator applies, if any.
func (t *Translator) Namespace() string {
	return t.namespace
}

// FormatNumber formats a number with locale-appropriate separators,
// e.g. 1234.5 as "1,234.5" in English and "1.234,5" in German.
func (t *Translator) FormatNumber(n float64) string {
	return FormatNumber(n, t.language)
}

// FormatInt formats an integer with locale-appropriate grouping.
func (t *Translator) FormatInt(n int) string {
	return FormatInt(n, t.language)
}

// FormatPercent formats a decimal fraction as a locale-appropriate
// percentage, e.g. 0.5 as "50%" in English.
func (t *Translator) FormatPercent(n float64) string {
	return FormatPercent(n, t.language)
}

func (t *Translator) qualify(key string) string {
	if t.namespace == "" {
		return key
	}
	return t.namespace + "." + key
}
