package i18n

import (
	"maps"
	"strings"
)

// PluralRule maps a count to a grammatical-number category following Unicode
// CLDR guidelines. Rules operate on the absolute value of the count.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// pluralSelectOrder is the fixed fallback order consulted when the exact
// category has no template.
var pluralSelectOrder = []string{PluralOther, PluralOne, PluralFew, PluralMany, PluralTwo, PluralZero}

// pluralKeySuffix is the sibling-key convention for plural forms: the
// templates for base key "items" live under "items_plural.<category>".
const pluralKeySuffix = "_plural"

// EnglishPluralRule implements plural rules for English.
// Categories: one (1), other (everything else, including 0).
var EnglishPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// GermanicPluralRule implements plural rules for Germanic languages
// (German, Dutch, Swedish, Norwegian, Danish). Same shape as English.
var GermanicPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// RomancePluralRule implements plural rules for Romance languages
// (French, Spanish, Italian, Portuguese). Zero is singular in French,
// which is the distinguishing case of the family.
// Categories: one (0, 1), many (1,000,000+), other.
var RomancePluralRule PluralRule = func(n int) string {
	a := abs(n)
	if a == 0 || a == 1 {
		return PluralOne
	}
	if a >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// SlavicPluralRule implements plural rules for Slavic languages
// (Russian, Ukrainian, Polish, Czech, and similar), using the classic
// mod-10/mod-100 predicates.
// Categories: one (21, 31, ... but not 11), few (2-4, 22-24, ... but not
// 12-14), many (everything else, including 0 and the teens).
var SlavicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	mod10 := a % 10
	mod100 := a % 100

	if mod10 == 1 && mod100 != 11 {
		return PluralOne
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// ArabicPluralRule implements the full six-category scheme for Arabic.
// Categories: zero (0), one (1), two (2), few (3-10), many (11-99),
// other (100 and up).
var ArabicPluralRule PluralRule = func(n int) string {
	switch a := abs(n); {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a == 2:
		return PluralTwo
	case a >= 3 && a <= 10:
		return PluralFew
	case a >= 11 && a <= 99:
		return PluralMany
	default:
		return PluralOther
	}
}

// AsianPluralRule implements plural rules for languages without a
// grammatical plural distinction (Japanese, Chinese, Korean, Thai,
// Vietnamese, Indonesian). Every count is "other".
var AsianPluralRule PluralRule = func(n int) string {
	return PluralOther
}

// DefaultPluralRule is used for languages without a registered rule. The
// one/other split covers the widest share of languages, so it is the least
// surprising default.
var DefaultPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// GetPluralRuleForLanguage returns the plural rule for a language code using
// the two-letter ISO 639-1 primary subtag. Unknown languages fall back to
// DefaultPluralRule.
func GetPluralRuleForLanguage(lang string) PluralRule {
	if len(lang) >= 2 {
		lang = strings.ToLower(lang[:2])
	}

	switch lang {
	case "en":
		return EnglishPluralRule

	// Slavic languages
	case "ru", "uk", "be", "pl", "cs", "sk", "hr", "sr", "bs":
		return SlavicPluralRule

	// Romance languages
	case "fr", "es", "it", "pt", "ro":
		return RomancePluralRule

	// Germanic languages
	case "de", "nl", "sv", "no", "da", "is":
		return GermanicPluralRule

	// Languages without plural forms
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule

	case "ar":
		return ArabicPluralRule

	default:
		return DefaultPluralRule
	}
}

// SelectPlural picks the template for a category from a plural options map.
// When the exact category is absent, the fixed fallback order
// other, one, few, many, two, zero is consulted; an empty string means the
// options map had nothing usable ("other" should always be present).
func SelectPlural(category string, options map[string]string) string {
	if template, ok := options[category]; ok {
		return template
	}
	for _, form := range pluralSelectOrder {
		if form == category {
			continue
		}
		if template, ok := options[form]; ok {
			return template
		}
	}
	return ""
}

// Category returns the plural category for a count in the given language,
// using the registered rule or, failing that, the rule inferred from the
// language code. Plural grammar belongs to the requested language, so the
// default language's rule is deliberately not consulted here.
func (i *I18n) Category(n int, lang string) string {
	rule, exists := i.pluralRules[lang]
	if !exists {
		rule = GetPluralRuleForLanguage(lang)
	}
	return rule(n)
}

// Tn retrieves a pluralized translation for the given count. The plural
// templates live under the "<key>_plural.<category>" sibling keys; the
// category is chosen by the language's plural rule and missing categories
// degrade through the fixed fallback order. The count is injected into the
// variables map as {{count}} automatically. When no plural template exists
// at all, the base key is tried as a plain translation before giving up and
// returning the key itself.
func (i *I18n) Tn(lang, key string, n int, vars ...M) string {
	category := i.Category(n, lang)

	template, found := i.resolvePluralForm(lang, key, category)
	if !found {
		// No plural options anywhere in the fallback order; fall back to
		// the base key as a plain translation.
		template, found = i.Resolve(lang, key)
	}
	if !found {
		i.reportMissing(lang, key)
		return key
	}

	merged := M{"count": n}
	for _, v := range vars {
		maps.Copy(merged, v)
	}
	return Interpolate(template, merged)
}

// resolvePluralForm tries the exact category and then the fixed fallback
// order against the full namespace/language fallback resolver.
func (i *I18n) resolvePluralForm(lang, key, category string) (string, bool) {
	prefix := key + pluralKeySuffix + "."

	if template, ok := i.Resolve(lang, prefix+category); ok {
		return template, true
	}
	for _, form := range pluralSelectOrder {
		if form == category {
			continue
		}
		if template, ok := i.Resolve(lang, prefix+form); ok {
			return template, true
		}
	}
	return "", false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
