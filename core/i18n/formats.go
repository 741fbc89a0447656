package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale-aware number formatting built on golang.org/x/text. An unparsable
// language code degrades to the undetermined tag, which formats with plain
// English-style separators rather than failing.

// FormatNumber formats a floating-point number with the separators of the
// given language, e.g. 1234.5 as "1,234.5" for "en" and "1.234,5" for "de".
func FormatNumber(n float64, lang string) string {
	return message.NewPrinter(parseTag(lang)).Sprint(number.Decimal(n))
}

// FormatInt formats an integer with locale-appropriate digit grouping.
func FormatInt(n int, lang string) string {
	return message.NewPrinter(parseTag(lang)).Sprint(number.Decimal(n))
}

// FormatPercent formats a decimal fraction as a percentage, e.g. 0.5 as
// "50%" for "en".
func FormatPercent(n float64, lang string) string {
	return message.NewPrinter(parseTag(lang)).Sprint(number.Percent(n))
}

func parseTag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und
	}
	return tag
}
