package i18n

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// tokenPattern matches {{identifier}} interpolation tokens. Identifiers are
// word characters only; nested or computed expressions are not supported.
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Interpolate substitutes {{name}} tokens in a template with values from the
// variables map. A token whose variable is absent or nil is left verbatim,
// braces included; that is the only fallback for missing variables, and it
// is never an error.
func Interpolate(template string, vars M) string {
	if len(vars) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := vars[name]; ok && value != nil {
			return fmt.Sprintf("%v", value)
		}
		return token
	})
}

// InterpolateStyled substitutes {{name}} tokens and returns the result as an
// ordered segment sequence instead of a single string. Literal text and
// unstyled substitutions come out as plain segments (adjacent plain text is
// merged); a substituted variable with an entry in styles becomes an
// attributed segment carrying the value and its presentation attributes.
// Missing variables stay verbatim in the surrounding plain text, exactly as
// in Interpolate.
func InterpolateStyled(template string, vars M, styles map[string]Style) []Segment {
	matches := tokenPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		if template == "" {
			return nil
		}
		return []Segment{{Text: template}}
	}

	var segments []Segment
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		name := template[m[2]:m[3]]

		plain.WriteString(template[last:start])
		last = end

		value, ok := vars[name]
		if !ok || value == nil {
			// Unresolved token stays literal.
			plain.WriteString(template[start:end])
			continue
		}

		text := fmt.Sprintf("%v", value)
		if style, styled := styles[name]; styled {
			flushPlain()
			segments = append(segments, Segment{Text: text, Style: style})
		} else {
			plain.WriteString(text)
		}
	}
	plain.WriteString(template[last:])
	flushPlain()

	return segments
}

// interpolateMerged merges the variadic variable maps and interpolates.
// Later maps win on key conflicts.
func interpolateMerged(template string, vars ...M) string {
	switch len(vars) {
	case 0:
		return template
	case 1:
		return Interpolate(template, vars[0])
	}

	merged := make(M)
	for _, v := range vars {
		maps.Copy(merged, v)
	}
	return Interpolate(template, merged)
}
