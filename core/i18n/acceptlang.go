package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header length before parsing. RFC 7231
// sets no limit, but 4KB is generous for legitimate headers and keeps a
// hostile client from feeding the parser arbitrary amounts of input.
const maxAcceptLanguageLength = 4096

// languageTag represents a parsed Accept-Language entry with its quality value.
type languageTag struct {
	tag     string
	quality float64
}

// MatchAcceptLanguage parses an Accept-Language header and returns the best
// match from the available languages, or "" when nothing matches. Entries
// are ranked by quality descending; entries with equal quality keep their
// original order, so the first-listed wins ties. Each entry is tried as an
// exact match first, then by its primary subtag, then as a prefix of an
// available language ("zh" matching "zh-Hant"). Matching is
// case-insensitive and tolerates whitespace around separators. Malformed
// entries are skipped rather than failing the whole header.
func MatchAcceptLanguage(header string, available []string) string {
	if header == "" || len(available) == 0 {
		return ""
	}

	for _, tag := range parseLanguageTags(header) {
		// Exact match of the full code.
		for _, avail := range available {
			if normalizeLanguageTag(avail) == tag.tag {
				return avail
			}
		}

		primary := tag.tag
		if idx := strings.Index(primary, "-"); idx != -1 {
			primary = primary[:idx]
		}

		// Primary subtag match ("ko-KR" finding "ko").
		for _, avail := range available {
			if normalizeLanguageTag(avail) == primary {
				return avail
			}
		}

		// Available language starting with the primary subtag
		// ("zh" finding "zh-Hant").
		for _, avail := range available {
			if strings.HasPrefix(normalizeLanguageTag(avail), primary+"-") {
				return avail
			}
		}
	}

	return ""
}

// parseLanguageTags splits an Accept-Language header into tags with quality
// values, sorted stably by quality descending. An absent or unparsable
// q parameter means 1.0; out-of-range values are ignored the same way.
func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart := part

		if idx := strings.Index(part, ";"); idx != -1 {
			langPart = strings.TrimSpace(part[:idx])
			qPart := strings.TrimSpace(part[idx+1:])

			if after, found := strings.CutPrefix(qPart, "q="); found {
				if q, err := strconv.ParseFloat(strings.TrimSpace(after), 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{
				tag:     normalizeLanguageTag(langPart),
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

// normalizeLanguageTag normalizes a language tag to lowercase with
// surrounding whitespace removed.
func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
