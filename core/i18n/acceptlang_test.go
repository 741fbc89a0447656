package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/polyglot/core/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	t.Run("quality ranking picks the highest q", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage("en;q=0.5,ko;q=0.9,ja;q=0.7", []string{"en", "ko", "ja"})
		assert.Equal(t, "ko", got)
	})

	t.Run("region subtag is stripped to find the base language", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage("ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7", []string{"en", "ko"})
		assert.Equal(t, "ko", got)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, i18n.MatchAcceptLanguage("fr-FR,fr;q=0.9", []string{"en", "ko"}))
	})

	t.Run("missing q means 1.0", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage("ja,en;q=0.9", []string{"en", "ja"})
		assert.Equal(t, "ja", got)
	})

	t.Run("equal quality keeps listed order", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage("de;q=0.8,ja;q=0.8", []string{"ja", "de"})
		assert.Equal(t, "de", got)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage("EN-us", []string{"en"})
		assert.Equal(t, "en", got)
	})

	t.Run("whitespace around separators is tolerated", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage(" ko ; q=0.9 , en ; q=0.5 ", []string{"en", "ko"})
		assert.Equal(t, "ko", got)
	})

	t.Run("primary subtag matches regional availability", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage("zh", []string{"en", "zh-Hant"})
		assert.Equal(t, "zh-Hant", got)
	})

	t.Run("malformed entries are skipped, not fatal", func(t *testing.T) {
		got := i18n.MatchAcceptLanguage(",,;q=,ko;q=0.9,;;", []string{"ko"})
		assert.Equal(t, "ko", got)
	})

	t.Run("invalid q values are ignored", func(t *testing.T) {
		// q=5 is out of range and treated as 1.0, same as q=bogus.
		got := i18n.MatchAcceptLanguage("de;q=bogus,en;q=0.2", []string{"en", "de"})
		assert.Equal(t, "de", got)
	})

	t.Run("empty inputs return empty", func(t *testing.T) {
		assert.Empty(t, i18n.MatchAcceptLanguage("", []string{"en"}))
		assert.Empty(t, i18n.MatchAcceptLanguage("en", nil))
	})

	t.Run("oversized header is truncated, not rejected", func(t *testing.T) {
		header := "ko;q=0.9," + strings.Repeat("x", 5000)
		got := i18n.MatchAcceptLanguage(header, []string{"ko"})
		assert.Equal(t, "ko", got)
	})

	t.Run("wildcard entry is ignored", func(t *testing.T) {
		assert.Empty(t, i18n.MatchAcceptLanguage("*", []string{"en"}))
	})
}
