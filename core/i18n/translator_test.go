package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/core/i18n"
)

func newTestInstance(t *testing.T) *i18n.I18n {
	t.Helper()
	instance, err := i18n.New(
		i18n.WithTranslations("en", map[string]any{
			"common": map[string]any{
				"greeting": "Hi {{name}}!",
				"items_plural": map[string]string{
					"one":   "{{count}} item",
					"other": "{{count}} items",
				},
			},
		}),
		i18n.WithTranslations("de", map[string]any{
			"common": map[string]any{"greeting": "Hallo {{name}}!"},
		}),
	)
	require.NoError(t, err)
	return instance
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	t.Run("binds language context", func(t *testing.T) {
		translator := i18n.NewTranslator(newTestInstance(t), "de")
		assert.Equal(t, "de", translator.Language())
		assert.Equal(t, "Hallo Ann!", translator.T("common.greeting", i18n.M{"name": "Ann"}))
	})

	t.Run("empty language falls back to default", func(t *testing.T) {
		translator := i18n.NewTranslator(newTestInstance(t), "")
		assert.Equal(t, "en", translator.Language())
	})

	t.Run("namespace prefix is applied to keys", func(t *testing.T) {
		translator := i18n.NewTranslator(newTestInstance(t), "en", "common")
		assert.Equal(t, "common", translator.Namespace())
		assert.Equal(t, "Hi Ann!", translator.T("greeting", i18n.M{"name": "Ann"}))
		assert.Equal(t, "3 items", translator.Tn("items", 3))
	})

	t.Run("styled translation delegates to the instance", func(t *testing.T) {
		translator := i18n.NewTranslator(newTestInstance(t), "en")
		segments := translator.TStyled("common.greeting", i18n.M{"name": "Ann"}, map[string]i18n.Style{
			"name": {"color": "red"},
		})
		require.Len(t, segments, 3)
		assert.Equal(t, "Hi ", segments[0].Text)
		assert.Equal(t, "Ann", segments[1].Text)
		assert.True(t, segments[1].Styled())
		assert.Equal(t, "!", segments[2].Text)
	})

	t.Run("panics without an instance", func(t *testing.T) {
		assert.Panics(t, func() { i18n.NewTranslator(nil, "en") })
	})
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	t.Run("english grouping", func(t *testing.T) {
		assert.Equal(t, "1,234.5", i18n.FormatNumber(1234.5, "en"))
	})

	t.Run("german grouping", func(t *testing.T) {
		assert.Equal(t, "1.234,5", i18n.FormatNumber(1234.5, "de"))
	})

	t.Run("integer grouping", func(t *testing.T) {
		assert.Equal(t, "1,000,000", i18n.FormatInt(1000000, "en"))
	})

	t.Run("percent", func(t *testing.T) {
		assert.Equal(t, "50%", i18n.FormatPercent(0.5, "en"))
	})

	t.Run("unparsable language degrades instead of failing", func(t *testing.T) {
		assert.NotEmpty(t, i18n.FormatNumber(1234.5, "!!"))
	})

	t.Run("translator delegates with its bound language", func(t *testing.T) {
		translator := i18n.NewTranslator(newTestInstance(t), "de")
		assert.Equal(t, "1.234,5", translator.FormatNumber(1234.5))
	})
}
