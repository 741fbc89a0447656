package i18n_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/core/i18n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWithCatalogFile(t *testing.T) {
	t.Parallel()

	t.Run("loads json catalog", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "en.json", `{"common": {"save": "Save", "nested": {"deep": "Deep"}}}`)

		instance, err := i18n.New(i18n.WithCatalogFile(path))
		require.NoError(t, err)
		assert.Equal(t, "Save", instance.T("en", "common.save"))
		assert.Equal(t, "Deep", instance.T("en", "common.nested.deep"))
	})

	t.Run("loads yaml catalog", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "de.yaml", "common:\n  save: Speichern\n")

		instance, err := i18n.New(i18n.WithCatalogFile(path))
		require.NoError(t, err)
		assert.Equal(t, "Speichern", instance.T("de", "common.save"))
	})

	t.Run("loads toml catalog", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "fr.toml", "[common]\nsave = \"Enregistrer\"\n")

		instance, err := i18n.New(i18n.WithCatalogFile(path))
		require.NoError(t, err)
		assert.Equal(t, "Enregistrer", instance.T("fr", "common.save"))
	})

	t.Run("rejects file name that is not a language code", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "translations!.json", `{}`)

		_, err := i18n.New(i18n.WithCatalogFile(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a language code")
	})

	t.Run("rejects malformed catalog", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "en.json", `{"common": `)

		_, err := i18n.New(i18n.WithCatalogFile(path))
		require.Error(t, err)
	})

	t.Run("rejects arrays in catalog", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "en.json", `{"common": {"list": ["a", "b"]}}`)

		_, err := i18n.New(i18n.WithCatalogFile(path))
		require.Error(t, err)

		var unsupported i18n.UnsupportedValueError
		assert.ErrorAs(t, err, &unsupported)
	})
}

func TestWithCatalogDir(t *testing.T) {
	t.Parallel()

	t.Run("loads every supported file and derives languages", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "en.json", `{"common": {"hello": "Hello"}}`)
		writeFile(t, dir, "ko.yaml", "common:\n  hello: 안녕하세요\n")
		writeFile(t, dir, "README.md", "not a catalog")

		instance, err := i18n.New(i18n.WithCatalogDir(dir))
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "ko"}, instance.Languages())
		assert.Equal(t, "안녕하세요", instance.T("ko", "common.hello"))
	})

	t.Run("missing directory fails construction", func(t *testing.T) {
		_, err := i18n.New(i18n.WithCatalogDir(filepath.Join(t.TempDir(), "absent")))
		require.Error(t, err)
	})
}

func TestWithCatalogFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":    {Data: []byte("common:\n  bye: Bye\n")},
		"locales/pt-BR.json": {Data: []byte(`{"common": {"bye": "Tchau"}}`)},
	}

	instance, err := i18n.New(i18n.WithCatalogFS(fsys, "locales"))
	require.NoError(t, err)
	assert.Equal(t, "Bye", instance.T("en", "common.bye"))
	assert.Equal(t, "Tchau", instance.T("pt-br", "common.bye"))
}
