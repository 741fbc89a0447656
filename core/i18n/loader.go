package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog files are named by language code, e.g. locales/en.yaml,
// locales/pt-BR.json, locales/de.toml. The extension picks the parser and
// the stem is the language the translations load under.

// WithCatalogFile loads one catalog file. The language code comes from the
// file name and is validated as a BCP 47 tag, so a typo in the file name
// fails construction instead of silently creating an unreachable language.
func WithCatalogFile(path string) Option {
	return func(i *I18n) error {
		lang, err := languageFromFilename(path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", path, err)
		}

		translations, err := parseCatalog(path, data)
		if err != nil {
			return err
		}

		return WithTranslations(lang, translations)(i)
	}
}

// WithCatalogDir loads every catalog file in a directory tree. Files with
// unknown extensions are skipped so locale directories can carry README or
// license files.
func WithCatalogDir(dir string) Option {
	return func(i *I18n) error {
		return loadCatalogFS(i, os.DirFS(dir), ".")
	}
}

// WithCatalogFS loads catalog files from an fs.FS rooted at dir, which makes
// embedded locales (go:embed) work the same way as on-disk ones.
func WithCatalogFS(fsys fs.FS, dir string) Option {
	return func(i *I18n) error {
		return loadCatalogFS(i, fsys, dir)
	}
}

func loadCatalogFS(i *I18n, fsys fs.FS, dir string) error {
	return fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supportedCatalogExt(filepath.Ext(path)) {
			return nil
		}

		lang, err := languageFromFilename(path)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", path, err)
		}

		translations, err := parseCatalog(path, data)
		if err != nil {
			return err
		}

		return WithTranslations(lang, translations)(i)
	})
}

func supportedCatalogExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// languageFromFilename derives and validates the language code from a
// catalog file name, e.g. "locales/pt-BR.yaml" yields "pt-br".
func languageFromFilename(path string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, err := language.Parse(stem); err != nil {
		return "", fmt.Errorf("catalog %s: file name is not a language code: %w", path, err)
	}
	return strings.ToLower(stem), nil
}

// parseCatalog unmarshals catalog bytes into the nested map the flattener
// accepts, choosing the parser by file extension.
func parseCatalog(path string, data []byte) (map[string]any, error) {
	var translations map[string]any
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &translations)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &translations)
	case ".toml":
		err = toml.Unmarshal(data, &translations)
	default:
		return nil, fmt.Errorf("catalog %s: unsupported file extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return translations, nil
}
