package i18n

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config provides environment-based configuration for an I18n instance.
type Config struct {
	// DefaultLanguage is the final fallback language.
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	// Languages lists the supported language codes. Empty means the list is
	// derived from the loaded catalogs.
	Languages []string `env:"I18N_LANGUAGES" envSeparator:","`
	// CatalogDir points at a directory of <lang>.{json,yaml,yml,toml}
	// catalog files to load. Empty skips file loading.
	CatalogDir string `env:"I18N_CATALOG_DIR"`
	// DefaultNamespace is tried for keys without a namespace prefix.
	DefaultNamespace string `env:"I18N_DEFAULT_NAMESPACE"`
}

var loadDotEnv sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded once per process before the first read, matching the
// usual development setup.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		// Missing .env is the normal production case, not an error.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse i18n config: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into construction options for New.
func (c Config) Options() []Option {
	opts := []Option{WithDefaultLanguage(c.DefaultLanguage)}
	if len(c.Languages) > 0 {
		opts = append(opts, WithLanguages(c.Languages...))
	}
	if c.DefaultNamespace != "" {
		opts = append(opts, WithDefaultNamespace(c.DefaultNamespace))
	}
	if c.CatalogDir != "" {
		opts = append(opts, WithCatalogDir(c.CatalogDir))
	}
	return opts
}
