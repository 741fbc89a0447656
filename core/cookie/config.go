package cookie

import (
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"
)

// Config provides environment-based configuration for the preference cookie.
type Config struct {
	Name     string        `env:"LANG_COOKIE_NAME" envDefault:"lang"`
	Path     string        `env:"LANG_COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"LANG_COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"LANG_COOKIE_MAX_AGE" envDefault:"31536000"` // 1 year
	Secure   bool          `env:"LANG_COOKIE_SECURE" envDefault:"false"`
	HTTPOnly bool          `env:"LANG_COOKIE_HTTP_ONLY" envDefault:"false"`
	SameSite http.SameSite `env:"LANG_COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cookie config: %w", err)
	}
	return cfg, nil
}

// Manager builds a cookie manager from the configuration.
func (c Config) Manager() *Manager {
	return New(c.Name,
		WithPath(c.Path),
		WithDomain(c.Domain),
		WithMaxAge(c.MaxAge),
		WithSecure(c.Secure),
		WithHTTPOnly(c.HTTPOnly),
		WithSameSite(c.SameSite),
	)
}
