package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/polyglot/core/cookie"
	"github.com/dmitrymomot/polyglot/core/i18n"
)

type languageContextKey struct{}

type translatorContextKey struct{}

// LanguageConfig configures the language detection middleware.
type LanguageConfig struct {
	// I18n is the translation instance (required).
	I18n *i18n.I18n
	// Cookie reads the persisted preference. Nil disables the cookie signal
	// and detection falls back to the Accept-Language header alone.
	Cookie *cookie.Manager
	// Namespace binds the request translator to a namespace prefix.
	Namespace string
	// Persist writes the detected language back to the cookie when the
	// request carried no stored preference, so the choice sticks across
	// sessions even before the visitor switches explicitly.
	Persist bool
	// Skip defines a function to skip middleware execution for specific
	// requests.
	Skip func(r *http.Request) bool
}

// Language creates a detection middleware with default configuration.
func Language(instance *i18n.I18n, cookies *cookie.Manager) func(http.Handler) http.Handler {
	return LanguageWithConfig(LanguageConfig{
		I18n:   instance,
		Cookie: cookies,
	})
}

// LanguageWithConfig creates a middleware that determines the request
// language (stored preference first, then Accept-Language, then the default
// language) and stores the language and a bound Translator in the request
// context.
func LanguageWithConfig(cfg LanguageConfig) func(http.Handler) http.Handler {
	if cfg.I18n == nil {
		panic("language middleware: i18n instance is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var stored string
			if cfg.Cookie != nil {
				if value, err := cfg.Cookie.Read(r); err == nil {
					stored = value
				}
			}

			lang := cfg.I18n.DetectLanguage(stored, r.Header.Get("Accept-Language"))

			if cfg.Persist && cfg.Cookie != nil && stored == "" {
				cfg.Cookie.Write(w, lang)
			}

			translator := i18n.NewTranslator(cfg.I18n, lang, cfg.Namespace)

			ctx := context.WithValue(r.Context(), languageContextKey{}, lang)
			ctx = context.WithValue(ctx, translatorContextKey{}, translator)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLanguage retrieves the detected language from the context. Returns ""
// when the middleware did not run.
func GetLanguage(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	return lang
}

// GetTranslator retrieves the request-scoped translator from the context.
// Returns the translator and a boolean indicating whether it was found.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(translatorContextKey{}).(*i18n.Translator)
	return translator, ok
}
