package cookie

import (
	"net/http"
	"net/url"
)

// DefaultName is the cookie name used when none is configured.
const DefaultName = "lang"

// defaultMaxAge keeps the stored preference for one year.
const defaultMaxAge = 365 * 24 * 60 * 60

// Manager reads and writes the persisted language preference cookie. It is
// immutable after creation and safe for concurrent use. The manager only
// moves the raw value between the HTTP layer and the resolution engine; it
// never validates the value against available languages, which is the
// engine's job.
type Manager struct {
	name string
	opts Options
}

// Options configures the attributes written with the preference cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// New creates a cookie manager for the given cookie name. An empty name
// falls back to DefaultName.
func New(name string, opts ...Option) *Manager {
	m := &Manager{
		name: name,
		opts: Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			HTTPOnly: false, // language switchers flip it client-side
			SameSite: http.SameSiteLaxMode,
		},
	}
	if m.name == "" {
		m.name = DefaultName
	}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

// Name returns the configured cookie name.
func (m *Manager) Name() string {
	return m.name
}

// Read returns the percent-decoded language preference from the request, or
// ErrNotFound when the cookie is absent. A value that fails to decode is
// returned raw rather than dropped; the engine treats unknown values as
// unmatched anyway.
func (m *Manager) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(m.name)
	if err != nil {
		return "", ErrNotFound
	}
	if decoded, err := url.QueryUnescape(c.Value); err == nil {
		return decoded, nil
	}
	return c.Value, nil
}

// Write stores the language preference on the response with the configured
// attributes. The value is percent-encoded.
func (m *Manager) Write(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    url.QueryEscape(lang),
		Path:     m.opts.Path,
		Domain:   m.opts.Domain,
		MaxAge:   m.opts.MaxAge,
		Secure:   m.opts.Secure,
		HttpOnly: m.opts.HTTPOnly,
		SameSite: m.opts.SameSite,
	})
}

// Clear deletes the stored preference.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     m.opts.Path,
		Domain:   m.opts.Domain,
		MaxAge:   -1,
		Secure:   m.opts.Secure,
		HttpOnly: m.opts.HTTPOnly,
		SameSite: m.opts.SameSite,
	})
}
