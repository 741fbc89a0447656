// Package i18n provides translation resolution with namespace and language
// fallback, variable interpolation, Accept-Language matching, and
// CLDR-style pluralization.
//
// Instances are configured entirely at construction time and are immutable
// afterwards, so any number of concurrent request handlers can share one
// instance without locking. Incomplete translations are never a failure:
// a key that resolves to nothing is returned as the displayed string, a
// missing interpolation variable leaves its token verbatim, and a malformed
// Accept-Language entry is skipped. The only hard errors are construction
// mistakes, such as an unsupported shape in a catalog or a cycle in the
// fallback configuration.
//
// # Basic Usage
//
// Create an instance with nested translations and look keys up with dot
// notation. The first dot segment of a key is its namespace:
//
//	translator, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", map[string]any{
//			"pages": map[string]any{
//				"home": map[string]any{
//					"title":    "Welcome",
//					"greeting": "Hi {{name}}!",
//				},
//			},
//		}),
//		i18n.WithTranslations("ko", map[string]any{
//			"pages": map[string]any{
//				"home": map[string]any{"title": "환영합니다"},
//			},
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	translator.T("ko", "pages.home.title")
//	// "환영합니다"
//
//	translator.T("en", "pages.home.greeting", i18n.M{"name": "Ann"})
//	// "Hi Ann!"
//
// # Fallback Resolution
//
// Lookups walk an ordered sequence and stop at the first hit: the key
// itself, then the key's namespace fallback chain in the same language,
// then the default namespace for bare keys, and finally the same steps for
// each configured fallback language. A key that misses everywhere comes
// back unchanged:
//
//	translator, _ := i18n.New(
//		i18n.WithTranslations("en", map[string]any{
//			"common": map[string]any{"save": "Save"},
//			"errors": map[string]any{},
//		}),
//		i18n.WithFallbackChain("errors", "common"),
//		i18n.WithLanguageFallback("ko", "en"),
//	)
//
//	translator.T("en", "errors.save") // "Save" via the "common" namespace
//	translator.T("ko", "errors.save") // "Save" via the "en" language
//	translator.T("en", "errors.nope") // "errors.nope" returned as-is
//
// Fallback events can be observed through an explicit handler instead of a
// process-wide logger, which keeps resolution side-effect-free:
//
//	i18n.WithDiagnosticHandler(i18n.SlogDiagnosticHandler(slog.Default()))
//
// # Interpolation
//
// Templates use {{name}} tokens where name is letters, digits, and
// underscores; nested or computed expressions are not supported. Styled
// interpolation returns an ordered segment sequence instead of a string, so
// callers can render substituted values with presentation attributes:
//
//	segments := i18n.InterpolateStyled(
//		"Hi {{name}}",
//		i18n.M{"name": "Ann"},
//		map[string]i18n.Style{"name": {"color": "red"}},
//	)
//	// [{Text: "Hi "} {Text: "Ann", Style: {"color": "red"}}]
//
// # Pluralization
//
// Plural templates live under a "_plural" sibling of the base key, one
// template per CLDR category. Tn picks the category for the count with the
// language's plural rule, falls back through the fixed order other, one,
// few, many, two, zero when a category is missing, and injects {{count}}:
//
//	translator, _ := i18n.New(i18n.WithTranslations("en", map[string]any{
//		"cart": map[string]any{
//			"items_plural": map[string]string{
//				"one":   "{{count}} item",
//				"other": "{{count}} items",
//			},
//		},
//	}))
//
//	translator.Tn("en", "cart.items", 1) // "1 item"
//	translator.Tn("en", "cart.items", 5) // "5 items"
//
// # Language Detection
//
// MatchAcceptLanguage ranks Accept-Language entries by quality value and
// matches them against the available languages; DetectLanguage layers the
// full precedence used at session start, where a persisted preference wins
// over the header and the default language is the final fallback:
//
//	lang := translator.DetectLanguage(cookieValue, r.Header.Get("Accept-Language"))
//
// # Catalog Files
//
// Catalogs can be loaded from JSON, YAML, or TOML files named by language
// code, from a directory or any fs.FS (including go:embed):
//
//	i18n.WithCatalogDir("./locales")
//	i18n.WithCatalogFS(embeddedLocales, "locales")
//
// Environment-driven setup follows the usual env-tag convention:
//
//	cfg, _ := i18n.LoadConfig()
//	translator, err := i18n.New(cfg.Options()...)
package i18n
