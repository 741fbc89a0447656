// Package middleware wires the translation engine into net/http request
// handling. The language middleware determines the request language once,
// before any lookup: a persisted cookie preference wins over the
// Accept-Language header, which wins over the configured default. The
// detected language and a bound Translator are stored in the request
// context for handlers to pick up:
//
//	instance, _ := i18n.New(i18n.WithCatalogDir("./locales"))
//	cookies := cookie.New("lang")
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		t, _ := middleware.GetTranslator(r.Context())
//		fmt.Fprint(w, t.T("pages.home.title"))
//	})
//
//	http.ListenAndServe(":8080", middleware.Language(instance, cookies)(mux))
package middleware
