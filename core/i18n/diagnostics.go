package i18n

import "log/slog"

// SlogDiagnosticHandler adapts a slog.Logger into a DiagnosticHandler.
// Missing keys and empty fallback namespaces are logged at warn level,
// fallback hits at debug level, so production setups can surface real gaps
// without drowning in save notices.
func SlogDiagnosticHandler(log *slog.Logger) DiagnosticHandler {
	return func(d Diagnostic) {
		switch d.Kind {
		case DiagnosticMissingKey:
			log.Warn("translation missing",
				slog.String("key", d.Key),
				slog.String("lang", d.Language),
			)
		case DiagnosticMissingNamespace:
			log.Warn("fallback namespace has no translations",
				slog.String("namespace", d.Namespace),
				slog.String("key", d.Key),
				slog.String("lang", d.Language),
			)
		case DiagnosticFallbackHit:
			log.Debug("translation resolved through fallback",
				slog.String("key", d.Key),
				slog.String("lang", d.Language),
				slog.String("used_key", d.UsedKey),
				slog.String("used_lang", d.UsedLanguage),
			)
		}
	}
}
