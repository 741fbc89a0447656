// Package cookie persists the visitor's language preference as a plain HTTP
// cookie. It is the storage collaborator of the translation engine: the
// engine decides which language wins (stored preference over Accept-Language
// over the default), this package only reads and writes the raw value.
//
// Basic usage:
//
//	manager := cookie.New("lang", cookie.WithMaxAge(30*24*60*60))
//
//	// Reading during language detection:
//	stored, err := manager.Read(r)
//	if err != nil {
//		stored = "" // no preference saved yet
//	}
//	lang := translator.DetectLanguage(stored, r.Header.Get("Accept-Language"))
//
//	// Writing after an explicit switch:
//	manager.Write(w, "ko")
//
// Values are percent-encoded on write and percent-decoded on read. The
// manager never validates against available languages; an unknown stored
// value simply fails to match during detection and the header takes over.
package cookie
