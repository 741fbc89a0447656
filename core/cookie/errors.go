package cookie

import "errors"

// ErrNotFound indicates the preference cookie is absent from the request.
// Callers treat this as "no stored preference", not as a failure.
var ErrNotFound = errors.New("language preference cookie not found")
