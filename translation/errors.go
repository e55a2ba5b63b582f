package translation

import "errors"

// ErrTranslationUnavailable marks a translator that cannot produce output.
// The adapter treats it like any other per-string failure.
var ErrTranslationUnavailable = errors.New("translation unavailable")
