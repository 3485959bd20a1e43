package validators

import "errors"

// ErrValidationFailed wraps every field-level failure reported by the
// underlying validator so callers can match the whole class with errors.Is.
var ErrValidationFailed = errors.New("validation failed")
