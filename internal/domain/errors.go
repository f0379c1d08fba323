package domain

import "errors"

// ErrInvalidInput marks validation failures in trip requests, preferences,
// and candidate activities. Callers classify with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
