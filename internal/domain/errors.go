// Package domain defines the core business entities and errors.
package domain

import "errors"

// ErrValidation is the root of every domain validation error. Callers
// that do not care which rule failed can match on it with errors.Is.
var ErrValidation = errors.New("validation failed")
