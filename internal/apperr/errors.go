package apperr

import "errors"

// Invalid is returned when the input fails domain validation,
// including empty order batches and delivery collections.
var Invalid = errors.New("invalid input")

// Missing is returned when a required input is absent entirely
// rather than merely empty.
var Missing = errors.New("missing input")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")
