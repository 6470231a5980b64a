package http

import "errors"

// ErrMethodNotAllowed is returned for non-GET requests outside the ignored prefixes.
var ErrMethodNotAllowed = errors.New("method not allowed")
