package book

import "errors"

// ErrBookNotFound covers both "no record for this id" and malformed
// identifiers: the service normalizes bad-id errors into not-found
// instead of surfacing a store failure.
var ErrBookNotFound = errors.New("book not found")
