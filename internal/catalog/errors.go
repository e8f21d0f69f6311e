package catalog

import "errors"

// Sentinel errors returned by the catalog client. Callers match them with errors.Is.
var (
	ErrTransport    = errors.New("catalog transport failure")
	ErrDecode       = errors.New("catalog response is not valid JSON")
	ErrInvalidQuery = errors.New("invalid catalog query")
	ErrNotFound     = errors.New("meal not found")
)
