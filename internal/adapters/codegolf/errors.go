package codegolf

import "errors"

// Sentinel kinds for API client errors.
var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrFetchFailed     = errors.New("fetch failed")
	ErrDecodeFailed    = errors.New("decode failed")
)
