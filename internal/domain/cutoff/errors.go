package cutoff

import "errors"

// Sentinel kinds for cutoff errors.
var (
	ErrParse = errors.New("invalid cutoff")
)
