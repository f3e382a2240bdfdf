package render

import "errors"

// Sentinel kinds for rendering configuration errors.
var (
	ErrBarTooNarrow        = errors.New("score bar width too narrow")
	ErrNameColumnTooNarrow = errors.New("hole name column too narrow")
)
