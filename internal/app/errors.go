package app

import "errors"

// Sentinel kinds for run configuration errors.
var (
	ErrEmptyGolfer = errors.New("empty golfer identifier")
	ErrNoFetcher   = errors.New("no fetcher configured")
)
