package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrRegisterFailed = errors.New("metrics register failed")
	ErrGatherFailed   = errors.New("metrics gather failed")
)
