package domain

import "errors"

var (
	// ErrOutputLimit is returned when the solution text outgrows the configured bound.
	ErrOutputLimit = errors.New("solution output exceeds limit")
	// ErrCountOverflow is returned when the partition count no longer fits in an int64.
	ErrCountOverflow = errors.New("partition count overflows int64")
)
