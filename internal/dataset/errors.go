package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	// ErrData marks input files that are missing, unreadable or lack a
	// required column. It is fatal at startup.
	ErrData = errors.New("dataset error")
)
