package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted      = errors.New("service not started")
	ErrSportRequired   = errors.New("a discipline must be selected")
	ErrCountryRequired = errors.New("a country must be selected")
)
