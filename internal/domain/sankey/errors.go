package sankey

import "errors"

// ErrNoData is returned when none of the selected countries has any
// participation in the requested slice.
var ErrNoData = errors.New("sankey: no participations for the selected countries")
