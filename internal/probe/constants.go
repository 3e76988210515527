package probe

// HTTP status code constants.
const (
	StatusOK = 200
)

// Envelope statuses.
const (
	statusOK     = "ok"
	statusNoData = "no_data"
)

// Relative mode must split every partition into 100 percent. Rounding each
// share to two decimals allows a small drift.
const (
	percentTotal     = 100.0
	percentTolerance = 0.1
)
