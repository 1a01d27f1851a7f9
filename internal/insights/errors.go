package insights

import "errors"

// ErrUnavailable means no report could be produced because the record fetch failed.
var ErrUnavailable = errors.New("insights unavailable")
