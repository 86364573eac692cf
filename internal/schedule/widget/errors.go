package widget

import "errors"

// ErrSuperseded is returned when a result arrives for a submission that is no longer the latest.
var ErrSuperseded = errors.New("widget: result superseded by a newer submission")
