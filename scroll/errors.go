package scroll

import "errors"

// ErrUnknownMode is returned when an input delta is dispatched while the
// options hold a mode without dispatch behaviour, and by ParseMode.
var ErrUnknownMode = errors.New("scroll: unknown scrolling mode")
