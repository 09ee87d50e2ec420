package testutil

import "errors"

// ErrSimulated is a sentinel error for testing error handling paths,
// e.g. a store that refuses to save a particular player.
var ErrSimulated = errors.New("simulated error for testing")
