package client

import "errors"

// ErrLocalDataNotAvailable means the device holds no cached account for the
// requested user, so it cannot be unlocked offline.
var ErrLocalDataNotAvailable = errors.New("local data unavailable")
