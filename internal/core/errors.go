package core

import "errors"

// ErrPlatformUnavailable is returned when the windowing system cannot be
// initialized. There is no recovery path.
var ErrPlatformUnavailable = errors.New("display platform unavailable")
