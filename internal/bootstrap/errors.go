package bootstrap

import "errors"

// ErrNotLoaded is returned by [Loader.Get] when no load attempt has
// completed yet. Callers must run [Loader.Load] first.
var ErrNotLoaded = errors.New("config document is not loaded yet")
