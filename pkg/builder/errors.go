package builder

import "errors"

// ErrBuildOutput is returned when a finished build left no snap behind.
var ErrBuildOutput = errors.New("build output")
