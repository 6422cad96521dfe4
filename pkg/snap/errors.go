package snap

import "errors"

// ErrInvalidConfiguration marks a build request that can never succeed as
// configured, whatever the host does.
var ErrInvalidConfiguration = errors.New("invalid configuration")
