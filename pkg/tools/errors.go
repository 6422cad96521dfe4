package tools

import "errors"

var ErrManifest = errors.New("snapcraft.yaml")
