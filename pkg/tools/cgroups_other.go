//go:build !linux

package tools

import (
	"context"
	"errors"
)

func (t *Tools) DetectCGroupsV1(_ context.Context) (bool, error) {
	return false, errors.New("cgroups are only available on linux")
}
