package snap

import (
	"fmt"
	"slices"
	"strings"
)

// Supported bases, oldest first.
const (
	Core   = "core"
	Core18 = "core18"
	Core20 = "core20"
	Core22 = "core22"
	Core24 = "core24"
)

var bases = []string{Core, Core18, Core20, Core22, Core24}

// Bases returns the supported bases, oldest first.
func Bases() []string {
	return slices.Clone(bases)
}

func IsSupported(base string) bool {
	return slices.Contains(bases, base)
}

// ValidateBase fails for bases no build image exists for.
func ValidateBase(base string) error {
	if IsSupported(base) {
		return nil
	}
	quoted := make([]string, 0, len(bases))
	for _, b := range bases {
		quoted = append(quoted, "'"+b+"'")
	}
	return fmt.Errorf(
		"%w: your build requires a base that this tool does not support (%s). 'base' or 'build-base' in your 'snapcraft.yaml' must be one of %s or %s",
		ErrInvalidConfiguration, base, strings.Join(quoted[:len(quoted)-1], ", "), quoted[len(quoted)-1],
	)
}

// RequiresCGroupsV1 reports whether the base's build image only boots on
// hosts with the legacy cgroups hierarchy.
func RequiresCGroupsV1(base string) bool {
	return base == Core
}

// CGroupsV2Error is returned for a base that needs cgroups v1 on a cgroups v2
// host.
func CGroupsV2Error(base string) error {
	return fmt.Errorf(
		"%w: your build specified '%s' as the base, but your system is using cgroups v2. '%s' does not support cgroups v2. Please use '%s' or later or an older Linux distribution that uses cgroups version 1 instead",
		ErrInvalidConfiguration, base, base, Core18,
	)
}
