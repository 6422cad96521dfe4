package tools

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// DetectCGroupsV1 reports whether the host mounts the legacy cgroups
// hierarchy rather than the unified cgroup2 filesystem.
func (t *Tools) DetectCGroupsV1(_ context.Context) (bool, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(t.CGroupMount, &st); err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", t.CGroupMount, err)
	}
	return st.Type != unix.CGROUP2_SUPER_MAGIC, nil
}
