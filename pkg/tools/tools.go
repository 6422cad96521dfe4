package tools

import (
	"github.com/tgagor/snapcraft-build/pkg/cmd"
)

const (
	DockerDaemonConfig = "/etc/docker/daemon.json"
	AppArmorNamespace  = "/sys/kernel/security/apparmor/policy/namespaces/docker-snapcraft"
	CGroupMount        = "/sys/fs/cgroup"
)

// Tools runs the host preparation commands through an executor.
type Tools struct {
	DaemonConfig string
	Namespace    string
	CGroupMount  string
	executor     cmd.Executor
}

func New(executor cmd.Executor) *Tools {
	if executor == nil {
		executor = cmd.System{}
	}
	return &Tools{
		DaemonConfig: DockerDaemonConfig,
		Namespace:    AppArmorNamespace,
		CGroupMount:  CGroupMount,
		executor:     executor,
	}
}
