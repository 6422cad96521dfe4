package builder

import (
	"github.com/tgagor/snapcraft-build/pkg/cmd"
	"github.com/tgagor/snapcraft-build/pkg/image"
)

// Engine is the container CLI a build runs with.
type Engine interface {
	Name() string
	// Command returns a fresh command invoking the engine.
	Command() *cmd.Cmd
	// Registry qualifies short image names, empty for none.
	Registry() string
	// RunArgs are appended to the run flags after the environment.
	RunArgs() []string
	// NeedsDockerDaemon reports whether the docker daemon must be prepared.
	NeedsDockerDaemon() bool
}

type DockerEngine struct{}

func (DockerEngine) Name() string            { return "docker" }
func (DockerEngine) Command() *cmd.Cmd       { return cmd.New("docker") }
func (DockerEngine) Registry() string        { return "" }
func (DockerEngine) RunArgs() []string       { return nil }
func (DockerEngine) NeedsDockerDaemon() bool { return true }

// PodmanEngine runs rootful podman; the snapcraft images boot systemd.
type PodmanEngine struct{}

func (PodmanEngine) Name() string            { return "podman" }
func (PodmanEngine) Command() *cmd.Cmd       { return cmd.New("sudo").Arg("podman") }
func (PodmanEngine) Registry() string        { return image.DockerHub }
func (PodmanEngine) RunArgs() []string       { return []string{"--systemd", "always"} }
func (PodmanEngine) NeedsDockerDaemon() bool { return false }

func engineFor(usePodman bool) Engine {
	if usePodman {
		return PodmanEngine{}
	}
	return DockerEngine{}
}
