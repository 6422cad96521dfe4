package builder

import (
	"context"
	"os"
	"slices"

	"github.com/tgagor/snapcraft-build/pkg/args"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
	"github.com/tgagor/snapcraft-build/pkg/config"
	"github.com/tgagor/snapcraft-build/pkg/util"
)

// Host prepares the machine and inspects the project before a build.
type Host interface {
	EnsureDockerExperimental(ctx context.Context) error
	EnsureDisabledAppArmorRules(ctx context.Context) error
	DetectBase(ctx context.Context, projectRoot string) (string, error)
	DetectCGroupsV1(ctx context.Context) (bool, error)
}

// ReadDirFunc lists the entry names of a directory.
type ReadDirFunc func(dir string) ([]string, error)

// Options are the inputs of a single build.
type Options struct {
	ProjectRoot      string
	IncludeBuildInfo bool
	Channel          string
	Args             string
	Architecture     string
	Environment      []string
	UsePodman        bool
	StoreAuth        string
	DisableAppArmor  bool
	// Image overrides the build image template, see image.DefaultTemplate.
	Image  string
	DryRun bool
	CI     config.CI
}

// SnapcraftBuilder builds one snapcraft project. It is not changed after New.
type SnapcraftBuilder struct {
	projectRoot      string
	includeBuildInfo bool
	channel          string
	args             []string
	architecture     string
	environment      *config.Environment
	usePodman        bool
	storeAuth        string
	disableAppArmor  bool
	image            string
	dryRun           bool
	ci               config.CI

	host     Host
	executor cmd.Executor
	readDir  ReadDirFunc
	uid      int
}

func New(opts Options, host Host, executor cmd.Executor) (*SnapcraftBuilder, error) {
	root, err := util.AbsPath(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}
	if executor == nil {
		executor = cmd.System{}
	}

	return &SnapcraftBuilder{
		projectRoot:      root,
		includeBuildInfo: opts.IncludeBuildInfo,
		channel:          opts.Channel,
		args:             args.Parse(opts.Args),
		architecture:     opts.Architecture,
		environment:      config.ParseEnvironment(opts.Environment),
		usePodman:        opts.UsePodman,
		storeAuth:        opts.StoreAuth,
		disableAppArmor:  opts.DisableAppArmor,
		image:            opts.Image,
		dryRun:           opts.DryRun,
		ci:               opts.CI,
		host:             host,
		executor:         executor,
		readDir:          util.ListDir,
		uid:              os.Getuid(),
	}, nil
}

// SetReadDir replaces how the project root is listed after a build.
func (b *SnapcraftBuilder) SetReadDir(fn ReadDirFunc) *SnapcraftBuilder {
	b.readDir = fn
	return b
}

func (b *SnapcraftBuilder) ProjectRoot() string {
	return b.projectRoot
}

func (b *SnapcraftBuilder) Args() []string {
	return slices.Clone(b.args)
}

// Environment returns the user supplied variables, in input order.
func (b *SnapcraftBuilder) Environment() []string {
	return b.environment.Pairs()
}
