package builder

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tgagor/snapcraft-build/pkg/cmd"
	"github.com/tgagor/snapcraft-build/pkg/config"
	"github.com/tgagor/snapcraft-build/pkg/image"
	"github.com/tgagor/snapcraft-build/pkg/runner"
	"github.com/tgagor/snapcraft-build/pkg/snap"
)

// ContainerRoot is where the project is mounted inside the build container.
const ContainerRoot = "/data"

const (
	envImageInfo   = "SNAPCRAFT_IMAGE_INFO"
	envBuildInfo   = "SNAPCRAFT_BUILD_INFO"
	envChannel     = "USE_SNAPCRAFT_CHANNEL"
	envCredentials = "SNAPCRAFT_STORE_CREDENTIALS"
)

// Build pulls the build image for the project's base and runs snapcraft in
// it. Every step runs in order and the first failure ends the build.
func (b *SnapcraftBuilder) Build(ctx context.Context) error {
	engine := engineFor(b.usePodman)
	log.Info().Str("engine", engine.Name()).Str("project", b.projectRoot).Msg("Initializing")

	if err := b.prepareHost(ctx, engine); err != nil {
		return err
	}

	base, err := b.host.DetectBase(ctx, b.projectRoot)
	if err != nil {
		return err
	}
	log.Info().Str("base", base).Msg("Detected")
	if err := snap.ValidateBase(base); err != nil {
		return err
	}

	if snap.RequiresCGroupsV1(base) {
		v1, err := b.host.DetectCGroupsV1(ctx)
		if err != nil {
			return err
		}
		if !v1 {
			return snap.CGroupsV2Error(base)
		}
	}

	env, err := b.containerEnvironment(base)
	if err != nil {
		return err
	}
	platform := snap.PlatformArgs(b.architecture)

	ref, err := image.New(base).SetTemplate(b.image).SetRegistry(engine.Registry()).Reference()
	if err != nil {
		return err
	}

	tasks := runner.New(b.executor).DryRun(b.dryRun).AddTask(
		b.command(engine, Pull, platform, env, ref),
		b.command(engine, Run, platform, env, ref),
	)
	return tasks.Run(ctx)
}

// prepareHost changes the host configuration the engine needs. A dry run only
// logs the steps.
func (b *SnapcraftBuilder) prepareHost(ctx context.Context, engine Engine) error {
	type step struct {
		name string
		run  func(context.Context) error
	}
	steps := []step{}
	if engine.NeedsDockerDaemon() {
		steps = append(steps, step{"docker experimental mode", b.host.EnsureDockerExperimental})
	}
	if b.disableAppArmor {
		steps = append(steps, step{"AppArmor namespace", b.host.EnsureDisabledAppArmorRules})
	}

	for _, s := range steps {
		if b.dryRun {
			log.Info().Str("step", s.name).Msg("DRY-RUN: Prepare host")
			continue
		}
		if err := s.run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// containerEnvironment merges, in order: user variables, provenance, the
// build info flag, the channel and store credentials.
func (b *SnapcraftBuilder) containerEnvironment(base string) (*config.Environment, error) {
	env := b.environment.Clone()

	info, err := imageInfoJSON(imageInfo{BuildURL: b.ci.BuildURL()})
	if err != nil {
		return nil, err
	}
	env.Set(envImageInfo, info)

	if b.includeBuildInfo {
		env.Set(envBuildInfo, "1")
	}
	if b.channel != "" {
		channel, err := snap.ResolveChannel(base, b.channel)
		if err != nil {
			return nil, err
		}
		log.Info().Str("channel", channel).Msg("Using snapcraft")
		env.Set(envChannel, channel)
	}
	if b.storeAuth != "" {
		env.Set(envCredentials, b.storeAuth)
	}
	return env, nil
}

func (b *SnapcraftBuilder) command(engine Engine, stage Stage, platform []string, env *config.Environment, ref string) *cmd.Cmd {
	c := engine.Command().Arg(stage.String())

	switch stage {
	case Pull:
		c.Arg(platform...).Arg(ref).PreInfo("Pulling " + ref)
	case Run:
		c.Arg(
			"--rm",
			"--tty",
			"--privileged",
			"--volume", b.projectRoot+":"+ContainerRoot,
			"--workdir", ContainerRoot,
		).
			Arg(platform...).
			Arg(envToArgs(env)...).
			Arg(engine.RunArgs()...).
			Arg(ref, "snapcraft").
			Arg(b.args...).
			PreInfo("Building snap in " + ref).
			PostInfo("Snapcraft finished")
	}

	return c.Dir(b.projectRoot).SetVerbose(true)
}
