package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tgagor/snapcraft-build/pkg/actions"
	"github.com/tgagor/snapcraft-build/pkg/builder"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
	"github.com/tgagor/snapcraft-build/pkg/config"
	"github.com/tgagor/snapcraft-build/pkg/logger"
	"github.com/tgagor/snapcraft-build/pkg/tools"
	"github.com/tgagor/snapcraft-build/pkg/util"
)

var BuildVersion string // Will be set dynamically at build time.
var appName string = "snapcraft-build"
var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Build a snapcraft project inside a docker or podman container.",
	Long: `Builds a snap in the snapcraft image matching the project's base and prints
the path of the produced snap. Every flag defaults to the matching INPUT_* variable,
so the binary can run as a GitHub Action step without arguments.`,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if flags.PrintVersion {
			return nil
		}
		if runtime.GOOS != "linux" {
			return fmt.Errorf("only supported on linux platform")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init(flags.Verbose, flags.NoColor)

		if flags.PrintVersion {
			fmt.Printf("%s version: %s\n", appName, BuildVersion)
			return
		}

		snap, err := build(cmd.Context())
		util.FailOnError(err, "Build failed")
		if snap == "" {
			return
		}

		fmt.Println(snap)
		actions.SetOutput("snap", snap)
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove the AppArmor namespace created for the build container",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init(flags.Verbose, flags.NoColor)
		err := tools.New(nil).RemoveAppArmorNamespace(cmd.Context())
		util.FailOnError(err, "Cleanup failed")
	},
}

func build(ctx context.Context) (string, error) {
	log.Info().Str("path", flags.Path).Msg("Building Snapcraft project")
	if flags.DryRun {
		log.Warn().Msg("Dry run enabled, no containers will be started")
	}

	b, err := builder.New(builder.Options{
		ProjectRoot:      flags.Path,
		IncludeBuildInfo: flags.BuildInfo,
		Channel:          flags.Channel,
		Args:             flags.Args,
		Architecture:     flags.Architecture,
		Environment:      splitLines(flags.Environment),
		UsePodman:        flags.UsePodman,
		StoreAuth:        flags.StoreAuth,
		DisableAppArmor:  flags.DisableAppArmor,
		Image:            flags.Image,
		DryRun:           flags.DryRun,
		CI:               config.FromEnv().WithGitFallback(flags.Path),
	}, tools.New(nil), cmd.System{})
	if err != nil {
		return "", err
	}

	if err := b.Build(ctx); err != nil {
		return "", err
	}
	if flags.DryRun {
		return "", nil
	}
	return b.OutputSnap(ctx)
}

func init() {
	if BuildVersion == "" {
		BuildVersion = "development" // Fallback if not set during build
	}

	f := rootCmd.Flags()
	f.StringVar(&flags.Path, "path", input("path", "."), "Path to the snapcraft project")
	f.BoolVar(&flags.BuildInfo, "build-info", inputBool("build-info", true), "Include build information in the snap")
	f.StringVar(&flags.Channel, "snapcraft-channel", input("snapcraft-channel", ""), "Snapcraft channel to build with")
	f.StringVar(&flags.Args, "snapcraft-args", input("snapcraft-args", ""), "Additional arguments passed to snapcraft")
	f.StringVar(&flags.Architecture, "architecture", input("architecture", input("platform", "")), "Snap architecture to build for, e.g. arm64")
	f.StringArrayVarP(&flags.Environment, "environment", "e", inputList("environment"), "KEY=VALUE variable for the build container, can be repeated")
	f.BoolVar(&flags.UsePodman, "use-podman", inputBool("use-podman", false), "Build with podman instead of docker")
	f.StringVar(&flags.StoreAuth, "store-auth", input("store-auth", ""), "Snap Store credentials exported by snapcraft")
	f.BoolVar(&flags.DisableAppArmor, "disable-apparmor", inputBool("disable-apparmor", false), "Create an AppArmor namespace for the build container")
	f.StringVar(&flags.Image, "image", input("image", ""), "Build image template, e.g. 'diddledani/snapcraft:{{ .Base }}'")
	f.BoolVar(&flags.DryRun, "dry-run", false, "Print container commands but don't execute them")
	f.BoolVarP(&flags.PrintVersion, "version", "V", false, "Display the application version and exit")

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Increase verbosity of output")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable color output")

	rootCmd.AddCommand(cleanupCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		util.FailOnError(err)
	}
}
