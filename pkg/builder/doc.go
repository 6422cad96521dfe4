// Package builder runs a snapcraft build inside a container and finds the
// snap it produced.
//
// The builder detects the project's base, picks the matching snapcraft build
// image and channel, then pulls and runs the image with the project mounted
// at /data. Docker is used by default; podman is run through sudo and needs
// systemd inside the container.
//
// Host preparation, base detection and process execution are collaborators
// passed to New, so the command lines can be checked without a container
// engine:
//
//	b, err := builder.New(builder.Options{
//	    ProjectRoot: ".",
//	    Channel:     "stable",
//	    CI:          config.FromEnv(),
//	}, tools.New(nil), cmd.System{})
//	if err != nil {
//	    return err
//	}
//	if err := b.Build(ctx); err != nil {
//	    return err
//	}
//	snap, err := b.OutputSnap(ctx)
package builder
