package builder_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgagor/snapcraft-build/pkg/builder"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
	"github.com/tgagor/snapcraft-build/pkg/config"
)

func listing(names ...string) (builder.ReadDirFunc, *[]string) {
	var dirs []string
	return func(dir string) ([]string, error) {
		dirs = append(dirs, dir)
		return names, nil
	}, &dirs
}

func TestOutputSnapFailsWithoutSnaps(t *testing.T) {
	b, rec := newBuilder(t, builder.Options{}, &fakeHost{})
	readDir, dirs := listing("not-a-snap", "snapcraft.yaml")
	b.SetReadDir(readDir)

	_, err := b.OutputSnap(context.Background())
	require.ErrorIs(t, err, builder.ErrBuildOutput)
	assert.Contains(t, err.Error(), "no snap files produced by build")
	assert.Equal(t, []string{b.ProjectRoot()}, *dirs)
	assert.Empty(t, rec.Calls)
}

func TestOutputSnapReturnsFirstSnap(t *testing.T) {
	var logs bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&logs)
	defer func() { log.Logger = saved }()

	b, rec := newBuilder(t, builder.Options{}, &fakeHost{})
	readDir, _ := listing("one.snap", "two.snap")
	b.SetReadDir(readDir)

	snap, err := b.OutputSnap(context.Background())
	require.NoError(t, err)

	// newBuilder leaves the workspace unset, so the working directory is used
	assert.Equal(t, "./project-root/one.snap", snap)
	assert.Contains(t, logs.String(), "Multiple snaps found")

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "sudo", rec.Calls[0].Name())
	assert.Equal(t, []string{"chown", strconv.Itoa(os.Getuid()), "./project-root/one.snap"}, rec.Calls[0].Args())
	assert.Equal(t, cwd(t), rec.Calls[0].WorkDir())
}

func TestOutputSnapSingleSnapDoesNotWarn(t *testing.T) {
	var logs bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&logs)
	defer func() { log.Logger = saved }()

	b, _ := newBuilder(t, builder.Options{}, &fakeHost{})
	readDir, _ := listing("README.md", "hello_1.0_amd64.snap")
	b.SetReadDir(readDir)

	snap, err := b.OutputSnap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "./project-root/hello_1.0_amd64.snap", snap)
	assert.NotContains(t, logs.String(), "Multiple snaps found")
}

func TestOutputSnapUsesWorkspace(t *testing.T) {
	rec := &cmd.Recorder{}
	b, err := builder.New(builder.Options{
		ProjectRoot: "/home/runner/work/repo/snaps/hello",
		CI:          config.CI{Workspace: "/home/runner/work/repo"},
	}, &fakeHost{}, rec)
	require.NoError(t, err)
	readDir, _ := listing("hello.snap")
	b.SetReadDir(readDir)

	snap, err := b.OutputSnap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "./snaps/hello/hello.snap", snap)
	assert.Equal(t, "/home/runner/work/repo", rec.Calls[0].WorkDir())
}

func TestOutputSnapOutsideWorkspace(t *testing.T) {
	rec := &cmd.Recorder{}
	b, err := builder.New(builder.Options{
		ProjectRoot: "/srv/repo-other",
		CI:          config.CI{Workspace: "/srv/repo"},
	}, &fakeHost{}, rec)
	require.NoError(t, err)
	readDir, _ := listing("hello.snap")
	b.SetReadDir(readDir)

	snap, err := b.OutputSnap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/srv/repo-other/hello.snap", snap)
}

func TestOutputSnapPropagatesErrors(t *testing.T) {
	b, rec := newBuilder(t, builder.Options{}, &fakeHost{})
	b.SetReadDir(func(string) ([]string, error) { return nil, errors.New("permission denied") })

	_, err := b.OutputSnap(context.Background())
	require.EqualError(t, err, "permission denied")

	readDir, _ := listing("one.snap")
	b.SetReadDir(readDir)
	rec.Err = errors.New("chown failed")
	_, err = b.OutputSnap(context.Background())
	require.EqualError(t, err, "chown failed")
}
