package cmd_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
)

func TestString(t *testing.T) {
	// Arrange
	input := []string{
		cmd.New("echo").Arg("hello").Arg("world").String(),
		cmd.New("cmd-only").String(),
		cmd.New("").String(),
		cmd.New("sudo").Arg("podman", "pull").Arg("docker.io/diddledani/snapcraft:core20").String(),
	}
	expected := []string{
		"echo hello world",
		"cmd-only",
		"",
		"sudo podman pull docker.io/diddledani/snapcraft:core20",
	}

	// Assert
	for i, input := range input {
		assert.Equal(t, expected[i], input)
	}
}

func TestArgsAreCopied(t *testing.T) {
	c := cmd.New("docker").Arg("pull", "image")
	args := c.Args()
	args[0] = "push"

	assert.Equal(t, []string{"pull", "image"}, c.Args())
}

func TestRunEmptyCommand(t *testing.T) {
	_, err := cmd.New("").Run(context.Background())
	require.Error(t, err)
}

func TestRunCapturesOutput(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	out, err := cmd.New("echo").Arg("hello").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunUsesWorkDir(t *testing.T) {
	if _, err := exec.LookPath("pwd"); err != nil {
		t.Skip("pwd not available")
	}
	dir := t.TempDir()

	out, err := cmd.New("pwd").Dir(dir).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, dir)
}

func TestRunFailureIsWrapped(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	_, err := cmd.New("false").Run(context.Background())
	require.Error(t, err)

	var cmdErr *cmd.Error
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "false", cmdErr.Command)

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestRecorder(t *testing.T) {
	rec := &cmd.Recorder{}
	require.NoError(t, rec.Execute(context.Background(), cmd.New("docker").Arg("pull", "x")))
	require.NoError(t, rec.Execute(context.Background(), cmd.New("docker").Arg("run", "x")))

	assert.Equal(t, []string{"docker pull x", "docker run x"}, rec.Strings())

	rec.Err = errors.New("boom")
	assert.EqualError(t, rec.Execute(context.Background(), cmd.New("docker")), "boom")
}
