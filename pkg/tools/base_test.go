package tools_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgagor/snapcraft-build/pkg/tools"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		manifest string
		want     string
	}{
		{"base", "snapcraft.yaml", "name: hello\nbase: core20\n", "core20"},
		{"build-base wins", "snapcraft.yaml", "name: hello\nbase: bare\nbuild-base: core22\n", "core22"},
		{"default", "snapcraft.yaml", "name: hello\nversion: '1.0'\n", "core"},
		{"snap dir", "snap/snapcraft.yaml", "base: core18\n", "core18"},
		{"hidden", ".snapcraft.yaml", "base: core24\n", "core24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, tt.file), tt.manifest)

			base, err := tools.New(nil).DetectBase(context.Background(), root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, base)
		})
	}
}

func TestDetectBasePrefersSnapDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "snap", "snapcraft.yaml"), "base: core22\n")
	writeFile(t, filepath.Join(root, "snapcraft.yaml"), "base: core18\n")

	base, err := tools.New(nil).DetectBase(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "core22", base)
}

func TestDetectBaseErrors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := tools.New(nil).DetectBase(context.Background(), root)
	require.ErrorIs(t, err, tools.ErrManifest)
	assert.Contains(t, err.Error(), "cannot find snapcraft.yaml")

	writeFile(t, filepath.Join(root, "snapcraft.yaml"), "")
	_, err = tools.New(nil).DetectBase(context.Background(), root)
	require.ErrorIs(t, err, tools.ErrManifest)
	assert.Contains(t, err.Error(), "cannot parse")

	writeFile(t, filepath.Join(root, "snapcraft.yaml"), "base: [core20\n")
	_, err = tools.New(nil).DetectBase(context.Background(), root)
	require.ErrorIs(t, err, tools.ErrManifest)

	writeFile(t, filepath.Join(root, "snapcraft.yaml"), "- just\n- a list\n")
	_, err = tools.New(nil).DetectBase(context.Background(), root)
	require.ErrorIs(t, err, tools.ErrManifest)
}

func TestDetectCGroupsV1(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cgroups are linux only")
	}
	if _, err := os.Stat(tools.CGroupMount); err != nil {
		t.Skip("no cgroup mount")
	}

	_, err := tools.New(nil).DetectCGroupsV1(context.Background())
	assert.NoError(t, err)
}
