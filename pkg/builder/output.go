package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tgagor/snapcraft-build/pkg/cmd"
)

const snapSuffix = ".snap"

// OutputSnap finds the snap left in the project root by Build, hands its
// ownership to the current user and returns its path relative to the CI
// workspace. When several snaps exist the first one listed is used.
func (b *SnapcraftBuilder) OutputSnap(ctx context.Context) (string, error) {
	workspace := b.ci.Workspace
	if workspace == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		workspace = cwd
	}

	files, err := b.readDir(b.projectRoot)
	if err != nil {
		return "", err
	}
	snaps := []string{}
	for _, name := range files {
		if strings.HasSuffix(name, snapSuffix) {
			snaps = append(snaps, name)
		}
	}

	if len(snaps) == 0 {
		return "", fmt.Errorf("%w: no snap files produced by build", ErrBuildOutput)
	}
	if len(snaps) > 1 {
		log.Warn().Str("dir", b.projectRoot).Strs("snaps", snaps).Msg("Multiple snaps found")
	}

	snap := relativeTo(workspace, filepath.Join(b.projectRoot, snaps[0]))
	log.Info().Str("snap", snap).Msg("Built")

	chown := cmd.New("sudo").Arg("chown", strconv.Itoa(b.uid), snap).Dir(workspace)
	if err := b.executor.Execute(ctx, chown); err != nil {
		return "", err
	}
	return snap, nil
}

// relativeTo replaces a leading workspace directory in path with ".".
func relativeTo(workspace, path string) string {
	workspace = strings.TrimSuffix(filepath.Clean(workspace), string(filepath.Separator))
	if workspace == "" {
		return path
	}
	if path == workspace {
		return "."
	}
	if rest, ok := strings.CutPrefix(path, workspace+string(filepath.Separator)); ok {
		return "." + string(filepath.Separator) + rest
	}
	return path
}
