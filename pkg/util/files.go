package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

// ListDir returns the names of the entries in dir, sorted by filename.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("Failed to list")
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// AbsPath expands a leading "~" to the user's home directory and resolves
// relative paths against the working directory.
func AbsPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		return filepath.Join(xdg.Home, p[1:]), nil
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Abs(p)
}
