package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const defaultBase = "core"

type manifest struct {
	Base      string `yaml:"base"`
	BuildBase string `yaml:"build-base"`
}

// ManifestPaths lists where snapcraft looks for its project file, in order.
func ManifestPaths(projectRoot string) []string {
	return []string{
		filepath.Join(projectRoot, "snap", "snapcraft.yaml"),
		filepath.Join(projectRoot, "snapcraft.yaml"),
		filepath.Join(projectRoot, ".snapcraft.yaml"),
	}
}

func findManifest(projectRoot string) (string, error) {
	for _, p := range ManifestPaths(projectRoot) {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		f.Close()
		return p, nil
	}
	return "", fmt.Errorf("%w: cannot find snapcraft.yaml in %s", ErrManifest, projectRoot)
}

// DetectBase returns the base the project is built on: build-base when set,
// then base, then "core".
func (t *Tools) DetectBase(_ context.Context, projectRoot string) (string, error) {
	file, err := findManifest(projectRoot)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrManifest, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Error().Err(err).Str("file", file).Msg("Decoding YAML failed! Check syntax and try again")
		return "", fmt.Errorf("%w: cannot parse %s: %w", ErrManifest, file, err)
	}
	if doc.Kind == 0 {
		return "", fmt.Errorf("%w: cannot parse %s: empty document", ErrManifest, file)
	}

	var m manifest
	if err := doc.Decode(&m); err != nil {
		return "", fmt.Errorf("%w: cannot parse %s: %w", ErrManifest, file, err)
	}

	base := defaultBase
	switch {
	case m.BuildBase != "":
		base = m.BuildBase
	case m.Base != "":
		base = m.Base
	}
	log.Debug().Str("file", file).Str("base", base).Msg("Detected")
	return base, nil
}
