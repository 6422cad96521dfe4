package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
)

// EnsureDockerExperimental turns on experimental features of the docker
// daemon and restarts it, unless they are already on.
func (t *Tools) EnsureDockerExperimental(ctx context.Context) error {
	daemon := map[string]interface{}{}

	data, err := os.ReadFile(t.DaemonConfig)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &daemon); err != nil {
			return fmt.Errorf("failed to parse %s: %w", t.DaemonConfig, err)
		}
	case os.IsNotExist(err) || os.IsPermission(err):
		log.Debug().Str("file", t.DaemonConfig).Msg("Docker daemon config not readable, creating")
	default:
		return fmt.Errorf("failed to read %s: %w", t.DaemonConfig, err)
	}

	// a literal null decodes to a nil map
	if daemon == nil {
		daemon = map[string]interface{}{}
	}

	if enabled, ok := daemon["experimental"].(bool); ok && enabled {
		log.Debug().Msg("Docker experimental mode already enabled")
		return nil
	}
	daemon["experimental"] = true

	encoded, err := json.Marshal(daemon)
	if err != nil {
		return err
	}
	quoted := strings.ReplaceAll(string(encoded), "'", `'\''`)

	log.Info().Msg("Enabling docker experimental mode")
	write := cmd.New("bash").Arg("-c", fmt.Sprintf("echo '%s' | sudo tee %s", quoted, t.DaemonConfig))
	if err := t.executor.Execute(ctx, write); err != nil {
		return err
	}
	return t.executor.Execute(ctx, cmd.New("sudo").Arg("systemctl", "restart", "docker"))
}
