package tools

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
)

// EnsureDisabledAppArmorRules creates the AppArmor policy namespace the
// snapcraft container runs under, so the host profiles do not confine it.
func (t *Tools) EnsureDisabledAppArmorRules(ctx context.Context) error {
	if _, err := os.Stat(t.Namespace); err == nil {
		log.Debug().Str("namespace", t.Namespace).Msg("AppArmor namespace already exists")
		return nil
	}
	return t.executor.Execute(ctx, cmd.New("sudo").Arg("mkdir", t.Namespace))
}

// RemoveAppArmorNamespace undoes EnsureDisabledAppArmorRules.
func (t *Tools) RemoveAppArmorNamespace(ctx context.Context) error {
	if _, err := os.Stat(t.Namespace); os.IsNotExist(err) {
		log.Debug().Str("namespace", t.Namespace).Msg("AppArmor namespace already removed")
		return nil
	}
	return t.executor.Execute(ctx, cmd.New("sudo").Arg("rmdir", t.Namespace))
}
