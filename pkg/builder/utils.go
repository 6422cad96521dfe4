package builder

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tgagor/snapcraft-build/pkg/config"
)

func envToArgs(env *config.Environment) []string {
	args := []string{}
	for _, pair := range env.Pairs() {
		args = append(args, "--env", pair)
	}
	return args
}

type imageInfo struct {
	BuildURL string `json:"build_url"`
}

// imageInfoJSON encodes provenance compactly, leaving URLs unescaped.
func imageInfoJSON(info imageInfo) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(info); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
