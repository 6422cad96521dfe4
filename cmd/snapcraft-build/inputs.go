package main

import (
	"strings"

	"github.com/sethvargo/go-githubactions"
)

func input(name, def string) string {
	if v := githubactions.GetInput(name); v != "" {
		return v
	}
	return def
}

// inputBool accepts only "true" as true, in any case; anything else but an
// empty value is false.
func inputBool(name string, def bool) bool {
	v := input(name, "")
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true")
}

func inputList(name string) []string {
	return splitLines([]string{input(name, "")})
}

// splitLines flattens multi-line values into trimmed, non-empty lines.
func splitLines(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, line := range strings.Split(v, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}
