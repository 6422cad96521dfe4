// Package actions connects the build to the GitHub Actions runner: step
// outputs and annotations for logged warnings and errors.
package actions

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-githubactions"
)

// Enabled reports whether the process runs inside a GitHub Actions job.
func Enabled() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// SetOutput appends a step output to the file named by $GITHUB_OUTPUT. It is a
// no-op outside of a runner.
func SetOutput(name, value string) {
	if os.Getenv("GITHUB_OUTPUT") == "" {
		return
	}
	githubactions.New().SetOutput(name, value)
}

// Hook mirrors warnings and errors logged through zerolog as workflow
// commands, so they show up as annotations on the run.
type Hook struct {
	Action *githubactions.Action
}

func (h Hook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if msg == "" {
		return
	}
	action := h.Action
	if action == nil {
		action = githubactions.New()
	}
	switch level {
	case zerolog.WarnLevel:
		action.Warningf("%s", msg)
	case zerolog.ErrorLevel, zerolog.FatalLevel:
		action.Errorf("%s", msg)
	}
}
