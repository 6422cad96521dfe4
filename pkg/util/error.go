package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// FailOnError logs err with its text in the message, so CI annotations carry
// the cause, and exits.
func FailOnError(err error, msg ...string) {
	if err != nil {
		log.Error().Msg(withCause(err, msg))
		os.Exit(1)
	}
}

func WarnOnError(err error, msg ...string) {
	if err != nil {
		log.Warn().Msg(withCause(err, msg))
	}
}

func withCause(err error, msg []string) string {
	prefix := strings.Join(msg, " ")
	if prefix == "" {
		return err.Error()
	}
	return prefix + ": " + err.Error()
}
