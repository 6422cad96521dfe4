package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tgagor/snapcraft-build/pkg/actions"
)

// Init configures the global zerolog logger for console output.
func Init(verbose, noColor bool) {
	log.Logger = New(colorable.NewColorableStdout(), verbose, noColor || !colorSupported())
}

// New returns a console logger writing to out.
func New(out io.Writer, verbose, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	if !verbose {
		writer.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()
	if actions.Enabled() {
		logger = logger.Hook(actions.Hook{})
	}
	return logger
}

func colorSupported() bool {
	// the Actions log viewer renders ANSI colors without a tty
	if actions.Enabled() {
		return true
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
