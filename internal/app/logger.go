package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging points the global zerolog logger at out. Reports go to stdout,
// so out is normally stderr.
func SetupLogging(out io.Writer, level string, debug bool) error {
	lvl := zerolog.InfoLevel
	if v := strings.ToLower(strings.TrimSpace(level)); v != "" {
		parsed, err := zerolog.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("invalid log level %q", level)
		}
		lvl = parsed
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, NoColor: true})
	return nil
}
