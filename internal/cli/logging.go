package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger builds the stderr diagnostic logger. Example verdicts are program
// output and never go through it.
func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}
