package applog

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a human-readable console logger on stderr. verbose raises the
// level to Debug, which is what gates the pipeline's invariant assertions
// (see Assert).
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Assert runs check only when the logger's Debug level is enabled, and logs
// a Debug event named what if check returns a non-nil error. cmd/ldrawing
// calls this with the input graph's embed.EmbeddedGraph.Validate so the
// "Universal invariants" of spec.md §8 stay compiled in but cheap: the
// zerolog.Debug().Enabled() guard skips the check entirely outside -v.
func Assert(logger zerolog.Logger, what string, check func() error) {
	if !logger.Debug().Enabled() {
		return
	}
	if err := check(); err != nil {
		logger.Debug().Err(err).Str("invariant", what).Msg("invariant violated")
	}
}
