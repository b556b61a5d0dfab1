package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/shuesler/rsample/pkg/errors"
)

// SetupZerologWarnings wires a zerolog logger into the library warning
// system, so warnings from generators (empty out-of-bag sets, stratum
// imbalance) come out as structured events. Passing a nil writer logs to
// standard error.
func SetupZerologWarnings(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Logger()

	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(marshaler)
		}
		event.Msg(warning.Error())
	})
	return logger
}
