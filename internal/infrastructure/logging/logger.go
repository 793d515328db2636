package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ServiceName = "healthathome-api"

// Init configures the global zerolog logger. Development gets console output,
// every other environment gets JSON lines with caller information.
func Init(env string) {
	log.Logger = New(env, os.Stdout)
}

func New(env string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Str("service", ServiceName).
			Logger()
	}
	return zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Str("service", ServiceName).
		Logger()
}
