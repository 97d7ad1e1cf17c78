// Package logger provides a global zerolog logger for the application.
package logger

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func initLogger() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on process environment")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	logLevel := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	log.Debug().Str("level", logLevel.String()).Msg("logger initialized")
}

// Init initializes the global logger from the environment. It sets up
// zerolog with console output on stderr and reads LOG_LEVEL (trace, debug,
// info, warn, error) for the global level.
func Init() {
	initLogger()
}
