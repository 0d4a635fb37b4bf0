package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger configures the global zerolog logger.
// Development: pretty console output. Production: JSON to stderr.
// When logFile is set, output is duplicated into a rotating file.
func SetupLogger(env, logFile string) {
	var out io.Writer = os.Stderr
	if env != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 7,
			MaxAge:     7, // days
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, rotator)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
