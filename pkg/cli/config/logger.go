package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("BENCHMARK510K_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("BENCHMARK510K_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// logFormats maps --log-format values to logging formats; empty means auto
var logFormats = map[string]logging.Format{
	"":        logging.FormatAuto,
	"auto":    logging.FormatAuto,
	"console": logging.FormatConsole,
	"json":    logging.FormatJSON,
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Configure validates the configuration and builds a logger writing to stderr
func (l *Logger) Configure() (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), os.Stderr, logFormats[l.Format]), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	if !logLevels[l.Level] {
		return goerr.New("invalid log level", goerr.V("level", l.Level))
	}
	if _, ok := logFormats[l.Format]; !ok {
		return goerr.New("invalid log format", goerr.V("format", l.Format))
	}
	return nil
}
