// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelForVerbosity maps the count of -v flags (0-4) to a level.
func LevelForVerbosity(count int) logrus.Level {
	switch {
	case count <= 0:
		return logrus.WarnLevel
	case count == 1:
		return logrus.InfoLevel
	case count == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// ParseLevel accepts logrus level names plus "warning".
func ParseLevel(name string) (logrus.Level, error) {
	level, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Options controls Setup.
type Options struct {
	Verbosity int
	// Level overrides Verbosity when non-empty.
	Level  string
	Output io.Writer
}

// Setup configures the standard logger and returns it.
func Setup(options Options) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()
	output := options.Output
	if output == nil {
		output = os.Stderr
	}
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	level := LevelForVerbosity(options.Verbosity)
	if options.Level != "" {
		parsed, err := ParseLevel(options.Level)
		if err != nil {
			return logger, err
		}
		level = parsed
	}
	logger.SetLevel(level)
	return logger, nil
}
