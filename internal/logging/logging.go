// Package logging builds the application's root hclog logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options controls logger construction.
type Options struct {
	Name   string
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns a root logger. Unknown levels fall back to info.
func New(options Options) hclog.Logger {
	if options.Output == nil {
		options.Output = os.Stderr
	}
	if options.Name == "" {
		options.Name = "minuteclock"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       options.Name,
		Level:      ParseLevel(options.Level),
		Output:     options.Output,
		JSONFormat: options.JSON,
	})
}

// ParseLevel maps a level name to an hclog level.
func ParseLevel(level string) hclog.Level {
	parsed := hclog.LevelFromString(strings.ToLower(strings.TrimSpace(level)))
	if parsed == hclog.NoLevel {
		return hclog.Info
	}
	return parsed
}
