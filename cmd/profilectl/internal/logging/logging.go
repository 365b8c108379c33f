// Package logging builds the profilectl logger.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/config"
)

// Name is the root logger name.
const Name = "profilectl"

// New returns an hclog.Logger writing to w at the configured level, as
// JSON lines when cfg.JSON is set.
func New(cfg config.LogConfig, w io.Writer) hclog.Logger {
	level := hclog.LevelFromString(cfg.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      level,
		Output:     w,
		JSONFormat: cfg.JSON,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  hclog.Off,
		Output: io.Discard,
	})
}
