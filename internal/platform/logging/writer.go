package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures the rotating log file. An empty Path disables it.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWriter returns console, or console tee'd into a rotating file when
// opts.Path is set. The returned closer releases the file and is a no-op
// otherwise.
func NewWriter(console io.Writer, opts FileOptions) (io.Writer, func() error) {
	if opts.Path == "" {
		return console, func() error { return nil }
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	return io.MultiWriter(console, file), file.Close
}
