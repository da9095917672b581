// SPDX-License-Identifier: MIT

// Package logging builds the slog.Logger shared by the routesim commands: a
// colored console handler, optionally fanned out to a plain text log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// Options selects the logger outputs.
type Options struct {
	Level slog.Level
	// Console receives colored output. Defaults to os.Stderr.
	Console io.Writer
	// NoColor disables ANSI colors on Console.
	NoColor bool
	// Prefix is printed before every console line when non-empty.
	Prefix string
	// FilePath, when set, also appends plain text records to this file.
	FilePath string
}

// New returns the logger and a close function releasing the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	handlers := []slog.Handler{
		tint.NewHandler(console, &tint.Options{
			Level:        opts.Level,
			AddSource:    false,
			TimeFormat:   "15:04:05",
			NoColor:      opts.NoColor,
			CustomPrefix: opts.Prefix,
		}),
	}
	closeFn := func() error { return nil }

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
