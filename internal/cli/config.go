package cli

import (
	"github.com/toyz/autointerface/internal/codewriter"
	"github.com/toyz/autointerface/internal/errors"
)

// maxIndentWidth bounds the -indent flag
const maxIndentWidth = 16

// Config holds the configuration for the CLI generator
type Config struct {
	// Manifests is the list of manifest files to render
	Manifests []string

	// IndentWidth is the number of spaces per indentation level
	IndentWidth int

	// CRLF terminates generated lines with \r\n instead of \n
	CRLF bool

	// ComparePath, when set, diffs the rendering of the single manifest against this file
	// instead of printing it
	ComparePath string

	// Watch re-renders manifests whenever they change
	Watch bool

	// Verbose enables detailed logging and error reporting
	Verbose bool
}

// Validate checks option combinations before any manifest is read
func (c Config) Validate() error {
	if len(c.Manifests) == 0 {
		return errors.ConfigurationError("manifests", "at least one manifest path is required")
	}
	if c.IndentWidth < 1 || c.IndentWidth > maxIndentWidth {
		return errors.ConfigurationError("indent", "width must be between 1 and 16")
	}
	if c.ComparePath != "" {
		if len(c.Manifests) != 1 {
			return errors.ConfigurationError("compare", "exactly one manifest can be compared at a time")
		}
		if c.Watch {
			return errors.ConfigurationError("compare", "cannot be combined with watch")
		}
	}
	return nil
}

// RenderOptions returns the writer layout for this configuration
func (c Config) RenderOptions() codewriter.Options {
	opts := codewriter.Options{IndentWidth: c.IndentWidth}
	if c.CRLF {
		opts.LineEnding = "\r\n"
	}
	return opts
}
