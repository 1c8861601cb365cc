// Package codewriter provides an indentation-aware text buffer for emitting source code.
//
// Whole lines are written with the current indent applied. Raw fragments are written
// verbatim so several independently formatted pieces can be composed onto one physical
// line, which is how method signatures are assembled.
package codewriter

import (
	"strings"
	"unicode"

	"github.com/toyz/autointerface/internal/errors"
)

const (
	// DefaultIndentWidth is the number of spaces per indentation level
	DefaultIndentWidth = 4
	// DefaultLineEnding terminates every emitted line
	DefaultLineEnding = "\n"
)

// Options control the layout of emitted text
type Options struct {
	IndentWidth int    // spaces per level, DefaultIndentWidth when zero
	LineEnding  string // DefaultLineEnding when empty
}

// Writer accumulates indented text. The first invariant violation is kept and every
// later call becomes a no-op; Text reports it.
type Writer struct {
	sb         strings.Builder
	depth      int
	unit       string
	current    string
	lineEnding string
	err        error
}

// New creates a writer with the default layout
func New() *Writer {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a writer with the given layout
func NewWithOptions(opts Options) *Writer {
	width := opts.IndentWidth
	if width <= 0 {
		width = DefaultIndentWidth
	}
	ending := opts.LineEnding
	if ending == "" {
		ending = DefaultLineEnding
	}
	return &Writer{
		unit:       strings.Repeat(" ", width),
		lineEnding: ending,
	}
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	if w.err != nil {
		return
	}
	w.setDepth(w.depth + 1)
}

// Dedent decreases the indentation level. Going below zero records an
// InvalidIndentState error.
func (w *Writer) Dedent() {
	if w.err != nil {
		return
	}
	if w.depth == 0 {
		w.err = errors.IndentStateError(w.depth - 1)
		return
	}
	w.setDepth(w.depth - 1)
}

// Depth returns the current indentation level
func (w *Writer) Depth() int {
	return w.depth
}

func (w *Writer) setDepth(depth int) {
	w.depth = depth
	w.current = strings.Repeat(w.unit, depth)
}

// AppendLine writes the current indent, text and a line terminator. Empty text
// produces a bare terminator.
func (w *Writer) AppendLine(text string) {
	if w.err != nil {
		return
	}
	if text != "" {
		w.sb.WriteString(w.current)
		w.sb.WriteString(text)
	}
	w.sb.WriteString(w.lineEnding)
}

// AppendIndented writes the current indent and text without a terminator.
func (w *Writer) AppendIndented(text string) {
	if w.err != nil {
		return
	}
	w.sb.WriteString(w.current)
	w.sb.WriteString(text)
}

// AppendRaw writes text verbatim.
func (w *Writer) AppendRaw(text string) {
	if w.err != nil {
		return
	}
	w.sb.WriteString(text)
}

// AppendLineBreak writes a bare line terminator.
func (w *Writer) AppendLineBreak() {
	if w.err != nil {
		return
	}
	w.sb.WriteString(w.lineEnding)
}

// AppendReflowed writes each line of doc re-indented to the current level. Leading
// whitespace of every line is discarded. Empty or whitespace-only docs write nothing.
func (w *Writer) AppendReflowed(doc string) {
	if w.err != nil || strings.TrimSpace(doc) == "" {
		return
	}
	for _, line := range SplitLines(doc) {
		w.AppendLine(strings.TrimLeftFunc(line, unicode.IsSpace))
	}
}

// Text returns the accumulated text, or the recorded invariant error.
func (w *Writer) Text() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	return w.sb.String(), nil
}

// Err returns the recorded invariant error, if any
func (w *Writer) Err() error {
	return w.err
}

// SplitLines splits text on \n, \r\n and \r. A single trailing terminator does not
// produce an extra empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
