package cli

import (
	"sort"
	"strings"

	"github.com/toyz/autointerface/internal/errors"
	"github.com/toyz/autointerface/internal/utils"
)

// DiagnosticReporter prints errors with their suggestions, and with code and context in
// verbose mode
type DiagnosticReporter struct {
	diagnostics *utils.DiagnosticSystem
	verbose     bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(diagnostics *utils.DiagnosticSystem, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		diagnostics: diagnostics,
		verbose:     verbose,
	}
}

// ReportError reports err. Every error collected in a MultipleErrors is reported on its own.
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}

	if multi, ok := err.(*errors.MultipleErrors); ok {
		for _, coded := range multi.Errors {
			r.reportCoded(coded)
		}
		return
	}

	if coded, ok := err.(errors.CodedError); ok {
		r.reportCoded(coded)
		return
	}

	r.diagnostics.Error("%v", err)
}

func (r *DiagnosticReporter) reportCoded(err errors.CodedError) {
	r.diagnostics.Error("%s", err.Error())

	r.diagnostics.Indent()
	defer r.diagnostics.Unindent()

	if r.verbose {
		r.diagnostics.List("Code: %s", err.ErrorCode())
		r.printContext(err.Context())
	}
	r.printSuggestions(err.Suggestions())
}

// printContext lists single-line context values in key order
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if text, ok := context[key].(string); ok && strings.Contains(text, "\n") {
			continue
		}
		r.diagnostics.List("%s: %v", key, context[key])
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	for _, suggestion := range suggestions {
		r.diagnostics.List("Suggestion: %s", suggestion)
	}
}
