package errors

import "fmt"

// Common error wrapping patterns used throughout the codebase

// IndentStateError reports an indentation depth driven below zero. It signals a bug in the
// emission sequence, never bad input.
func IndentStateError(depth int) *BaseError {
	return Newf(InvalidIndentStateErrorCode, "indent depth driven negative (%d)", depth).
		WithContext("depth", depth)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, cause error) *BaseError {
	message := fmt.Sprintf("failed to generate %s", item)
	return Wrap(GenerationErrorCode, message, cause).
		WithContext("item", item)
}

// WrapManifestError wraps a manifest decoding error
func WrapManifestError(path string, cause error) *BaseError {
	return Wrap(ManifestErrorCode, "failed to decode manifest", cause).
		WithLocation(SourceLocation{File: path}).
		WithSuggestion("Check the manifest syntax and that only known keys are used")
}

// ManifestError creates a manifest error without wrapping
func ManifestError(path, message string) *BaseError {
	return New(ManifestErrorCode, message).
		WithLocation(SourceLocation{File: path})
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// ConfigurationError creates a configuration error for an invalid option value
func ConfigurationError(option, message string) *BaseError {
	return Newf(ConfigurationErrorCode, "invalid option '%s': %s", option, message).
		WithContext("option", option)
}

// DriftError reports generated output that no longer matches a file on disk
func DriftError(path string, diff string) *BaseError {
	return Newf(DriftErrorCode, "generated output differs from '%s'", path).
		WithContext("path", path).
		WithContext("diff", diff).
		WithSuggestion("Regenerate the file or inspect the diff above")
}
