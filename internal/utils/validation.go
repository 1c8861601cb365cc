package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/toyz/autointerface/internal/errors"
)

var (
	identifierPattern = regexp.MustCompile(`^@?[\p{L}_][\p{L}\p{Nd}_]*$`)
	namespacePattern  = regexp.MustCompile(`^[\p{L}_][\p{L}\p{Nd}_]*(\.[\p{L}_][\p{L}\p{Nd}_]*)*$`)
)

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain runs validators in order and stops at the first failure
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Validate runs all validators in the chain
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return errors.MissingField(field)
		}
		return nil
	}
}

// NotBlank validates that a string has at least one non-space character
func NotBlank(field string) Validator[string] {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.MissingField(field)
		}
		return nil
	}
}

// MatchesRegex validates that a string matches a regex pattern
func MatchesRegex(field string, regex *regexp.Regexp, expected string) Validator[string] {
	return func(value string) error {
		if !regex.MatchString(value) {
			return errors.NewValidationError(field, expected, fmt.Sprintf("%q", value))
		}
		return nil
	}
}

// IsValidIdentifier validates a single C# identifier, allowing the @ verbatim prefix
func IsValidIdentifier(field string) Validator[string] {
	return MatchesRegex(field, identifierPattern, "a valid identifier")
}

// IsValidNamespace validates a dotted C# namespace name
func IsValidNamespace(field string) Validator[string] {
	return MatchesRegex(field, namespacePattern, "a dotted namespace name")
}

// IdentifierChain requires a non-empty, well-formed identifier
func IdentifierChain(field string) *ValidatorChain[string] {
	return NewValidatorChain(NotEmpty(field), IsValidIdentifier(field))
}
