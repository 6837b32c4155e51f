package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidRule flags a rule definition which violates a constraint.
// ErrDuplicateLanguage is returned if a rule set would contain more than one
// rule for a language code.
var (
	ErrInvalidRule       = errors.New("invalid language rule")
	ErrDuplicateLanguage = errors.New("duplicate language code")
)

// ConfigError is the error type for everything that may go wrong while turning
// a rule source into a RuleSet. A ConfigError is always fatal: no partial
// rule set is ever produced.
type ConfigError struct {
	Lang  string // language code of the offending rule, if known
	Field string // name of the offending field, if known
	Err   error  // underlying cause
}

func (e *ConfigError) Error() string {
	msg := "rule configuration"
	if e.Lang != "" {
		msg += fmt.Sprintf(" [%s]", e.Lang)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %q", e.Field)
	}
	if e.Err == nil {
		return msg + ": unknown error"
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalid(lang, field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Lang:  lang,
		Field: field,
		Err:   fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidRule}, args...)...),
	}
}
