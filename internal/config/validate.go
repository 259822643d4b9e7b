package config

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidLocale indicates a locale that is not a BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if err := ValidateFormat(cfg.Format); err != nil {
		errs = append(errs, err)
	}

	if err := ValidateLocale(cfg.Locale); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return &FieldError{Field: KeyFormat, Value: format, Err: ErrInvalidFormat}
	}
}

// ValidateLocale checks a locale tag. The empty tag is valid.
func ValidateLocale(locale string) error {
	if locale == "" {
		return nil
	}
	if _, err := language.Parse(locale); err != nil {
		return &FieldError{Field: KeyLocale, Value: locale, Err: ErrInvalidLocale}
	}
	return nil
}

// FieldError represents an invalid value for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
