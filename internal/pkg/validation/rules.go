package validation

import (
	"regexp"

	"github.com/iiuc/alumnihub/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable. Case-insensitive; the
	// credential store normalizes the case on its own.
	EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 6

	// Display name min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// StringValidation validates a single string field
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// ValidateEmail checks email shape
func ValidateEmail(email string) error {
	ok := NewStringValidation(email).
		WithPattern(CompiledPatterns.Email).
		Validate()
	if !ok {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks password length
func ValidatePassword(password string) error {
	ok := NewStringValidation(password).
		WithMinLength(PasswordMinLength).
		Validate()
	if !ok {
		return apperrors.ErrInvalidPassword
	}
	return nil
}

// ValidateSignUp validates the sign-up form fields. The same rules the
// presentation layer applies before calling the session provider.
func ValidateSignUp(email, password, confirmPassword, displayName string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	ok := NewStringValidation(displayName).
		WithMinLength(NameMinLength).
		WithMaxLength(NameMaxLength).
		Validate()
	if !ok {
		return apperrors.NewValidationError("display name is required")
	}
	return nil
}

// ValidateLogin validates the login form fields
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return apperrors.ErrInvalidPassword
	}
	return nil
}
