package service

import (
	"regexp"

	"qaforum/internal/errors"
)

// Character classes the policy requires. The symbol set is fixed: anything
// outside letters, digits, and this set fails the whole-string check.
var (
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
	hasSymbol       = regexp.MustCompile(`[@$!%*?&]`)
)

// PasswordValidator checks the registration password policy.
type PasswordValidator struct{}

// NewPasswordValidator creates a new password validator.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// Validate enforces the policy: at least 8 characters with at least one
// letter, one digit, and one symbol from the allowed set. Runs before
// hashing so weak secrets never reach bcrypt.
func (v *PasswordValidator) Validate(password string) error {
	if !passwordCharset.MatchString(password) {
		return errors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) || !hasSymbol.MatchString(password) {
		return errors.ErrWeakPassword
	}
	return nil
}
