package survey

import (
	"fmt"
	"strings"

	"github.com/mvirtane/leadwizard/internal/errors"
)

// Validation failures are user-correctable and surface inline in the wizard.
// They are never logged.
var (
	ErrMissingFields  = errors.NewSentinel("please fill in your name, email and phone number")
	ErrInvalidEmail   = errors.NewSentinel("please enter a valid email address")
	ErrInvalidPhone   = errors.NewSentinel("please enter a 10-digit phone number")
	ErrConsentMissing = errors.NewSentinel("please accept the privacy policy to continue")
)

// ValidEmail checks for a local@domain shape with no whitespace and at least
// one dot in the domain portion.
func ValidEmail(email string) bool {
	if strings.ContainsAny(email, " \t\n\r") {
		return false
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone requires exactly 10 digits once punctuation is stripped.
// Punctuation never affects validity.
func ValidPhone(phone string) bool {
	return len(Digits(phone)) == 10
}

// FormatPhone renders a 10-digit number as (NNN) NNN-NNNN for display.
// Anything else is returned with punctuation stripped.
func FormatPhone(phone string) string {
	digits := Digits(phone)
	if len(digits) != 10 {
		return digits
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// Validate checks the contact fields in fixed priority order and returns the
// first failing condition only: required fields, then email, then phone, then
// consent.
func (c ContactInfo) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Phone) == "" {
		return ErrMissingFields
	}
	if !ValidEmail(c.Email) {
		return ErrInvalidEmail
	}
	if !ValidPhone(c.Phone) {
		return ErrInvalidPhone
	}
	if !c.Consent {
		return ErrConsentMissing
	}
	return nil
}
