package utils

import (
	"errors"
	"strings"
)

// ErrInvalidEmail is returned when an email address is empty or does not
// contain exactly one "@" separating a non-empty local part and domain.
var ErrInvalidEmail = errors.New("invalid email address")

// NormalizeEmail validates an email address and lowercases its domain part.
//
// Only the domain is case-folded; the local part keeps its original casing
// ("Test@Email.COM" → "Test@email.com"). The address must contain exactly
// one "@" with non-empty parts on both sides; anything else returns
// [ErrInvalidEmail].
func NormalizeEmail(email string) (string, error) {
	if email == "" {
		return "", ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ErrInvalidEmail
	}
	if strings.Count(email, "@") != 1 {
		return "", ErrInvalidEmail
	}

	local, domain := email[:at], email[at+1:]

	return local + "@" + strings.ToLower(domain), nil
}
