package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Price is the decimal cost of a recipe, carried as the literal decimal
// string (e.g. "2.50") to avoid binary floating-point round-tripping.
// It is persisted in a NUMERIC(5,2) column and re-emitted on the wire as a
// JSON number with the exact digits it was stored with.
type Price string

// ErrInvalidPrice is returned when a price value is not a plain decimal
// number.
var ErrInvalidPrice = errors.New("invalid price value")

// UnmarshalJSON accepts the price either as a JSON number (2.50) or as a
// quoted decimal string ("2.50") and keeps the literal digits. Only plain
// decimal notation is accepted: NaN, infinities, exponents and hex floats
// are rejected so that every stored value round-trips as a JSON number.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = unquoted
	}

	if s == "" || s == "null" {
		*p = ""
		return nil
	}

	if !isDecimalLiteral(s) {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	*p = Price(s)
	return nil
}

// MarshalJSON emits the stored literal as a JSON number. A zero-value Price
// serializes as 0.
func (p Price) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("0"), nil
	}

	if !isDecimalLiteral(string(p)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, string(p))
	}

	return []byte(p), nil
}

// Valid reports whether p holds a plain decimal literal.
func (p Price) Valid() bool {
	return isDecimalLiteral(string(p))
}

// String returns the literal decimal representation.
func (p Price) String() string {
	return string(p)
}

// isDecimalLiteral reports whether s is a plain decimal number: an optional
// leading minus, at least one digit, and at most one fractional part.
func isDecimalLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")

	whole, frac, dotted := strings.Cut(s, ".")
	if !allDigits(whole) {
		return false
	}
	if dotted && !allDigits(frac) {
		return false
	}

	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
