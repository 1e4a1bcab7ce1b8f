// Package validator holds the pure field checks shared by the auth and
// expense services. Everything here is side-effect free.
package validator

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether the address has a plausible shape. Deliverability is
// not checked.
func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Password enforces the strict variant: at least 8 characters containing at
// least one letter and one digit.
func Password(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}

// Amount rejects negative, NaN and infinite amounts. Zero is allowed.
func Amount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errors.New("amount must be a valid number")
	}
	if amount < 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// dateLayouts are the formats the API accepts, matching what the stores can
// compare lexicographically once zero-padded.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Date checks the string parses under one of the accepted layouts.
func Date(date string) error {
	if _, ok := ParseDate(date); !ok {
		return errors.New("invalid date format")
	}
	return nil
}

// ParseDate parses an expense date string, reporting whether it succeeded.
func ParseDate(date string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Category requires a non-empty value after trimming.
func Category(category string) error {
	if strings.TrimSpace(category) == "" {
		return errors.New("category is required")
	}
	return nil
}
