// Package validator holds the format checks applied to resident personal data.
package validator

import (
	"regexp"
	"strings"
)

// nationalIDPattern matches the grouped CPF layout, e.g. 123.456.789-09.
// Only the format is checked, never the check digits.
var nationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// namePattern accepts letters (ASCII and Latin-1 accented) with single interior
// separators from the set ' , . - and space.
var namePattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ]+(?:[',. -][A-Za-zÀ-ÖØ-öø-ÿ]+)*$`)

// IsValidNationalID reports whether id has the DDD.DDD.DDD-DD layout.
func IsValidNationalID(id string) bool {
	if id == "" {
		return false
	}
	return nationalIDPattern.MatchString(id)
}

// IsValidName reports whether name is a non-blank personal name without digits.
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return namePattern.MatchString(name)
}
