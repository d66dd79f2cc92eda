// Package entities contains domain entities used across the application.
package entities

import "strings"

// NumberLength is the number of digits in a contact phone number.
const NumberLength = 10

// Contact is a named 10-digit phone number the player wants to memorize.
type Contact struct {
	Name   string `json:"name" validate:"required"`                 // display name, unique case-insensitively
	Number string `json:"number" validate:"required,len=10,number"` // exactly 10 digits, unique
}

// NewContact creates a contact with trimmed fields.
func NewContact(name, number string) Contact {
	return Contact{
		Name:   strings.TrimSpace(name),
		Number: strings.TrimSpace(number),
	}
}

// SameName reports whether both contacts carry the same name ignoring case.
func (c Contact) SameName(other Contact) bool {
	return strings.EqualFold(c.Name, other.Name)
}

// IsDigits reports whether s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
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

// IsPhoneNumber reports whether s is exactly NumberLength digits.
func IsPhoneNumber(s string) bool {
	return len(s) == NumberLength && IsDigits(s)
}
