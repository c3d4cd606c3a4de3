// ABOUTME: Credential validation rules shared by the login form and the fake backend.
// ABOUTME: Messages are the exact strings shown next to the offending field.
package wire

import "net/mail"

// PasswordMinLen is the minimum accepted password length.
const PasswordMinLen = 6

// Validation messages.
const (
	EmailErrorMessage    = "Must provide a valid email address."
	PasswordErrorMessage = "Password must be at least 6 characters in length."
)

// ValidEmail reports whether s is a bare, syntactically valid address.
// Display-name forms such as "Bob <bob@example.com>" are rejected.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// ValidPassword reports whether s meets the length requirement.
func ValidPassword(s string) bool {
	return len(s) >= PasswordMinLen
}
