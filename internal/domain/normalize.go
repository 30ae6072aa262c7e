package domain

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address, so
// lookups and the unique index see one spelling per mailbox.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
