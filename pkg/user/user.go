// Package user defines the account records kept by the admin roster and
// returned by the login API.
package user

import "strings"

// Status values for roster entries.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// User is one roster record. Password is stored as entered; hardening the
// credential store is explicitly out of scope.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Initial  string `json:"initial"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Status   string `json:"status"`
	IsAdmin  bool   `json:"is_admin"`
}

// Initial derives the single-rune avatar initial from a display name.
func Initial(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	return string([]rune(trimmed)[0])
}
