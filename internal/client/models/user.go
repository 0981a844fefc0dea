// Package models defines the client-side view of the user resource and the
// normalization rules used for uniqueness checks.
package models

import "strings"

// User is a person record as returned by the user service. The ID is
// assigned by the server.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Draft is an in-progress, possibly invalid candidate user record. ID is
// zero for a record that has not been created yet.
type Draft struct {
	ID          int64
	Name        string
	Email       string
	PhoneNumber string
}

// DraftOf returns a draft pre-filled from an existing user.
func DraftOf(u User) Draft {
	return Draft{ID: u.ID, Name: u.Name, Email: u.Email, PhoneNumber: u.PhoneNumber}
}

// NormalizeEmail lowercases and trims an email for uniqueness comparison.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone strips every non-digit character for uniqueness comparison,
// so "55-1234" and "551234" compare equal.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
