// Package models holds the persisted entities of the user service.
package models

// User is the service's record of a person. Email and phone number are
// unique after normalization; the database enforces both.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
