// Package validation checks a draft user record before it is submitted to
// the server. Validation is pure and synchronous; uniqueness is compared
// only against the values the caller supplies, never against the server.
package validation

import (
	"strings"

	"github.com/cghdev/userdesk/internal/client/models"
)

// Field names used as keys in FieldErrors.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phoneNumber"
)

// Messages for field errors. Kept in one place so the UI and tests agree.
const (
	MsgNameRequired  = "name is required"
	MsgEmailRequired = "email is required"
	MsgPhoneRequired = "phone number is required"
	MsgEmailTaken    = "this email is already registered"
	MsgPhoneTaken    = "this phone number is already registered"
)

// FieldErrors maps a field name to a user-facing message. An empty map means
// the draft is valid.
type FieldErrors map[string]string

// Valid reports whether the map contains no errors.
func (e FieldErrors) Valid() bool { return len(e) == 0 }

// Validate checks required fields and uniqueness of email and phone number.
//
// takenEmails and takenPhones are the values already in use; when editing an
// existing record the caller must have excluded that record's own values.
// Comparison uses models.NormalizeEmail and models.NormalizePhone.
func Validate(d models.Draft, takenEmails, takenPhones []string) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	}
	if strings.TrimSpace(d.PhoneNumber) == "" {
		errs[FieldPhone] = MsgPhoneRequired
	}

	if _, ok := errs[FieldEmail]; !ok {
		email := models.NormalizeEmail(d.Email)
		for _, taken := range takenEmails {
			if models.NormalizeEmail(taken) == email {
				errs[FieldEmail] = MsgEmailTaken
				break
			}
		}
	}

	if _, ok := errs[FieldPhone]; !ok {
		phone := models.NormalizePhone(d.PhoneNumber)
		for _, taken := range takenPhones {
			if models.NormalizePhone(taken) == phone {
				errs[FieldPhone] = MsgPhoneTaken
				break
			}
		}
	}

	return errs
}
