// Package form owns the editable draft of a single user record. It validates
// before submission and only invokes the caller-supplied submit callback when
// the draft is valid. Success and failure messaging stays with the caller.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/cghdev/userdesk/internal/client/models"
	"github.com/cghdev/userdesk/internal/client/validation"
)

// ErrInvalidDraft is returned by Submit when validation failed. Field-level
// details are available via Errors.
var ErrInvalidDraft = errors.New("draft has validation errors")

// SubmitFunc persists a valid draft. The controller awaits it and propagates
// its error unchanged.
type SubmitFunc func(ctx context.Context, d models.Draft) error

// Controller tracks one draft and its current field errors.
type Controller struct {
	draft  models.Draft
	errors validation.FieldErrors
}

func New() *Controller {
	return &Controller{errors: validation.FieldErrors{}}
}

// SetValue re-initializes the controller with a new draft, e.g. when
// switching from create to edit. Previous field errors are discarded.
func (c *Controller) SetValue(d models.Draft) {
	c.draft = d
	c.errors = validation.FieldErrors{}
}

// Draft returns the current draft.
func (c *Controller) Draft() models.Draft { return c.draft }

// Errors returns the field errors from the last Submit.
func (c *Controller) Errors() validation.FieldErrors { return c.errors }

// SetField merges a single field update into the draft.
func (c *Controller) SetField(field, value string) error {
	switch field {
	case validation.FieldName:
		c.draft.Name = value
	case validation.FieldEmail:
		c.draft.Email = value
	case validation.FieldPhone:
		c.draft.PhoneNumber = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Reset clears all editable fields while preserving the ID, so clearing an
// edit form does not turn the draft into a create.
func (c *Controller) Reset() {
	c.draft = models.Draft{ID: c.draft.ID}
	c.errors = validation.FieldErrors{}
}

// Submit validates the draft against the supplied taken sets and, only when
// valid, invokes onSubmit and awaits it. On validation failure it records
// the field errors and returns ErrInvalidDraft without calling onSubmit.
func (c *Controller) Submit(ctx context.Context, takenEmails, takenPhones []string, onSubmit SubmitFunc) error {
	c.errors = validation.Validate(c.draft, takenEmails, takenPhones)
	if !c.errors.Valid() {
		return ErrInvalidDraft
	}
	return onSubmit(ctx, c.draft)
}
