// Package session owns the client-side UI state: the authoritative list of
// users, the busy flag, the last error, the toast, the side-panel mode and
// the delete confirmation. State is mutated only through Session methods, so
// concurrent handlers cannot corrupt it silently.
//
// After every successful mutation the full list is reloaded from the server;
// the session never patches its local copy optimistically.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/cghdev/userdesk/internal/client/api"
	"github.com/cghdev/userdesk/internal/client/models"
	"github.com/cghdev/userdesk/internal/common"
	"github.com/cghdev/userdesk/internal/logging"
	"github.com/google/uuid"
)

// PanelMode distinguishes the create and edit variants of the side panel.
type PanelMode string

const (
	ModeCreate PanelMode = "create"
	ModeEdit   PanelMode = "edit"
)

// Panel is the side-panel state: closed, open(create) or open(edit).
type Panel struct {
	Open bool
	Mode PanelMode
	Data *models.Draft
}

// ToastKind classifies a toast notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient operation-outcome notification. A zero Toast means
// nothing to show.
type Toast struct {
	Message string
	Kind    ToastKind
}

// State is a snapshot of everything the UI renders.
type State struct {
	Items         []models.User
	Loading       bool
	Err           string
	Toast         Toast
	Panel         Panel
	PendingDelete *models.User
}

// Session is the single owner of State.
type Session struct {
	api    api.Client
	logger logging.Logger

	mu       sync.Mutex
	state    State
	mutating bool
}

func New(client api.Client, logger logging.Logger) *Session {
	return &Session{api: client, logger: logger}
}

// State returns a copy of the current state, safe to read while handlers
// run concurrently.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = append([]models.User(nil), s.state.Items...)
	if s.state.Panel.Data != nil {
		d := *s.state.Panel.Data
		st.Panel.Data = &d
	}
	if s.state.PendingDelete != nil {
		u := *s.state.PendingDelete
		st.PendingDelete = &u
	}
	return st
}

// Load replaces Items with the server's list. The busy flag is set for the
// duration and cleared on every path; a failure records Err and keeps the
// last-known-good items.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	users, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
		s.logger.Error(ctx, "loading users failed", "error", err)
		return err
	}
	if users == nil {
		users = []models.User{}
	}
	s.state.Items = users
	return nil
}

// OpenCreate opens the panel with a blank draft.
func (s *Session) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Panel = Panel{Open: true, Mode: ModeCreate, Data: &models.Draft{}}
}

// OpenEdit opens the panel with a draft copied from u.
func (s *Session) OpenEdit(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.DraftOf(u)
	s.state.Panel = Panel{Open: true, Mode: ModeEdit, Data: &d}
}

// ClosePanel closes the panel, discarding any unsaved draft.
func (s *Session) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Panel = Panel{}
}

// RequestDelete opens the confirmation dialog for u.
func (s *Session) RequestDelete(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PendingDelete = &u
}

// CancelDelete hides the confirmation dialog.
func (s *Session) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PendingDelete = nil
}

// DismissToast clears the current toast.
func (s *Session) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Toast = Toast{}
}

// FindUser looks up a user by id in the current items.
func (s *Session) FindUser(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.state.Items {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Taken returns the emails and phone numbers already in use, excluding the
// record currently being edited so resubmitting its own values is not a
// duplicate.
func (s *Session) Taken() (emails, phones []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var excludeID int64
	if s.state.Panel.Open && s.state.Panel.Mode == ModeEdit && s.state.Panel.Data != nil {
		excludeID = s.state.Panel.Data.ID
	}

	for _, u := range s.state.Items {
		if excludeID != 0 && u.ID == excludeID {
			continue
		}
		emails = append(emails, u.Email)
		phones = append(phones, u.PhoneNumber)
	}
	return emails, phones
}

// Create submits a new user and, on success, reloads the list, shows a
// success toast and closes the panel. On failure the panel stays open and
// an error toast is shown.
func (s *Session) Create(ctx context.Context, d models.Draft) error {
	return s.mutate(ctx, "create user", func(ctx context.Context) error {
		_, err := s.api.Create(ctx, models.Draft{Name: d.Name, Email: d.Email, PhoneNumber: d.PhoneNumber})
		return err
	}, "User created", func() {
		s.state.Panel = Panel{}
	})
}

// Update submits changes to an existing user; same outcome handling as
// Create.
func (s *Session) Update(ctx context.Context, d models.Draft) error {
	return s.mutate(ctx, "update user", func(ctx context.Context) error {
		_, err := s.api.Update(ctx, d)
		return err
	}, "User updated", func() {
		s.state.Panel = Panel{}
	})
}

// ConfirmDelete deletes the pending user. Only the success path clears the
// confirmation dialog; on failure it stays open so the user can retry or
// cancel.
func (s *Session) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	pending := s.state.PendingDelete
	s.mu.Unlock()
	if pending == nil {
		return errors.New("no deletion pending")
	}

	return s.mutate(ctx, "delete user", func(ctx context.Context) error {
		_, err := s.api.Remove(ctx, pending.ID)
		return err
	}, "User deleted", func() {
		s.state.PendingDelete = nil
	})
}

// mutate runs one create/update/delete against the server. Only one mutation
// may be in flight at a time; a second call is rejected with
// common.ErrMutationInFlight rather than queued, so a stale draft can never
// overwrite newer server state. On success the list is reloaded before the
// state transition is applied.
func (s *Session) mutate(ctx context.Context, op string, call func(context.Context) error, successMsg string, onSuccess func()) error {
	s.mu.Lock()
	if s.mutating {
		s.mu.Unlock()
		return common.ErrMutationInFlight
	}
	s.mutating = true
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.mutating = false
		s.state.Loading = false
		s.mu.Unlock()
	}()

	log := s.logger.With("op", op, "request_id", uuid.NewString())

	if err := call(ctx); err != nil {
		log.Error(ctx, "mutation failed", "error", err)
		s.mu.Lock()
		s.state.Err = err.Error()
		s.state.Toast = Toast{Message: err.Error(), Kind: ToastError}
		s.mu.Unlock()
		return err
	}

	// Resynchronize from the source of truth. The mutation itself succeeded,
	// so the transition and the success toast still apply if this fails.
	if err := s.reload(ctx); err != nil {
		log.Warn(ctx, "reload after mutation failed", "error", err)
	}

	s.mu.Lock()
	onSuccess()
	s.state.Toast = Toast{Message: successMsg, Kind: ToastSuccess}
	s.mu.Unlock()

	log.Info(ctx, "mutation complete")
	return nil
}

func (s *Session) reload(ctx context.Context) error {
	users, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Err = err.Error()
		return err
	}
	if users == nil {
		users = []models.User{}
	}
	s.state.Items = users
	return nil
}
