package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cghdev/userdesk/internal/client/api"
	"github.com/cghdev/userdesk/internal/client/config"
	"github.com/cghdev/userdesk/internal/client/models"
	"github.com/cghdev/userdesk/internal/client/session"
	"github.com/cghdev/userdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeAPI is a minimal in-memory user service.
type storeAPI struct {
	users          []models.User
	nextID         int64
	failCreate     error
	failCreateOnce bool
	failRemove     error
}

func (f *storeAPI) List(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *storeAPI) Get(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, &api.ServerError{StatusCode: http.StatusNotFound, Message: "user not found"}
}

func (f *storeAPI) Create(ctx context.Context, d models.Draft) (*models.User, error) {
	if f.failCreate != nil {
		err := f.failCreate
		if f.failCreateOnce {
			f.failCreate = nil
		}
		return nil, err
	}
	f.nextID++
	u := models.User{ID: f.nextID, Name: d.Name, Email: d.Email, PhoneNumber: d.PhoneNumber}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *storeAPI) Update(ctx context.Context, d models.Draft) (*models.User, error) {
	for i, u := range f.users {
		if u.ID == d.ID {
			f.users[i] = models.User{ID: d.ID, Name: d.Name, Email: d.Email, PhoneNumber: d.PhoneNumber}
			return &f.users[i], nil
		}
	}
	return nil, &api.ServerError{StatusCode: http.StatusNotFound, Message: "user not found"}
}

func (f *storeAPI) Remove(ctx context.Context, id int64) (bool, error) {
	if f.failRemove != nil {
		return false, f.failRemove
	}
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *storeAPI) Ping(ctx context.Context) error { return nil }

func newTestApp(t *testing.T, store *storeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out bytes.Buffer

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.RequestTimeout = time.Second

	return &App{
		config:  cfg,
		api:     store,
		session: session.New(store, logger),
		logger:  logger,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}, &out
}

func TestListUsers_PrintsTable(t *testing.T) {
	store := &storeAPI{users: []models.User{{ID: 1, Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}}, nextID: 1}
	app, out := newTestApp(t, store, "")

	require.NoError(t, app.ListUsers(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Ana")
	assert.Contains(t, s, "a@x.com")
	assert.Contains(t, s, "1 record(s)")
}

func TestAddUser_HappyPath(t *testing.T) {
	store := &storeAPI{}
	app, out := newTestApp(t, store, "Ana\na@x.com\n555-0001\n")

	require.NoError(t, app.AddUser(context.Background()))

	require.Len(t, store.users, 1)
	assert.Equal(t, "Ana", store.users[0].Name)
	assert.Contains(t, out.String(), "User created")
	assert.False(t, app.session.State().Panel.Open)
}

func TestAddUser_ValidationErrorsThenGiveUp(t *testing.T) {
	store := &storeAPI{}
	// Empty fields, then answer "n" to "Keep editing?".
	app, out := newTestApp(t, store, "\n\n\nn\n")

	require.NoError(t, app.AddUser(context.Background()))

	assert.Empty(t, store.users)
	s := out.String()
	assert.Contains(t, s, "name is required")
	assert.Contains(t, s, "email is required")
	assert.Contains(t, s, "phone number is required")
	assert.False(t, app.session.State().Panel.Open, "panel closed after giving up")
}

func TestAddUser_DuplicateAgainstCurrentList(t *testing.T) {
	store := &storeAPI{users: []models.User{{ID: 1, Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}}, nextID: 1}
	app, out := newTestApp(t, store, "Bob\nA@X.com\n5550001\nn\n")
	require.NoError(t, app.session.Load(context.Background()))

	require.NoError(t, app.AddUser(context.Background()))

	require.Len(t, store.users, 1, "nothing was submitted")
	s := out.String()
	assert.Contains(t, s, "already registered")
}

func TestAddUser_ServerFailureKeepsPanelThenRetry(t *testing.T) {
	store := &storeAPI{
		failCreate:     &api.ServerError{StatusCode: 500, Message: "duplicate key"},
		failCreateOnce: true,
	}

	// First round fails on the server; keep editing (default Y), keep every
	// field (plain Enter), second round succeeds.
	app, out := newTestApp(t, store, "Ana\na@x.com\n555\n\n\n\n\n")

	require.NoError(t, app.AddUser(context.Background()))

	require.Len(t, store.users, 1)
	s := out.String()
	assert.Contains(t, s, "duplicate key")
	assert.Contains(t, s, "User created")
}

func TestEditUser_SelfValuesAreNotDuplicates(t *testing.T) {
	store := &storeAPI{users: []models.User{{ID: 1, Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}}, nextID: 1}
	// Keep every field (plain Enter).
	app, out := newTestApp(t, store, "\n\n\n")
	require.NoError(t, app.session.Load(context.Background()))

	require.NoError(t, app.EditUser(context.Background(), 1))

	assert.Contains(t, out.String(), "User updated")
	require.Len(t, store.users, 1)
	assert.Equal(t, "Ana", store.users[0].Name)
}

func TestEditUser_UnknownID(t *testing.T) {
	app, out := newTestApp(t, &storeAPI{}, "")
	require.NoError(t, app.EditUser(context.Background(), 42))
	assert.Contains(t, out.String(), "No user with id 42")
}

func TestDeleteUser_ConfirmAndCancel(t *testing.T) {
	ana := models.User{ID: 1, Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}

	t.Run("cancel leaves the user alone", func(t *testing.T) {
		store := &storeAPI{users: []models.User{ana}, nextID: 1}
		app, out := newTestApp(t, store, "n\n")
		require.NoError(t, app.session.Load(context.Background()))

		require.NoError(t, app.DeleteUser(context.Background(), 1))

		assert.Len(t, store.users, 1)
		assert.Contains(t, out.String(), "Cancelled")
		assert.Nil(t, app.session.State().PendingDelete)
	})

	t.Run("confirm deletes and clears the dialog", func(t *testing.T) {
		store := &storeAPI{users: []models.User{ana}, nextID: 1}
		app, out := newTestApp(t, store, "y\n")
		require.NoError(t, app.session.Load(context.Background()))

		require.NoError(t, app.DeleteUser(context.Background(), 1))

		assert.Empty(t, store.users)
		assert.Contains(t, out.String(), "User deleted")
		assert.Nil(t, app.session.State().PendingDelete)
	})

	t.Run("failure keeps dialog for retry", func(t *testing.T) {
		store := &storeAPI{users: []models.User{ana}, nextID: 1}
		store.failRemove = &api.ServerError{StatusCode: 500, Message: "storage offline"}
		app, out := newTestApp(t, store, "y\nn\n")
		require.NoError(t, app.session.Load(context.Background()))

		require.NoError(t, app.DeleteUser(context.Background(), 1))

		assert.Len(t, store.users, 1)
		s := out.String()
		assert.Contains(t, s, "storage offline")
		assert.Contains(t, s, "Retry deleting")
	})
}

func TestShowUser(t *testing.T) {
	store := &storeAPI{users: []models.User{{ID: 1, Name: "Ana", Email: "a@x.com", PhoneNumber: "555-0001"}}, nextID: 1}
	app, out := newTestApp(t, store, "")

	require.NoError(t, app.ShowUser(context.Background(), 1))
	assert.Contains(t, out.String(), "Ana")

	err := app.ShowUser(context.Background(), 9)
	require.Error(t, err)
	assert.Contains(t, out.String(), "user not found")
}
