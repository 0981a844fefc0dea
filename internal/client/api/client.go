// Package api is the HTTP client for the user service. It translates the
// four logical operations (list, create, update, delete) into REST calls and
// normalizes responses into parsed payloads or typed errors.
//
// The service has been deployed under different base URLs and resource
// prefixes; both are configuration here, not separate code paths.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cghdev/userdesk/internal/client/models"
)

// Client is the surface the session layer depends on.
type Client interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, d models.Draft) (*models.User, error)
	Update(ctx context.Context, d models.Draft) (*models.User, error)
	Remove(ctx context.Context, id int64) (bool, error)
	Ping(ctx context.Context) error
}

// HTTPClient talks to the user service over REST with JSON bodies.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New builds a client for the service at baseURL with the given resource
// prefix (usually "/user"). Trailing and leading slashes are reconciled, so
// "http://localhost:8081/" + "user/" works too.
func New(baseURL, resourcePrefix string, timeout time.Duration) *HTTPClient {
	base := strings.TrimRight(baseURL, "/")
	prefix := strings.Trim(resourcePrefix, "/")
	if prefix != "" {
		base = base + "/" + prefix
	}
	return &HTTPClient{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type createRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type updateRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// List fetches all users.
func (c *HTTPClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/all", nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches a single user by id.
func (c *HTTPClient) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", id), nil, &u, false); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create posts a draft without an id and returns the created user with the
// server-assigned id.
func (c *HTTPClient) Create(ctx context.Context, d models.Draft) (*models.User, error) {
	body := createRequest{Name: d.Name, Email: d.Email, PhoneNumber: d.PhoneNumber}
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/save", body, &u, false); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update puts a draft with an id and returns the updated user.
func (c *HTTPClient) Update(ctx context.Context, d models.Draft) (*models.User, error) {
	body := updateRequest{ID: d.ID, Name: d.Name, Email: d.Email, PhoneNumber: d.PhoneNumber}
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/update", body, &u, false); err != nil {
		return nil, err
	}
	return &u, nil
}

// Remove deletes a user by id. A 2xx response with an empty or non-JSON body
// (the service answers 204 after a delete) counts as success.
func (c *HTTPClient) Remove(ctx context.Context, id int64) (bool, error) {
	ok := true
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/delete/%d", id), nil, &ok, true); err != nil {
		return false, err
	}
	return ok, nil
}

// Ping probes reachability. Any HTTP response, regardless of status, means
// the server is up.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/all", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// do performs one request. A nil body sends no payload; out receives the
// decoded JSON response. With lenient set, an empty or undecodable 2xx body
// leaves out untouched instead of failing, which is what delete needs.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, lenient bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(resp.StatusCode, data),
		}
	}

	if out == nil {
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		if lenient {
			return nil
		}
		return &MalformedResponseError{Err: fmt.Errorf("empty body for %s %s", method, path)}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		if lenient {
			return nil
		}
		return &MalformedResponseError{Err: err}
	}
	return nil
}

// serverMessage extracts a human-readable message from an error response
// body: a JSON "error" or "message" field when present, otherwise the raw
// body text, otherwise the HTTP status text.
func serverMessage(status int, data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return http.StatusText(status)
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return string(trimmed)
}
