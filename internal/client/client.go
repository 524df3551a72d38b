// Package client provides a typed HTTP client for the settings API,
// used by the table, form and shell controllers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

// StatusError is a non-success response from the settings API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("settings api returned status %d", e.Code)
}

// Client calls the settings API endpoints.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, http.DefaultClient)
}

// NewWithHTTPClient creates a Client using a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// CreateUser submits a new user and returns the record as created by the
// store, with id and creation timestamp assigned.
func (c *Client) CreateUser(ctx context.Context, form domain.UserForm) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodPost, "/api/add", form, &user, http.StatusCreated)
	return user, err
}

// ListUsers fetches the full record array.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, http.MethodGet, "/api/get", nil, &users, http.StatusOK)
	return users, err
}

// updatePayload is the update request body: the id plus the patchable
// fields.
type updatePayload struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

// UpdateUser patches an existing user and returns the record the server
// confirmed.
func (c *Client) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	var user domain.User
	payload := updatePayload{ID: id, Name: patch.Name, Role: patch.Role}
	err := c.do(ctx, http.MethodPut, "/api/update", payload, &user, http.StatusOK)
	return user, err
}

// DeleteUser removes a user. The id travels as a query parameter.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/delete?id="+url.QueryEscape(id), nil, nil, http.StatusOK)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, want int) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("call settings api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrUserNotFound
		}
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{Code: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
