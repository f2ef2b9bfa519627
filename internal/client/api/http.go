package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minseo-k/fridgekeeper/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the remote service.
type HTTPClient struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the service at baseURL
// (e.g. "http://127.0.0.1:8000", no trailing slash).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearAuthToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) AuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type loginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, loginID, password string) (*TokenResponse, error) {
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, "/user/login", loginRequest{LoginID: loginID, Password: password}, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

type createUserRequest struct {
	LoginID   string `json:"login_id"`
	Username  string `json:"username"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

func (c *HTTPClient) CreateUser(ctx context.Context, loginID, username, password1, password2 string) error {
	req := createUserRequest{
		LoginID:   loginID,
		Username:  username,
		Password1: password1,
		Password2: password2,
	}
	return c.do(ctx, http.MethodPost, "/user/create", req, nil)
}

type deleteUserRequest struct {
	Password string `json:"password"`
}

func (c *HTTPClient) DeleteUser(ctx context.Context, userID int64, password string) error {
	path := fmt.Sprintf("/user/%d/delete", userID)
	return c.do(ctx, http.MethodDelete, path, deleteUserRequest{Password: password}, nil)
}

func (c *HTTPClient) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/item/%d", userID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/item/%d/delete", itemID), nil, nil)
}

// errorPayload is the service's error body.
type errorPayload struct {
	Detail string `json:"detail"`
}

// do issues one JSON request. A nil out skips response decoding (204-style
// endpoints). Transport failures are wrapped in ErrUnavailable; non-2xx
// statuses become *Error with the payload detail when parsable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.AuthToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var payload errorPayload
		if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr == nil {
			apiErr.Detail = payload.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
