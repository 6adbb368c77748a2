// Package api provides the client for the remote expense and auth services.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/expense"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB

	expensePrefix = "/expense/v1"
	authPrefix    = "/auth/v1"

	userIDHeader = "X-User-Id"
)

// ErrUnauthorized indicates the credentials or session token were rejected.
var ErrUnauthorized = errors.New("api: unauthorized")

// HTTPError is a non-2xx response, carrying the server's message when one
// was provided.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Client talks to the expense service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:9820".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// GetExpenses fetches the ordered expense list for a user. The order is
// server-determined and preserved as display order.
func (c *Client) GetExpenses(ctx context.Context, userID string) ([]expense.Expense, error) {
	path := expensePrefix + "/getExpense?user_id=" + url.QueryEscape(userID)
	body, err := c.do(ctx, http.MethodGet, path, userID, nil)
	if err != nil {
		return nil, err
	}

	var list []expense.Expense
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("api: parsing expenses: %w", err)
	}
	return list, nil
}

// AddExpense submits a new expense record. The caller is expected to refetch
// the list afterwards; the response body is not a source of truth.
func (c *Client) AddExpense(ctx context.Context, e expense.Expense) error {
	body, err := c.do(ctx, http.MethodPost, expensePrefix+"/addExpense", e.UserID, e)
	if err != nil {
		return err
	}

	// Best-effort decode; an unparseable success body is still a success.
	var res addResult
	_ = json.Unmarshal(body, &res)
	return nil
}

// SignIn authenticates existing credentials and returns the user object.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (UserData, error) {
	return c.auth(ctx, authPrefix+"/signin", creds)
}

// SignUp registers a new account and returns the user object.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (UserData, error) {
	return c.auth(ctx, authPrefix+"/signup", req)
}

func (c *Client) auth(ctx context.Context, path string, payload any) (UserData, error) {
	body, err := c.do(ctx, http.MethodPost, path, "", payload)
	if err != nil {
		return UserData{}, err
	}

	var user UserData
	if err := json.Unmarshal(body, &user); err != nil {
		return UserData{}, fmt.Errorf("api: parsing auth response: %w", err)
	}
	if user.UserID == "" {
		return UserData{}, errors.New("api: auth response missing user_id")
	}
	return user, nil
}

// do performs one request and returns the response body. Non-2xx statuses
// become errors; the optional message field of an error body is surfaced.
func (c *Client) do(ctx context.Context, method, path, userID string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		_ = json.Unmarshal(body, &ae)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: ae.Message}
	}

	return body, nil
}
