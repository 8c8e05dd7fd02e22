// Package client is the data layer a murmur frontend composes at its root:
// a thin cookie-carrying HTTP wrapper around the server's API plus a chat
// store caching users and messages for the UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// User mirrors the public user fields the server returns.
type User struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}

type Message struct {
	ID         string    `json:"_id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
}

// APIError is a non-2xx response decoded into the server's message shape.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client wraps the murmur API. The cookie jar holds the jwt session cookie,
// so one Client is one browser-like session.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// HTTPClient exposes the underlying client, mainly so tests can inspect the
// session cookie jar.
func (c *Client) HTTPClient() *http.Client { return c.http }

// do sends one JSON request. Transport failures come back as wrapped errors,
// non-2xx responses as *APIError, so callers never touch a nil response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Signup(ctx context.Context, fullName, email, password string) (*User, error) {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) CheckAuth(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/check", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile uploads a base64 data URI as the new profile picture.
func (c *Client) UpdateProfile(ctx context.Context, profilePic string) (*User, error) {
	body := map[string]string{"profilePic": profilePic}
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/auth/update-profile", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetSidebarUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/message/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetMessages(ctx context.Context, userID string) ([]Message, error) {
	var messages []Message
	if err := c.do(ctx, http.MethodGet, "/api/message/"+userID, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
