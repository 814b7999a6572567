package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Token   string `json:"token"`
}

func (c *HTTPClient) Register(ctx context.Context, username, password, email string) (int64, error) {
	var resp statusResponse
	err := c.post(ctx, "/api/register", map[string]string{
		"username": username,
		"password": password,
		"email":    email,
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Login sends login as an email when it contains "@", as a username
// otherwise.
func (c *HTTPClient) Login(ctx context.Context, login, password string) (string, error) {
	body := map[string]string{"password": password}
	if strings.Contains(login, "@") {
		body["email"] = login
	} else {
		body["username"] = login
	}

	var resp statusResponse
	if err := c.post(ctx, "/api/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := c.post(ctx, "/api/get_users", map[string]string{"token": token}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token, key, value string) error {
	return c.post(ctx, "/api/user/update", map[string]string{
		"token": token,
		"key":   key,
		"value": value,
	}, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string) error {
	return c.post(ctx, "/api/user/delete", map[string]string{"token": token}, nil)
}

// post sends body as JSON and decodes a 200 answer into out, if out is set.
func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var sr statusResponse
		_ = json.NewDecoder(resp.Body).Decode(&sr)
		if sr.Message == "" {
			sr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: sr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
