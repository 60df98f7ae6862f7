// Package auth implements the token-based login client against the
// companion API, with a local fallback when the backend is unreachable.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kotanikosei/Emo/pkg/user"
)

// RequestTimeout bounds every API call. Past it the backend is treated as
// unavailable; there are no retries.
const RequestTimeout = 3 * time.Second

// Fixed fallback credentials accepted locally when the API cannot be
// reached.
const (
	FallbackID     = "000"
	FallbackSecret = "000"
	FallbackToken  = "fallback-token"
)

var (
	// ErrUnavailable marks a network-level failure to reach the backend.
	ErrUnavailable = errors.New("auth: api unavailable")
	// ErrBadCredentials is the user-facing login rejection.
	ErrBadCredentials = errors.New("IDまたはパスワードが正しくありません")
	// ErrNoToken means no session is cached locally.
	ErrNoToken = errors.New("auth: not logged in")
)

// TokenStore caches the session token between runs. The diskv store
// implements it.
type TokenStore interface {
	Token() (string, bool)
	SetToken(token string) error
	ClearToken() error
}

// Client talks to the companion API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenStore
}

// NewClient builds a client with the fixed request timeout.
func NewClient(baseURL string, tokens TokenStore) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: RequestTimeout},
		Tokens:  tokens,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type sessionResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

type apiError struct {
	Message string `json:"message"`
}

// Login authenticates against the backend and caches the returned token. If
// the backend is unreachable, the fixed fallback pair authenticates locally
// as the demo user; anything else surfaces the login rejection.
func (c *Client) Login(ctx context.Context, email, password string, admin bool) (user.User, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password, IsAdmin: admin})
	if err != nil {
		return user.User{}, err
	}
	var resp sessionResponse
	err = c.request(ctx, http.MethodPost, "/login", body, "", &resp)
	if errors.Is(err, ErrUnavailable) {
		return c.fallbackLogin(email, password, admin)
	}
	if err != nil {
		return user.User{}, err
	}
	if err := c.Tokens.SetToken(resp.Token); err != nil {
		return user.User{}, err
	}
	return resp.User, nil
}

func (c *Client) fallbackLogin(email, password string, admin bool) (user.User, error) {
	if email != FallbackID || password != FallbackSecret {
		return user.User{}, ErrBadCredentials
	}
	if err := c.Tokens.SetToken(FallbackToken); err != nil {
		return user.User{}, err
	}
	return user.User{
		ID:      1,
		Name:    "デモユーザー",
		Initial: user.Initial("デモユーザー"),
		Email:   "demo@emocal.com",
		IsAdmin: admin,
	}, nil
}

// Guest drops any cached session and continues without an account. Guest
// sessions never sync; the local store is the only copy.
func (c *Client) Guest() (user.User, error) {
	if err := c.Tokens.ClearToken(); err != nil {
		return user.User{}, err
	}
	return user.User{
		Name:    "ゲスト",
		Initial: user.Initial("ゲスト"),
	}, nil
}

// Logout invalidates the session server-side when possible and always clears
// the cached token.
func (c *Client) Logout(ctx context.Context) error {
	token, ok := c.Tokens.Token()
	if ok && token != FallbackToken {
		// Best effort: a dead backend must not keep us logged in.
		_ = c.request(ctx, http.MethodPost, "/logout", nil, token, nil)
	}
	return c.Tokens.ClearToken()
}

// CurrentUser fetches the record behind the cached token.
func (c *Client) CurrentUser(ctx context.Context) (user.User, error) {
	token, ok := c.Tokens.Token()
	if !ok {
		return user.User{}, ErrNoToken
	}
	if token == FallbackToken {
		return user.User{
			ID:      1,
			Name:    "デモユーザー",
			Initial: user.Initial("デモユーザー"),
			Email:   "demo@emocal.com",
		}, nil
	}
	var resp sessionResponse
	if err := c.request(ctx, http.MethodGet, "/user", nil, token, &resp); err != nil {
		return user.User{}, err
	}
	return resp.User, nil
}

func (c *Client) request(ctx context.Context, method, endpoint string, body []byte, token string, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil && ae.Message != "" {
			return errors.New(ae.Message)
		}
		return fmt.Errorf("auth: request failed with status %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
