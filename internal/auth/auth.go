package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

// Session is the opaque credential handed out by the identity provider.
// The core never inspects the token's internal structure.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Authenticated reports whether a usable credential is present
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// ErrInvalidCredentials is returned when the identity provider rejects the
// email/password pair
var ErrInvalidCredentials = errors.New("invalid email or password")

// Provider is the identity-provider collaborator. Sign-up, verification
// codes and password resets live entirely on the provider's side; the CLI
// only ever signs in and discards sessions.
type Provider interface {
	Login(ctx context.Context, email, password string) (Session, error)
}

// Client implements Provider against the LifeLog auth API
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// Login is the one remote call with an explicit bound
		http: &http.Client{Timeout: constants.LoginTimeout},
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return Session{}, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewBuffer(body))
	if err != nil {
		return Session{}, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("login request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return Session{}, ErrInvalidCredentials
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Session{}, fmt.Errorf("identity provider returned status %d", res.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return Session{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if payload.Token == "" || payload.ID == "" {
		return Session{}, errors.New("identity provider returned an incomplete session")
	}

	return Session{
		Token:  payload.Token,
		UserID: payload.ID,
		Name:   payload.Name,
		Email:  payload.Email,
	}, nil
}
