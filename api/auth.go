package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrMissingAccessToken is an exported constant or variable used by the admin console controller.
var ErrMissingAccessToken = errors.New("api: login response missing access token")

// AuthService covers the /auth endpoints.
type AuthService struct {
	client *Client
}

// AccountProfile is the user object attached to a login response, with roles
// already folded into canonical form (Roles is never nil).
type AccountProfile struct {
	ID       string
	Email    string
	Username string
	Roles    []string
}

// LoginResult is the normalized login response: whichever of the token
// dialects the backend used, plus the profile when one was returned.
type LoginResult struct {
	AccessToken string
	User        *AccountProfile
}

// RegisterRequest is the input for [AuthService.Register].
type RegisterRequest struct {
	Email    string
	Username string
	Password string
}

// ChangePasswordRequest is the input for [AuthService.ChangePassword].
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type wireProfile struct {
	ID       flexID          `json:"id"`
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Role     string          `json:"role"`
	Roles    json.RawMessage `json:"roles"`
}

func (w *wireProfile) toProfile() *AccountProfile {
	if w == nil {
		return nil
	}
	return &AccountProfile{
		ID:       string(w.ID),
		Email:    w.Email,
		Username: w.Username,
		Roles:    normalizeRoles(w.Roles, w.Role),
	}
}

// Login authenticates with email and password.
//
// The token is taken from data.accessToken, then a top-level accessToken,
// then a top-level token; the user from data.user, then a top-level user. A
// 2xx response without any token is an [ErrMissingAccessToken].
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	raw, err := s.client.doRaw(ctx, http.MethodPost, "/auth/login", nil, body)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Data struct {
			AccessToken string       `json:"accessToken"`
			User        *wireProfile `json:"user"`
		} `json:"data"`
		AccessToken string       `json:"accessToken"`
		Token       string       `json:"token"`
		User        *wireProfile `json:"user"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, ErrMissingAccessToken
	}

	token := wire.Data.AccessToken
	if token == "" {
		token = wire.AccessToken
	}
	if token == "" {
		token = wire.Token
	}
	if token == "" {
		return nil, ErrMissingAccessToken
	}

	profile := wire.Data.User
	if profile == nil {
		profile = wire.User
	}

	return &LoginResult{
		AccessToken: token,
		User:        profile.toProfile(),
	}, nil
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	body := map[string]string{
		"email":           req.Email,
		"username":        req.Username,
		"password":        req.Password,
		"confirmPassword": req.Password,
	}
	_, err := s.client.doRaw(ctx, http.MethodPost, "/auth/register", nil, body)
	return err
}

// RequestPasswordReset asks the backend to start a password reset for email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := s.client.doRaw(ctx, http.MethodPost, "/auth/reset-password", nil, body)
	return err
}

// ChangePassword replaces the signed-in account's password.
func (s *AuthService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	body := map[string]string{
		"currentPassword": req.CurrentPassword,
		"newPassword":     req.NewPassword,
		"confirmPassword": req.NewPassword,
	}
	_, err := s.client.doRaw(ctx, http.MethodPut, "/auth/change-password", nil, body)
	return err
}
