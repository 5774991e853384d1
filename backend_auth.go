package adminkit

import (
	"context"

	"github.com/tokenbrush/adminkit/api"
)

// backendAuthAPI adapts the api package's auth service to the controller's
// [AuthAPI] surface.
type backendAuthAPI struct {
	auth *api.AuthService
}

func newBackendAuthAPI(auth *api.AuthService) *backendAuthAPI {
	return &backendAuthAPI{auth: auth}
}

func (a *backendAuthAPI) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	res, err := a.auth.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	out := &LoginResult{AccessToken: res.AccessToken}
	if res.User != nil {
		out.User = &User{
			ID:       res.User.ID,
			Email:    res.User.Email,
			Username: res.User.Username,
			Roles:    append([]string(nil), res.User.Roles...),
		}
	}
	return out, nil
}

func (a *backendAuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	return a.auth.Register(ctx, api.RegisterRequest{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
}

func (a *backendAuthAPI) RequestPasswordReset(ctx context.Context, email string) error {
	return a.auth.RequestPasswordReset(ctx, email)
}

func (a *backendAuthAPI) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return a.auth.ChangePassword(ctx, api.ChangePasswordRequest{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
}
