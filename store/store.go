package store

import "context"

// CachedUser is the durable projection of the signed-in user's profile. It
// is a display hint only; the backend remains authoritative for all fields.
type CachedUser struct {
	ID       string   `json:"id,omitempty"`
	Email    string   `json:"email,omitempty"`
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// Credential pairs an access token with an optional cached profile. It is
// written only when the operator opts into "remember me" persistence.
type Credential struct {
	AccessToken string      `json:"access_token"`
	User        *CachedUser `json:"user,omitempty"`
}

// Store persists at most one credential.
//
// Load returns (nil, nil) when nothing is stored. Save overwrites any
// previous credential. Clear removes the credential and is safe to call when
// nothing is stored.
type Store interface {
	Load(ctx context.Context) (*Credential, error)
	Save(ctx context.Context, cred *Credential) error
	Clear(ctx context.Context) error
}

func cloneCredential(cred *Credential) *Credential {
	if cred == nil {
		return nil
	}
	out := &Credential{AccessToken: cred.AccessToken}
	if cred.User != nil {
		user := *cred.User
		if cred.User.Roles != nil {
			user.Roles = append([]string(nil), cred.User.Roles...)
		}
		out.User = &user
	}
	return out
}
