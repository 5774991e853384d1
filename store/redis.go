package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis persists the credential in Redis under two keys derived from a
// prefix: "<prefix>:token" and "<prefix>:user". It lets several console
// instances share one signed-in session.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis-backed store. An empty prefix defaults to
// "tbadmin:session".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = "tbadmin:session"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) tokenKey() string { return r.prefix + ":token" }
func (r *Redis) userKey() string  { return r.prefix + ":user" }

// Load implements [Store]. A missing token key loads as (nil, nil); a
// corrupt user document degrades to a credential without a profile.
func (r *Redis) Load(ctx context.Context) (*Credential, error) {
	token, err := r.client.Get(ctx, r.tokenKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: redis get token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	cred := &Credential{AccessToken: token}

	raw, err := r.client.Get(ctx, r.userKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cred, nil
		}
		return nil, fmt.Errorf("store: redis get user: %w", err)
	}

	var user CachedUser
	if err := json.Unmarshal([]byte(raw), &user); err == nil {
		cred.User = &user
	}
	return cred, nil
}

// Save implements [Store].
func (r *Redis) Save(ctx context.Context, cred *Credential) error {
	if cred == nil {
		return errors.New("store: nil credential")
	}
	if err := r.client.Set(ctx, r.tokenKey(), cred.AccessToken, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set token: %w", err)
	}
	if cred.User == nil {
		if err := r.client.Del(ctx, r.userKey()).Err(); err != nil {
			return fmt.Errorf("store: redis del user: %w", err)
		}
		return nil
	}
	data, err := json.Marshal(cred.User)
	if err != nil {
		return fmt.Errorf("store: encode user: %w", err)
	}
	if err := r.client.Set(ctx, r.userKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set user: %w", err)
	}
	return nil
}

// Clear implements [Store].
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey(), r.userKey()).Err(); err != nil {
		return fmt.Errorf("store: redis del: %w", err)
	}
	return nil
}
