package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Payload is the untrusted profile carried inside an access token.
//
// Roles is always non-nil. A singular "role" claim is folded into Roles when
// the "roles" claim is absent, so callers never have to special-case the
// legacy shape.
type Payload struct {
	Subject  string
	Email    string
	Username string
	Roles    []string
}

// Decode extracts the claims of raw without verifying its signature.
//
// Decode returns nil for any input that does not parse as a JWT. It never
// returns an error and never panics; a nil result means "no usable profile",
// not a fatal condition.
func Decode(raw string) *Payload {
	if raw == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil
	}

	p := &Payload{Roles: normalizedRoles(claims)}
	if sub, err := claims.GetSubject(); err == nil {
		p.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	if username, ok := claims["username"].(string); ok {
		p.Username = username
	}

	return p
}

// normalizedRoles prefers a "roles" list over the singular "role" claim.
// Non-string entries are skipped rather than failing the whole decode.
func normalizedRoles(claims jwt.MapClaims) []string {
	if list, ok := claims["roles"].([]interface{}); ok {
		roles := make([]string, 0, len(list))
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	}

	if single, ok := claims["role"].(string); ok && single != "" {
		return []string{single}
	}

	return []string{}
}
