package token

import (
	"reflect"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestDecodeMalformedInputs(t *testing.T) {
	inputs := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c.d",
		"!!!.???.###",
		"eyJhbGciOiJIUzI1NiJ9.%%%%.sig",
		"eyJhbGciOiJIUzI1NiJ9..",
	}

	for _, raw := range inputs {
		if got := Decode(raw); got != nil {
			t.Errorf("Decode(%q) = %+v, want nil", raw, got)
		}
	}
}

func TestDecodeSignatureNotChecked(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "u-1"})

	// Corrupt the signature segment only; the payload must still decode.
	tampered := raw[:len(raw)-4] + "AAAA"
	got := Decode(tampered)
	if got == nil {
		t.Fatal("Decode returned nil for token with bad signature")
	}
	if got.Subject != "u-1" {
		t.Fatalf("Subject = %q, want %q", got.Subject, "u-1")
	}
}

func TestDecodeProfileFields(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"sub":      "u-42",
		"email":    "admin@x.com",
		"username": "root-admin",
		"roles":    []string{"admin", "owner"},
	})

	got := Decode(raw)
	if got == nil {
		t.Fatal("Decode returned nil")
	}
	want := &Payload{
		Subject:  "u-42",
		Email:    "admin@x.com",
		Username: "root-admin",
		Roles:    []string{"admin", "owner"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecodeRoleNormalization(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   []string
	}{
		{
			name:   "singular role becomes one-element list",
			claims: jwt.MapClaims{"sub": "u-1", "role": "admin"},
			want:   []string{"admin"},
		},
		{
			name:   "roles list wins over singular role",
			claims: jwt.MapClaims{"sub": "u-1", "role": "user", "roles": []string{"admin"}},
			want:   []string{"admin"},
		},
		{
			name:   "no role claims yields empty list",
			claims: jwt.MapClaims{"sub": "u-1"},
			want:   []string{},
		},
		{
			name:   "empty singular role yields empty list",
			claims: jwt.MapClaims{"sub": "u-1", "role": ""},
			want:   []string{},
		},
		{
			name:   "non-string entries are skipped",
			claims: jwt.MapClaims{"sub": "u-1", "roles": []interface{}{"admin", 7, nil, "user"}},
			want:   []string{"admin", "user"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(signedToken(t, tc.claims))
			if got == nil {
				t.Fatal("Decode returned nil")
			}
			if got.Roles == nil {
				t.Fatal("Roles is nil, want non-nil")
			}
			if !reflect.DeepEqual(got.Roles, tc.want) {
				t.Fatalf("Roles = %v, want %v", got.Roles, tc.want)
			}
		})
	}
}
