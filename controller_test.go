package adminkit

import (
	"context"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tokenbrush/adminkit/store"
)

// mockAuthAPI is a scriptable AuthAPI for controller tests.
type mockAuthAPI struct {
	loginResult *LoginResult
	loginErr    error
	registerErr error
	resetErr    error
	changeErr   error

	loginCalls int
}

func (m *mockAuthAPI) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	m.loginCalls++
	return m.loginResult, m.loginErr
}

func (m *mockAuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	return m.registerErr
}

func (m *mockAuthAPI) RequestPasswordReset(ctx context.Context, email string) error {
	return m.resetErr
}

func (m *mockAuthAPI) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return m.changeErr
}

// recordNavigator captures every route pushed by the controller.
type recordNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordNavigator) Navigate(route string) {
	n.mu.Lock()
	n.routes = append(n.routes, route)
	n.mu.Unlock()
}

func (n *recordNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

// signToken builds a structurally valid JWT carrying the given claims. The
// signature is irrelevant; the decoder never verifies it.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}
	return raw
}

func newTestController(t *testing.T, auth *mockAuthAPI, credStore store.Store, nav Navigator) *Controller {
	t.Helper()

	builder := New().
		WithAuthAPI(auth).
		WithMetricsEnabled(true).
		WithLatencyHistograms(true)
	if credStore != nil {
		builder = builder.WithStore(credStore)
	}
	if nav != nil {
		builder = builder.WithNavigator(nav)
	}

	ctrl, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { ctrl.Close() })
	return ctrl
}

func TestControllerStartsAuthenticating(t *testing.T) {
	ctrl := newTestController(t, &mockAuthAPI{}, nil, nil)

	if got := ctrl.Status(); got != StatusAuthenticating {
		t.Fatalf("initial status = %v, want StatusAuthenticating", got)
	}
}

func TestHydrateEmptyStore(t *testing.T) {
	ctrl := newTestController(t, &mockAuthAPI{}, store.NewMemory(), nil)

	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if got := ctrl.Status(); got != StatusIdle {
		t.Fatalf("status = %v, want StatusIdle", got)
	}
	if got := ctrl.Metrics().Value(MetricHydrateEmpty); got != 1 {
		t.Fatalf("hydrate-empty counter = %d, want 1", got)
	}
}

func TestHydrateCachedProfileWinsOverToken(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub": "token-id", "email": "token@b.c", "role": "admin",
	})

	mem := store.NewMemory()
	if err := mem.Save(context.Background(), &store.Credential{
		AccessToken: raw,
		User: &store.CachedUser{
			ID: "cached-id", Email: "cached@b.c", Username: "cached", Roles: []string{"admin"},
		},
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ctrl := newTestController(t, &mockAuthAPI{}, mem, nil)
	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	sess := ctrl.Session()
	if sess.Status != StatusAuthenticated {
		t.Fatalf("status = %v, want StatusAuthenticated", sess.Status)
	}
	if sess.User.ID != "cached-id" {
		t.Fatalf("user ID = %q, want the cached profile, not token claims", sess.User.ID)
	}
	if ctrl.Registry().AccessToken() != raw {
		t.Fatal("registry not holding the stored token")
	}
	if got := ctrl.Metrics().Value(MetricSessionHydrated); got != 1 {
		t.Fatalf("hydrated counter = %d, want 1", got)
	}
}

func TestHydrateFallsBackToTokenClaims(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub": "u9", "email": "ops@b.c", "username": "ops", "roles": []any{"admin"},
	})

	mem := store.NewMemory()
	if err := mem.Save(context.Background(), &store.Credential{AccessToken: raw}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ctrl := newTestController(t, &mockAuthAPI{}, mem, nil)
	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	sess := ctrl.Session()
	if sess.Status != StatusAuthenticated {
		t.Fatalf("status = %v, want StatusAuthenticated", sess.Status)
	}
	if sess.User.ID != "u9" || sess.User.Username != "ops" {
		t.Fatalf("user = %+v, want identity decoded from the token", sess.User)
	}
}

func TestHydrateUndecodableTokenStaysIdleWithToken(t *testing.T) {
	mem := store.NewMemory()
	if err := mem.Save(context.Background(), &store.Credential{AccessToken: "not-a-jwt"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ctrl := newTestController(t, &mockAuthAPI{}, mem, nil)
	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	sess := ctrl.Session()
	if sess.Status != StatusIdle {
		t.Fatalf("status = %v, want StatusIdle", sess.Status)
	}
	// The raw token still rides along; a 401 will clear it later.
	if sess.AccessToken != "not-a-jwt" {
		t.Fatalf("session token = %q, want the raw stored token", sess.AccessToken)
	}
	if ctrl.Registry().AccessToken() != "not-a-jwt" {
		t.Fatal("registry dropped the raw token")
	}
}

func TestSessionReturnsIsolatedCopy(t *testing.T) {
	mem := store.NewMemory()
	raw := signToken(t, jwt.MapClaims{"sub": "u1", "role": "admin"})
	if err := mem.Save(context.Background(), &store.Credential{AccessToken: raw}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ctrl := newTestController(t, &mockAuthAPI{}, mem, nil)
	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	sess := ctrl.Session()
	sess.User.ID = "tampered"
	sess.User.Roles[0] = "tampered"

	fresh := ctrl.Session()
	if fresh.User.ID != "u1" || fresh.User.Roles[0] != "admin" {
		t.Fatalf("controller state mutated through a session copy: %+v", fresh.User)
	}
}

func TestChangePasswordRequiresSession(t *testing.T) {
	ctrl := newTestController(t, &mockAuthAPI{}, store.NewMemory(), nil)
	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	err := ctrl.ChangePassword(context.Background(), ChangePasswordRequest{
		CurrentPassword: "old", NewPassword: "new",
	})
	if err != ErrNotAuthenticated {
		t.Fatalf("ChangePassword err = %v, want ErrNotAuthenticated", err)
	}
}

func TestRegisterDoesNotTouchSession(t *testing.T) {
	ctrl := newTestController(t, &mockAuthAPI{}, store.NewMemory(), nil)
	if err := ctrl.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	err := ctrl.Register(context.Background(), RegisterRequest{
		Email: "new@b.c", Username: "new", Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := ctrl.Status(); got != StatusIdle {
		t.Fatalf("status after register = %v, want unchanged StatusIdle", got)
	}
	if got := ctrl.Metrics().Value(MetricRegisterSuccess); got != 1 {
		t.Fatalf("register counter = %d, want 1", got)
	}
}
