package adminkit

import (
	"context"
	"io"

	internalaudit "github.com/tokenbrush/adminkit/internal/audit"
	internalmetrics "github.com/tokenbrush/adminkit/internal/metrics"
)

// Status represents the lifecycle state of the console session.
type Status uint8

const (
	// StatusIdle is an exported constant or variable used by the admin console controller.
	StatusIdle Status = iota
	// StatusAuthenticating is an exported constant or variable used by the admin console controller.
	StatusAuthenticating
	// StatusAuthenticated is an exported constant or variable used by the admin console controller.
	StatusAuthenticated
	// StatusError is an exported constant or variable used by the admin console controller.
	StatusError
)

// String describes the string operation and its observable behavior.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// User is the signed-in operator as seen by the console. Roles is never nil
// on a User produced by the controller.
type User struct {
	ID       string
	Email    string
	Username string
	Roles    []string
}

// HasRole reports whether the user holds role. A nil user holds no roles.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// Session is a point-in-time copy of the controller's authentication state.
//
// The pair (AccessToken, User) is all-or-nothing in StatusAuthenticated:
// both are set, or the status is something else.
type Session struct {
	Status      Status
	AccessToken string
	User        *User
	Err         error
}

// Authenticated reports whether the session carries a verified sign-in.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated
}

// Navigator receives route changes from the controller: the post-login
// landing redirect and the forced return to the login route. Implementations
// must not block.
type Navigator interface {
	Navigate(route string)
}

// NopNavigator ignores all route changes.
type NopNavigator struct{}

// Navigate describes the navigate operation and its observable behavior.
func (NopNavigator) Navigate(string) {}

const (
	// RouteLogin is an exported constant or variable used by the admin console controller.
	RouteLogin = "/login"
	// RouteWelcome is an exported constant or variable used by the admin console controller.
	RouteWelcome = "/welcome"
	// RouteForbidden is an exported constant or variable used by the admin console controller.
	RouteForbidden = "/forbidden"
)

// LoginResult is the normalized outcome of a backend login call: the token
// the backend chose to return plus, when the response carried one, the user
// profile.
type LoginResult struct {
	AccessToken string
	User        *User
}

// RegisterRequest is the input for [Controller.Register].
type RegisterRequest struct {
	Email    string
	Username string
	Password string
}

// ChangePasswordRequest is the input for [Controller.ChangePassword].
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// AuthAPI is the backend surface the controller needs for the auth flow.
// The default implementation wraps the api package; tests substitute mocks.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

// AuditEvent is a structured audit record emitted by the controller.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the controller's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the admin console controller.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure is an exported constant or variable used by the admin console controller.
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricLoginRejectedRole is an exported constant or variable used by the admin console controller.
	MetricLoginRejectedRole = internalmetrics.MetricLoginRejectedRole
	// MetricLogout is an exported constant or variable used by the admin console controller.
	MetricLogout = internalmetrics.MetricLogout
	// MetricSessionUnauthorized is an exported constant or variable used by the admin console controller.
	MetricSessionUnauthorized = internalmetrics.MetricSessionUnauthorized
	// MetricSessionHydrated is an exported constant or variable used by the admin console controller.
	MetricSessionHydrated = internalmetrics.MetricSessionHydrated
	// MetricHydrateEmpty is an exported constant or variable used by the admin console controller.
	MetricHydrateEmpty = internalmetrics.MetricHydrateEmpty
	// MetricRegisterSuccess is an exported constant or variable used by the admin console controller.
	MetricRegisterSuccess = internalmetrics.MetricRegisterSuccess
	// MetricRegisterFailure is an exported constant or variable used by the admin console controller.
	MetricRegisterFailure = internalmetrics.MetricRegisterFailure
	// MetricPasswordResetRequest is an exported constant or variable used by the admin console controller.
	MetricPasswordResetRequest = internalmetrics.MetricPasswordResetRequest
	// MetricPasswordChangeSuccess is an exported constant or variable used by the admin console controller.
	MetricPasswordChangeSuccess = internalmetrics.MetricPasswordChangeSuccess
	// MetricPasswordChangeFailure is an exported constant or variable used by the admin console controller.
	MetricPasswordChangeFailure = internalmetrics.MetricPasswordChangeFailure
	// MetricLoginLatency is an exported constant or variable used by the admin console controller.
	MetricLoginLatency = internalmetrics.MetricLoginLatency
)

// Metrics holds atomic counters and optional latency histograms.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
