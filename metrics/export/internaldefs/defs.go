package internaldefs

import (
	adminkit "github.com/tokenbrush/adminkit"
)

// CounterDef defines a public type used by adminkit APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   adminkit.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by adminkit APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   adminkit.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the admin console controller.
var CounterDefs = []CounterDef{
	{ID: adminkit.MetricLoginSuccess, Name: "tbadmin_login_success_total", Help: "Successful console logins."},
	{ID: adminkit.MetricLoginFailure, Name: "tbadmin_login_failure_total", Help: "Failed console logins."},
	{ID: adminkit.MetricLoginRejectedRole, Name: "tbadmin_login_rejected_role_total", Help: "Logins rejected for missing a required role."},
	{ID: adminkit.MetricLogout, Name: "tbadmin_logout_total", Help: "Explicit sign-outs."},
	{ID: adminkit.MetricSessionUnauthorized, Name: "tbadmin_session_unauthorized_total", Help: "Forced logouts caused by 401 responses."},
	{ID: adminkit.MetricSessionHydrated, Name: "tbadmin_session_hydrated_total", Help: "Sessions restored from the credential store."},
	{ID: adminkit.MetricHydrateEmpty, Name: "tbadmin_hydrate_empty_total", Help: "Hydrations that found no usable credential."},
	{ID: adminkit.MetricRegisterSuccess, Name: "tbadmin_register_success_total", Help: "Successful account registrations."},
	{ID: adminkit.MetricRegisterFailure, Name: "tbadmin_register_failure_total", Help: "Failed account registrations."},
	{ID: adminkit.MetricPasswordResetRequest, Name: "tbadmin_password_reset_request_total", Help: "Password reset requests."},
	{ID: adminkit.MetricPasswordChangeSuccess, Name: "tbadmin_password_change_success_total", Help: "Successful password changes."},
	{ID: adminkit.MetricPasswordChangeFailure, Name: "tbadmin_password_change_failure_total", Help: "Failed password changes."},
}

// HistogramDefs is an exported constant or variable used by the admin console controller.
var HistogramDefs = []HistogramDef{
	{ID: adminkit.MetricLoginLatency, Name: "tbadmin_login_latency_seconds", Help: "Login round-trip latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the admin console controller.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the admin console controller.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed
// 8-bucket layout.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// Prometheus histograms use.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
