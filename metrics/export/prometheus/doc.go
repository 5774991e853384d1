// Package prometheus provides Prometheus collectors for admin console metrics.
//
// [NewPrometheusExporter] accepts an [adminkit.Controller] and exposes an [http.Handler]
// that renders all console counters and histograms in Prometheus text exposition format.
// Counter names are prefixed tbadmin_*_total; the single histogram is
// tbadmin_login_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate controller state.
package prometheus
