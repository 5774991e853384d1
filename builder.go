package adminkit

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/tokenbrush/adminkit/api"
	"github.com/tokenbrush/adminkit/session"
	"github.com/tokenbrush/adminkit/store"
	"github.com/tokenbrush/adminkit/transport"
)

// Builder defines a public type used by adminkit APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient *http.Client
	credStore  store.Store
	redis      redis.UniversalClient
	navigator  Navigator
	authAPI    AuthAPI
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// The client's transport is wrapped, not replaced: its TLS settings, proxies,
// and timeouts stay in effect underneath the token-injecting layer.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithStore describes the withstore operation and its observable behavior.
//
// An explicit store overrides [Config.Storage].
func (b *Builder) WithStore(s store.Store) *Builder {
	b.credStore = s
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithNavigator describes the withnavigator operation and its observable behavior.
//
// WithNavigator does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithNavigator(nav Navigator) *Builder {
	b.navigator = nav
	return b
}

// WithAuthAPI describes the withauthapi operation and its observable behavior.
//
// An explicit AuthAPI overrides the default backend-wrapping implementation.
func (b *Builder) WithAuthAPI(a AuthAPI) *Builder {
	b.authAPI = a
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// The returned controller starts in [StatusAuthenticating]; call
// [Controller.Hydrate] to resolve the stored credential into a session.
func (b *Builder) Build() (*Controller, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- CREDENTIAL STORE --------
	credStore := b.credStore
	if credStore == nil {
		switch cfg.Storage.Mode {
		case StorageMemory:
			credStore = store.NewMemory()
		case StorageFile:
			path := cfg.Storage.FilePath
			if path == "" {
				defaultPath, err := store.DefaultPath()
				if err != nil {
					return nil, err
				}
				path = defaultPath
			}
			credStore = store.NewFile(path)
		case StorageRedis:
			if b.redis == nil {
				return nil, errors.New("redis storage mode requires redis client")
			}
			credStore = store.NewRedis(b.redis, cfg.Storage.RedisPrefix)
		}
	}

	// -------- SESSION REGISTRY + TRANSPORT --------
	registry := session.NewRegistry()

	baseClient := b.httpClient
	if baseClient == nil {
		baseClient = &http.Client{Timeout: cfg.API.Timeout}
	}
	httpClient := transport.NewClient(baseClient, registry)

	// -------- BACKEND CLIENT --------
	apiClient, err := api.NewClient(cfg.API.BaseURL, httpClient, cfg.API.AppName)
	if err != nil {
		return nil, err
	}

	authAPI := b.authAPI
	if authAPI == nil {
		authAPI = newBackendAuthAPI(apiClient.Auth)
	}

	navigator := b.navigator
	if navigator == nil {
		navigator = NopNavigator{}
	}

	controller := &Controller{
		config:     cfg,
		registry:   registry,
		store:      credStore,
		navigator:  navigator,
		authAPI:    authAPI,
		api:        apiClient,
		httpClient: httpClient,
		audit:      newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:    NewMetrics(cfg.Metrics),
		state:      Session{Status: StatusAuthenticating},
	}

	registry.OnUnauthorized(controller.handleUnauthorized)

	b.built = true

	return controller, nil
}
