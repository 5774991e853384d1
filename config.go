package adminkit

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config defines a public type used by adminkit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Access  AccessConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by adminkit APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL string
	AppName string
	Timeout time.Duration
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageMode defines a public type used by adminkit APIs.
//
// StorageMode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageMode int

const (
	// StorageMemory is an exported constant or variable used by the admin console controller.
	StorageMemory StorageMode = iota
	// StorageFile is an exported constant or variable used by the admin console controller.
	StorageFile
	// StorageRedis is an exported constant or variable used by the admin console controller.
	StorageRedis
)

// StorageConfig defines a public type used by adminkit APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	Mode        StorageMode
	FilePath    string // empty means the platform default location
	RedisPrefix string
}

/*
====================================
ACCESS CONFIG
====================================
*/

// AccessConfig defines a public type used by adminkit APIs.
//
// AccessConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AccessConfig struct {
	// RequiredRoles lists roles of which the signed-in user must hold at
	// least one. A login by a user holding none of them is rejected locally
	// even when the backend accepted the credentials.
	RequiredRoles []string
}

// AuditConfig defines a public type used by adminkit APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
}

// MetricsConfig defines a public type used by adminkit APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000/api",
			AppName: "tokenbrush-admin",
			Timeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Mode:        StorageMemory,
			RedisPrefix: "tbadmin:session",
		},
		Access: AccessConfig{
			RequiredRoles: []string{"admin"},
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// FromEnv builds a Config from defaults overlaid with TB_ADMIN_* environment
// variables: TB_ADMIN_API_BASE_URL, TB_ADMIN_APP_NAME, TB_ADMIN_HTTP_TIMEOUT,
// TB_ADMIN_TOKEN_STORAGE (memory|file|redis), TB_ADMIN_CREDENTIALS_FILE, and
// TB_ADMIN_REDIS_PREFIX.
//
// FromEnv may return an error when input validation, dependency calls, or security checks fail.
func FromEnv() (Config, error) {
	cfg := defaultConfig()

	if v := os.Getenv("TB_ADMIN_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TB_ADMIN_APP_NAME"); v != "" {
		cfg.API.AppName = v
	}
	if v := os.Getenv("TB_ADMIN_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.New("TB_ADMIN_HTTP_TIMEOUT must be a duration")
		}
		cfg.API.Timeout = d
	}
	if v := os.Getenv("TB_ADMIN_TOKEN_STORAGE"); v != "" {
		switch strings.ToLower(v) {
		case "memory":
			cfg.Storage.Mode = StorageMemory
		case "file":
			cfg.Storage.Mode = StorageFile
		case "redis":
			cfg.Storage.Mode = StorageRedis
		default:
			return Config{}, errors.New("TB_ADMIN_TOKEN_STORAGE must be memory, file, or redis")
		}
	}
	if v := os.Getenv("TB_ADMIN_CREDENTIALS_FILE"); v != "" {
		cfg.Storage.FilePath = v
	}
	if v := os.Getenv("TB_ADMIN_REDIS_PREFIX"); v != "" {
		cfg.Storage.RedisPrefix = v
	}

	return cfg, nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Access.RequiredRoles != nil {
		out.Access.RequiredRoles = append([]string(nil), cfg.Access.RequiredRoles...)
	}
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// API
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("API BaseURL must be an absolute URL")
	}
	if c.API.Timeout < 0 {
		return errors.New("API Timeout must be >= 0")
	}

	// Storage
	switch c.Storage.Mode {
	case StorageMemory, StorageFile, StorageRedis:
		// valid
	default:
		return errors.New("invalid Storage Mode")
	}
	if c.Storage.Mode == StorageRedis && c.Storage.RedisPrefix == "" {
		return errors.New("Storage RedisPrefix is required in redis mode")
	}

	// Access
	if len(c.Access.RequiredRoles) == 0 {
		return errors.New("Access RequiredRoles must not be empty")
	}
	for _, role := range c.Access.RequiredRoles {
		if strings.TrimSpace(role) == "" {
			return errors.New("Access RequiredRoles must not contain empty roles")
		}
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
