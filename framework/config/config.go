package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Container ContainerConfig
	Inspect   InspectConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Name string
	Env  string // local | production | testing
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // json | console
}

type ContainerConfig struct {
	Manifest string // path to a YAML binding manifest, empty to skip
	Shared   bool   // publish the application container as the shared handle
}

type InspectConfig struct {
	Addr string // empty disables the inspection server
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name: env("APP_NAME", "jerkface"),
			Env:  env("APP_ENV", "local"),
		},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "console"),
		},
		Container: ContainerConfig{
			Manifest: env("CONTAINER_MANIFEST", ""),
			Shared:   envBool("CONTAINER_SHARED", false),
		},
		Inspect: InspectConfig{
			Addr: env("INSPECT_ADDR", ""),
		},
		Metrics: MetricsConfig{
			Enabled: envBool("METRICS_ENABLED", true),
		},
	}
}

func (c *Config) IsLocal() bool      { return c.App.Env == "local" }
func (c *Config) IsProduction() bool { return c.App.Env == "production" }
func (c *Config) IsTesting() bool    { return c.App.Env == "testing" }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// Values reads env files without touching the process environment and
// returns every KEY=value whose key starts with prefix. Keys are returned
// lower-cased with the prefix removed, so APP_DB_HOST with prefix "APP_"
// becomes "db_host". Later files override earlier ones.
func Values(prefix string, files ...string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	out := make(map[string]string)
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if err != nil {
			return nil, err
		}
		for k, v := range vars {
			rest, ok := strings.CutPrefix(k, prefix)
			if !ok || rest == "" {
				continue
			}
			out[strings.ToLower(rest)] = v
		}
	}
	return out, nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
