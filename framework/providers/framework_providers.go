package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/jerkface/framework/config"
	"github.com/km-arc/jerkface/framework/container"
	"github.com/km-arc/jerkface/framework/manifest"
	"github.com/km-arc/jerkface/framework/metrics"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the application configuration.
//
// Bound names:
//   - "config"  → *config.Config (loaded from EnvFiles when Config is nil)
//   - one value per EnvPrefix entry of EnvFiles, see config.BindEnv
type ConfigServiceProvider struct {
	container.BaseProvider
	Config    *config.Config
	EnvFiles  []string
	EnvPrefix string
}

func (p *ConfigServiceProvider) Register(c *container.Container) error {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Load(p.EnvFiles...)
	}
	if err := c.Bind("config", cfg); err != nil {
		return err
	}

	if p.EnvPrefix == "" {
		return nil
	}
	_, err := config.BindEnv(c, p.EnvPrefix, p.EnvFiles...)
	return err
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds the application logger as "logger", so
// recipes can depend on it like any other binding.
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(c *container.Container) error {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return c.Bind("logger", logger)
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider binds the metrics collector as "metrics".
type MetricsServiceProvider struct {
	container.BaseProvider
	Collector *metrics.Collector
}

func (p *MetricsServiceProvider) Register(c *container.Container) error {
	if p.Collector == nil {
		return nil
	}
	return c.Bind("metrics", p.Collector)
}

// ── ManifestServiceProvider ───────────────────────────────────────────────────

// ManifestServiceProvider applies a YAML binding manifest. Type names are
// looked up in Catalog. An empty Path registers nothing.
type ManifestServiceProvider struct {
	container.BaseProvider
	Path    string
	Catalog manifest.Catalog
}

func (p *ManifestServiceProvider) Register(c *container.Container) error {
	if p.Path == "" {
		return nil
	}
	m, err := manifest.Load(p.Path)
	if err != nil {
		return err
	}
	return m.Apply(c, p.Catalog)
}
