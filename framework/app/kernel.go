package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/jerkface/framework/config"
	"github.com/km-arc/jerkface/framework/container"
	"github.com/km-arc/jerkface/framework/inspect"
	"github.com/km-arc/jerkface/framework/logging"
	"github.com/km-arc/jerkface/framework/manifest"
	"github.com/km-arc/jerkface/framework/metrics"
	"github.com/km-arc/jerkface/framework/providers"
	"github.com/km-arc/jerkface/framework/routing"
)

const shutdownTimeout = 5 * time.Second

// Application is the top-level application container.
// It embeds the Container and ProviderRegistry so user code can call
// app.Bind(), app.Resolve() and app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry

	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Collector
}

type options struct {
	logger    *zap.Logger
	catalog   manifest.Catalog
	envPrefix string
	providers []container.ServiceProvider
}

// Option configures New.
type Option func(*options)

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCatalog sets the types the binding manifest may refer to.
func WithCatalog(catalog manifest.Catalog) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithEnvPrefix binds every PREFIX_KEY entry of .env as a value binding.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

// WithProviders registers extra providers after the framework ones.
func WithProviders(p ...container.ServiceProvider) Option {
	return func(o *options) { o.providers = append(o.providers, p...) }
}

// New creates the application: logger, metrics, container and the
// framework providers, in that order. The container becomes the shared
// handle when cfg.Container.Shared is set.
func New(cfg *config.Config, opts ...Option) (*Application, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		if logger, err = logging.New(cfg); err != nil {
			return nil, err
		}
	}

	copts := []container.Option{container.WithLogger(logger)}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
		copts = append(copts, collector.Options()...)
	}

	c := container.New(copts...)
	app := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
		config:    cfg,
		logger:    logger,
		metrics:   collector,
	}

	core := []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg, EnvPrefix: o.envPrefix},
		&providers.LoggingServiceProvider{Logger: logger},
		&providers.MetricsServiceProvider{Collector: collector},
		&providers.ManifestServiceProvider{Path: cfg.Container.Manifest, Catalog: o.catalog},
	}
	for _, p := range append(core, o.providers...) {
		if err := app.Register(p); err != nil {
			return nil, err
		}
	}

	if cfg.Container.Shared {
		container.SetShared(c)
	}

	logger.Info("application created",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("container", c.ID()),
		zap.Int("bindings", c.Size()),
	)

	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

func (a *Application) Config() *config.Config      { return a.config }
func (a *Application) Logger() *zap.Logger         { return a.logger }
func (a *Application) Metrics() *metrics.Collector { return a.metrics }

// Router returns the inspection API for this application's container.
func (a *Application) Router() *routing.Router {
	opts := []inspect.Option{inspect.WithLogger(a.logger)}
	if a.metrics != nil {
		opts = append(opts, inspect.WithMetrics(a.metrics))
	}
	return inspect.New(a.Container, opts...)
}

// Run boots the application (if needed) and serves the inspection API on
// cfg.Inspect.Addr until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Boot(); err != nil {
		return err
	}
	if a.config.Inspect.Addr == "" {
		return errors.New("app: INSPECT_ADDR is not set")
	}

	ln, err := net.Listen("tcp", a.config.Inspect.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	a.logger.Info("inspection server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the shared handle if it points at this application's
// container and flushes the logger.
func (a *Application) Close() error {
	if container.Shared() == a.Container {
		container.SetShared(nil)
	}
	_ = a.logger.Sync()
	return nil
}
