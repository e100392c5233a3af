package app_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/jerkface/framework/app"
	"github.com/km-arc/jerkface/framework/config"
	"github.com/km-arc/jerkface/framework/container"
	"github.com/km-arc/jerkface/framework/manifest"
	"github.com/km-arc/jerkface/framework/metrics"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "test", Env: "testing"},
		Log:     config.LogConfig{Level: "error", Format: "console"},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func newApp(t *testing.T, cfg *config.Config, opts ...app.Option) *app.Application {
	t.Helper()
	a, err := app.New(cfg, append([]app.Option{app.WithLogger(zap.NewNop())}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

type countingProvider struct {
	container.BaseProvider
	booted int
}

func (p *countingProvider) Register(c *container.Container) error {
	return c.Bind("counter", p)
}

func (p *countingProvider) Boot(*container.Container) error {
	p.booted++
	return nil
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_BindsFrameworkServices(t *testing.T) {
	cfg := testConfig()
	a := newApp(t, cfg)

	assert.Same(t, cfg, container.MustGet[*config.Config](a.Container, "config"))
	assert.Same(t, a.Logger(), container.MustGet[*zap.Logger](a.Container, "logger"))
	assert.Same(t, a.Metrics(), container.MustGet[*metrics.Collector](a.Container, "metrics"))
	assert.Same(t, cfg, a.Config())
	assert.Len(t, a.Providers.Providers(), 4)
}

func TestNew_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	a := newApp(t, cfg)

	assert.Nil(t, a.Metrics())
	assert.False(t, a.Bound("metrics"))
}

func TestNew_BuildsLoggerFromConfig(t *testing.T) {
	a, err := app.New(testConfig())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Logger())
}

func TestNew_AppliesManifest(t *testing.T) {
	greeter := container.NewType("Greeter", func(args ...any) (any, error) {
		return args[0].(container.Deps)["greeting"].(string) + "!", nil
	})

	cfg := testConfig()
	cfg.Container.Manifest = "testdata/bindings.yaml"
	a := newApp(t, cfg, app.WithCatalog(manifest.Catalog{}.Register(greeter)))

	assert.Equal(t, "hello!", container.MustGet[string](a.Container, "greeter"))
}

func TestNew_ManifestErrorFails(t *testing.T) {
	cfg := testConfig()
	cfg.Container.Manifest = "testdata/missing.yaml"

	_, err := app.New(cfg, app.WithLogger(zap.NewNop()))
	assert.ErrorContains(t, err, "read manifest")
}

func TestNew_ExtraProvidersAndBoot(t *testing.T) {
	p := &countingProvider{}
	a := newApp(t, testConfig(), app.WithProviders(p))

	assert.True(t, a.Bound("counter"))
	require.NoError(t, a.Boot())
	require.NoError(t, a.Boot())
	assert.Equal(t, 1, p.booted)
}

// ── shared handle ────────────────────────────────────────────────────────────

func TestShared(t *testing.T) {
	container.SetShared(nil)
	t.Cleanup(func() { container.SetShared(nil) })

	a := newApp(t, testConfig())
	assert.Nil(t, container.Shared(), "not shared unless configured")

	cfg := testConfig()
	cfg.Container.Shared = true
	b := newApp(t, cfg)
	assert.Same(t, b.Container, container.Shared())

	require.NoError(t, a.Close())
	assert.Same(t, b.Container, container.Shared(), "closing another app keeps the handle")

	require.NoError(t, b.Close())
	assert.Nil(t, container.Shared())
}

// ── Run / Serve ──────────────────────────────────────────────────────────────

func TestRun_RequiresAddr(t *testing.T) {
	a := newApp(t, testConfig())
	assert.ErrorContains(t, a.Run(context.Background()), "INSPECT_ADDR")
}

func TestServe(t *testing.T) {
	a := newApp(t, testConfig())
	require.NoError(t, a.Bind("dsn", "postgres://"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/graph")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "● dsn")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_Serves(t *testing.T) {
	cfg := testConfig()
	cfg.Inspect.Addr = "127.0.0.1:0"
	a := newApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Run(ctx))
}
