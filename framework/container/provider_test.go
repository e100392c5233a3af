package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/jerkface/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalled    bool
}

func (p *eagerProvider) Register(c *container.Container) error {
	p.registerCalls++
	return c.Bind("eager-svc", "eager")
}

func (p *eagerProvider) Boot(c *container.Container) error {
	p.bootCalled = true
	return nil
}

type multiProvider struct {
	container.BaseProvider
}

func (p *multiProvider) Register(c *container.Container) error {
	base := container.NewType("Service", nil)
	c.MustBind("alpha", "α").
		MustBindAll(base, map[string]string{"alpha": "alpha"}).
		MustBind("beta", base.Derive("Beta", recorder("Beta", nil)))
	return nil
}

type failingProvider struct {
	container.BaseProvider
	registerErr error
	bootErr     error
}

func (p *failingProvider) Register(*container.Container) error { return p.registerErr }
func (p *failingProvider) Boot(*container.Container) error     { return p.bootErr }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_RegisterCalledImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.False(t, p.bootCalled)
}

func TestRegistry_BootCallsProviders(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Boot())

	assert.True(t, p.bootCalled)
	assert.True(t, reg.Booted())

	v, err := c.Resolve("eager-svc")
	require.NoError(t, err)
	assert.Equal(t, "eager", v)
}

func TestRegistry_BootIsIdempotent(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	assert.False(t, reg.Booted())

	require.NoError(t, reg.Boot())
	require.NoError(t, reg.Boot())
	assert.True(t, reg.Booted())
}

func TestRegistry_DuplicateRegisterIgnored(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_MultipleProviders(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Register(&multiProvider{}))
	require.NoError(t, reg.Register(&eagerProvider{}))
	require.NoError(t, reg.Boot())

	beta, err := c.Resolve("beta")
	require.NoError(t, err)
	assert.Equal(t, container.Deps{"alpha": "α"}, mustBuilt(beta).Deps)
	assert.Len(t, reg.Providers(), 2)
}

func TestRegistry_RegisterAfterBootBootsImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Boot())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	assert.True(t, p.bootCalled)
}

func TestRegistry_Errors(t *testing.T) {
	boom := errors.New("boom")

	reg := container.NewProviderRegistry(container.New())
	err := reg.Register(&failingProvider{registerErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, reg.Providers(), "failed providers are not kept")

	reg = container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Register(&failingProvider{bootErr: boom}))
	assert.ErrorIs(t, reg.Boot(), boom)
}

func TestBaseProvider_Boot(t *testing.T) {
	var p container.BaseProvider
	assert.NoError(t, p.Boot(container.New()))
}
