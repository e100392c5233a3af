package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations.
//
// Register is called as soon as the provider is added and should only bind.
// Boot is called once every provider has been registered, so it may resolve
// anything.
//
//	type StorageProvider struct{ container.BaseProvider }
//
//	func (p *StorageProvider) Register(c *container.Container) error {
//	    return c.Bind("store", storeType, container.WithDependency("config", "config"))
//	}
type ServiceProvider interface {
	Register(c *Container) error
	Boot(c *Container) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one
// container.
type ProviderRegistry struct {
	container  *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		container:  c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls the provider's Register. Adding the same provider twice is
// a no-op. Providers added after Boot are booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}

	if err := provider.Register(r.container); err != nil {
		return fmt.Errorf("register %T: %w", provider, err)
	}

	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	if r.booted {
		if err := provider.Boot(r.container); err != nil {
			return fmt.Errorf("boot %T: %w", provider, err)
		}
	}

	return nil
}

// Boot calls Boot on every registered provider in registration order and
// stops at the first error. Later calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true

	for _, provider := range r.providers {
		if err := provider.Boot(r.container); err != nil {
			return fmt.Errorf("boot %T: %w", provider, err)
		}
	}

	return nil
}

// Booted returns true if Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
