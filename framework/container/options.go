package container

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// BindKind tells recipe bindings from value bindings in hooks and
// inspection output.
type BindKind string

const (
	KindRecipe BindKind = "recipe"
	KindValue  BindKind = "value"
)

// BindHook runs after a successful Bind. For BindAll the name is the base
// type name and kind is empty.
type BindHook func(name string, kind BindKind)

// ResolveHook runs after every top-level Resolve call.
type ResolveHook func(name string, duration time.Duration, err error)

// CycleHook runs when Bind or BindAll is rejected for a circular reference.
type CycleHook func(name string, cycle []string)

type containerConfig struct {
	logger    *zap.Logger
	onBind    []BindHook
	onResolve []ResolveHook
	onCycle   []CycleHook
}

// Option configures a Container.
type Option func(*containerConfig)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *containerConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func WithBindObserver(hook BindHook) Option {
	return func(cfg *containerConfig) {
		cfg.onBind = append(cfg.onBind, hook)
	}
}

func WithResolveObserver(hook ResolveHook) Option {
	return func(cfg *containerConfig) {
		cfg.onResolve = append(cfg.onResolve, hook)
	}
}

func WithCycleObserver(hook CycleHook) Option {
	return func(cfg *containerConfig) {
		cfg.onCycle = append(cfg.onCycle, hook)
	}
}

// ── Bind options ─────────────────────────────────────────────────────────────

// bindConfig records which options were supplied, not only their values:
// supplying any of them for a value target is an error even when empty.
type bindConfig struct {
	lifetime    Lifetime
	lifetimeSet bool

	dependencies []Dependency
	depsSet      bool

	params    []any
	paramsSet bool
}

func (cfg *bindConfig) addDependency(key, name string) {
	cfg.depsSet = true
	for i, d := range cfg.dependencies {
		if d.Key == key {
			cfg.dependencies[i].Name = name
			return
		}
	}
	cfg.dependencies = append(cfg.dependencies, Dependency{Key: key, Name: name})
}

// BindOption configures a single binding.
type BindOption func(*bindConfig)

// WithLifetime sets the lifetime of a recipe binding. The default is
// Singleton.
func WithLifetime(l Lifetime) BindOption {
	return func(cfg *bindConfig) {
		cfg.lifetime = l
		cfg.lifetimeSet = true
	}
}

// WithDependencies injects each bound name under its key. Keys are added in
// sorted order; use WithDependency to control the order explicitly.
func WithDependencies(deps map[string]string) BindOption {
	return func(cfg *bindConfig) {
		cfg.depsSet = true
		for _, key := range sortedKeys(deps) {
			cfg.addDependency(key, deps[key])
		}
	}
}

// WithDependency injects the binding called name under key. A repeated key
// replaces the earlier name in place.
func WithDependency(key, name string) BindOption {
	return func(cfg *bindConfig) {
		cfg.addDependency(key, name)
	}
}

// WithParams sets the positional arguments passed before the Deps map.
func WithParams(params ...any) BindOption {
	return func(cfg *bindConfig) {
		cfg.params = append(cfg.params, params...)
		cfg.paramsSet = true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
