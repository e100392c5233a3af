package container

import (
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps names to recipes or values and resolves them into object
// graphs on demand.
//
// It owns two stores:
//   - bindings:   name → binding
//   - extensions: base type → dependencies every derived binding inherits
//
// One mutex guards both stores and every cached instance. Constructors run
// while it is held and must not call back into the same container.
type Container struct {
	mu sync.Mutex

	id  string
	cfg *containerConfig

	// name → binding
	bindings map[string]*binding

	// base type → extension entries, and the bases in registration order
	extensions map[*Type][]Dependency
	bases      []*Type
}

// New creates an empty container.
func New(opts ...Option) *Container {
	cfg := &containerConfig{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return &Container{
		id:         uuid.NewString(),
		cfg:        cfg,
		bindings:   make(map[string]*binding),
		extensions: make(map[*Type][]Dependency),
	}
}

// ID returns the random identifier attached to this container's log lines.
func (c *Container) ID() string { return c.id }

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers target under name, replacing any previous binding and its
// cached instance.
//
// A *Type or Constructor target is a recipe; anything else is a value
// returned verbatim by Resolve. Lifetime, dependencies and params are only
// accepted for recipes.
//
//	c.Bind("config", cfg)
//	c.Bind("users", userRepoType,
//	    container.WithDependency("db", "database"),
//	    container.WithLifetime(container.Transient))
//
// Bind fails with a Circular-reference error, leaving the container as it
// was, when the new binding could reach itself through its own or inherited
// dependencies.
func (c *Container) Bind(name string, target any, opts ...BindOption) error {
	cfg := &bindConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	b, err := newBinding(name, target, cfg)
	if err != nil {
		c.cfg.logger.Debug("binding rejected",
			zap.String("container", c.id),
			zap.String("binding", name),
			zap.Error(err),
		)
		return err
	}

	if cycle := c.store(b); cycle != nil {
		return c.rejectCycle(name, cycle)
	}

	c.cfg.logger.Debug("binding registered",
		zap.String("container", c.id),
		zap.String("binding", name),
		zap.String("kind", string(b.kind())),
		zap.Strings("chain", chainNames(b.chain)),
	)

	for _, hook := range c.cfg.onBind {
		hook(name, b.kind())
	}

	return nil
}

// store computes the chain of b, checks it for cycles and saves it. It
// returns the offending cycle without storing anything.
func (c *Container) store(b *binding) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b.target != nil {
		b.chain = buildChain(b.target, c.bases)
		if cycle := c.findCycle(b.name, c.fullDepSet(b)); cycle != nil {
			return cycle
		}
	}

	c.bindings[b.name] = b
	return nil
}

// MustBind is like Bind but panics on error and returns the container, so
// registrations can be chained.
//
//	c.MustBind("bar", "B").
//	    MustBind("foo", fooType, container.WithDependency("bar", "bar"))
func (c *Container) MustBind(name string, target any, opts ...BindOption) *Container {
	if err := c.Bind(name, target, opts...); err != nil {
		panic(err)
	}
	return c
}

// BindAll declares that every recipe binding whose target is or derives from
// base also receives deps, unless its own dependencies use the same key.
// Nearer ancestors win over farther ones. Calling it again for the same base
// replaces its entries.
//
// Existing bindings are updated in place. If that would introduce a cycle
// every change is reverted and a Circular-reference error is returned.
func (c *Container) BindAll(base *Type, deps map[string]string) error {
	if err := assertBase(base); err != nil {
		return err
	}
	entries, err := extensionEntries(base, deps)
	if err != nil {
		return err
	}

	name, cycle, impacted := c.extend(base, entries)
	if cycle != nil {
		return c.rejectCycle(name, cycle)
	}

	c.cfg.logger.Debug("extension registered",
		zap.String("container", c.id),
		zap.String("base", base.Name()),
		zap.Int("dependencies", len(entries)),
		zap.Int("impacted", impacted),
	)

	for _, hook := range c.cfg.onBind {
		hook(base.Name(), "")
	}

	return nil
}

type chainSnapshot struct {
	b     *binding
	chain []*Type
}

// extend applies the extension and probes every impacted binding for cycles.
// On a cycle it restores both stores and returns the binding name and path.
func (c *Container) extend(base *Type, entries []Dependency) (string, []string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, hadPrev := c.extensions[base]

	var impacted []chainSnapshot
	for _, name := range c.names() {
		b := c.bindings[name]
		if b.target == nil || !b.target.Is(base) {
			continue
		}
		impacted = append(impacted, chainSnapshot{b: b, chain: slices.Clone(b.chain)})
		b.chain, _ = insertLink(b.chain, base)
	}

	c.extensions[base] = entries
	if !hadPrev {
		c.bases = append(c.bases, base)
	}

	for _, s := range impacted {
		cycle := c.findCycle(s.b.name, c.fullDepSet(s.b))
		if cycle == nil {
			continue
		}

		for _, r := range impacted {
			r.b.chain = r.chain
		}
		if hadPrev {
			c.extensions[base] = prev
		} else {
			delete(c.extensions, base)
			c.bases = c.bases[:len(c.bases)-1]
		}
		return s.b.name, cycle, 0
	}

	return "", nil, len(impacted)
}

// MustBindAll is like BindAll but panics on error and returns the container.
func (c *Container) MustBindAll(base *Type, deps map[string]string) *Container {
	if err := c.BindAll(base, deps); err != nil {
		panic(err)
	}
	return c
}

func (c *Container) rejectCycle(name string, cycle []string) error {
	c.cfg.logger.Warn("circular dependency rejected",
		zap.String("container", c.id),
		zap.String("binding", name),
		zap.Strings("cycle", cycle),
	)

	for _, hook := range c.cfg.onCycle {
		hook(name, cycle)
	}

	return errCircularReference(name, cycle)
}

// names returns binding names sorted. Caller holds c.mu.
func (c *Container) names() []string {
	out := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
