package container

// ── Inspection ────────────────────────────────────────────────────────────────

// Wire is a dependency the resolver injects. Via is empty for the binding's
// own dependencies and names the contributing base type otherwise.
type Wire struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Via  string `json:"via,omitempty"`
}

// BindingInfo describes one binding.
type BindingInfo struct {
	Name     string   `json:"name"`
	Kind     BindKind `json:"kind"`
	Type     string   `json:"type,omitempty"`
	Lifetime string   `json:"lifetime,omitempty"`
	Params   int      `json:"params"`
	Chain    []string `json:"chain,omitempty"`
	Wiring   []Wire   `json:"wiring,omitempty"`
	Cached   bool     `json:"cached"`
}

// ExtensionInfo describes the entries registered for one base type.
type ExtensionInfo struct {
	Base         string       `json:"base"`
	Dependencies []Dependency `json:"dependencies"`
}

// Bound reports whether name is registered.
func (c *Container) Bound(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.bindings[name]
	return ok
}

// Resolved reports whether name holds a cached or fixed instance.
func (c *Container) Resolved(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bindings[name]
	return ok && b.cached
}

// Bindings returns every registered name, sorted.
func (c *Container) Bindings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.names()
}

// Size returns the number of bindings.
func (c *Container) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bindings)
}

// Chain returns the base type names name inherits extensions from, nearest
// first. It is nil for value bindings and unknown names.
func (c *Container) Chain(name string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bindings[name]
	if !ok || len(b.chain) == 0 {
		return nil
	}
	return chainNames(b.chain)
}

// Inspect describes the binding called name.
func (c *Container) Inspect(name string) (BindingInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bindings[name]
	if !ok {
		return BindingInfo{Name: name}, false
	}
	return c.describe(b), true
}

// describe must be called with c.mu held.
func (c *Container) describe(b *binding) BindingInfo {
	info := BindingInfo{
		Name:   b.name,
		Kind:   b.kind(),
		Cached: b.cached,
	}
	if b.target == nil {
		return info
	}

	info.Type = b.target.Name()
	info.Lifetime = b.lifetime.String()
	info.Params = len(b.params)
	if len(b.chain) > 0 {
		info.Chain = chainNames(b.chain)
	}

	for _, w := range c.wiring(b) {
		out := Wire{Key: w.Key, Name: w.Name}
		if w.via != nil {
			out.Via = w.via.Name()
		}
		info.Wiring = append(info.Wiring, out)
	}

	return info
}

// Extensions lists the extension store in registration order.
func (c *Container) Extensions() []ExtensionInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ExtensionInfo, 0, len(c.bases))
	for _, base := range c.bases {
		out = append(out, ExtensionInfo{
			Base:         base.Name(),
			Dependencies: append([]Dependency(nil), c.extensions[base]...),
		})
	}
	return out
}

// Forget removes the binding called name together with its cached instance.
// Bindings depending on it fail with Unknown-binding until it is bound again.
func (c *Container) Forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, name)
}

// Flush drops every binding, extension and cached instance.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.extensions = make(map[*Type][]Dependency)
	c.bases = nil
}
