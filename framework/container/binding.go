package container

// Dependency is one (injection key, bound name) pair.
type Dependency struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// binding is one named registration: a recipe (target != nil) or a value.
// instance/cached form the cache slot, written only by the resolver.
type binding struct {
	name         string
	target       *Type
	lifetime     Lifetime
	dependencies []Dependency
	params       []any
	chain        []*Type

	instance any
	cached   bool
}

func (b *binding) kind() BindKind {
	if b.target == nil {
		return KindValue
	}
	return KindRecipe
}

// wire is a dependency the resolver will inject. via is nil for the
// binding's own dependencies and the contributing base type otherwise.
type wire struct {
	Dependency
	via *Type
}

// wiring merges own dependencies with the chain's extension entries: own
// keys win, then nearer chain links win over farther ones.
func (c *Container) wiring(b *binding) []wire {
	seen := make(map[string]bool, len(b.dependencies))
	out := make([]wire, 0, len(b.dependencies))

	for _, d := range b.dependencies {
		seen[d.Key] = true
		out = append(out, wire{Dependency: d})
	}

	for _, link := range b.chain {
		for _, d := range c.extensions[link] {
			if seen[d.Key] {
				continue
			}
			seen[d.Key] = true
			out = append(out, wire{Dependency: d, via: link})
		}
	}

	return out
}
