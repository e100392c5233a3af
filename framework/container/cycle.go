package container

// fullDepSet returns the bound names a binding reaches directly: its own
// dependencies plus every extension entry along its chain. Injection keys
// never enter this set.
func (c *Container) fullDepSet(b *binding) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, d := range b.dependencies {
		add(d.Name)
	}
	for _, link := range b.chain {
		for _, d := range c.extensions[link] {
			add(d.Name)
		}
	}

	return out
}

// findCycle reports the path from name back to itself through deps, or nil.
// Unregistered names are leaves. visited holds names already shown not to
// lead back to name.
func (c *Container) findCycle(name string, deps []string) []string {
	return c.walk(name, deps, []string{name}, make(map[string]bool))
}

func (c *Container) walk(name string, deps, path []string, visited map[string]bool) []string {
	for _, d := range deps {
		if d == name {
			return append(path[:len(path):len(path)], d)
		}
	}

	for _, d := range deps {
		if visited[d] {
			continue
		}
		visited[d] = true

		next, ok := c.bindings[d]
		if !ok {
			continue
		}
		if cycle := c.walk(name, c.fullDepSet(next), append(path[:len(path):len(path)], d), visited); cycle != nil {
			return cycle
		}
	}

	return nil
}
