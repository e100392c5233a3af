package container

import "slices"

// insertLink places base into a nearest-first chain. base goes right before
// the first link it derives from; otherwise it is the farthest ancestor seen
// so far and goes last. It reports whether the chain changed.
func insertLink(chain []*Type, base *Type) ([]*Type, bool) {
	for i, link := range chain {
		if link == base {
			return chain, false
		}
		if base.DerivesFrom(link) {
			return slices.Insert(chain, i, base), true
		}
	}
	return append(chain, base), true
}

// buildChain computes the chain of a new binding from every base type in
// the extension store that target is or derives from.
func buildChain(target *Type, bases []*Type) []*Type {
	var chain []*Type
	for _, base := range bases {
		if !target.Is(base) {
			continue
		}
		chain, _ = insertLink(chain, base)
	}
	return chain
}

func chainNames(chain []*Type) []string {
	names := make([]string, len(chain))
	for i, t := range chain {
		names[i] = t.Name()
	}
	return names
}
