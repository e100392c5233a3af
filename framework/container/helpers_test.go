package container_test

import (
	"github.com/km-arc/jerkface/framework/container"
)

// built is what every test constructor returns: the type that made it and
// the exact arguments it received.
type built struct {
	Type string
	Args []any
	Deps container.Deps
}

// recorder returns a constructor that counts its calls in *calls (if
// non-nil) and records its arguments.
func recorder(typeName string, calls *int) container.Constructor {
	return func(args ...any) (any, error) {
		if calls != nil {
			*calls++
		}
		out := &built{Type: typeName, Args: args}
		if n := len(args); n > 0 {
			if deps, ok := args[n-1].(container.Deps); ok {
				out.Deps = deps
			}
		}
		return out, nil
	}
}

// hierarchy is Foo ← Bar ← Baz ← Qux.
type hierarchy struct {
	Foo, Bar, Baz, Qux *container.Type
}

func newHierarchy() hierarchy {
	foo := container.NewType("Foo", recorder("Foo", nil))
	bar := foo.Derive("Bar", recorder("Bar", nil))
	baz := bar.Derive("Baz", recorder("Baz", nil))
	qux := baz.Derive("Qux", recorder("Qux", nil))
	return hierarchy{Foo: foo, Bar: bar, Baz: baz, Qux: qux}
}

func mustBuilt(v any) *built {
	return v.(*built)
}

func permutations(items []int) [][]int {
	if len(items) <= 1 {
		return [][]int{append([]int(nil), items...)}
	}
	var out [][]int
	for i := range items {
		rest := make([]int, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{items[i]}, p...))
		}
	}
	return out
}
