package container

import "errors"

// Constructor builds an instance from the positional params of a binding,
// followed by a Deps map when the binding has any resolved dependencies.
type Constructor func(args ...any) (any, error)

// Deps is the named-dependency map handed to a constructor as its final
// argument. Keys are injection keys, values are resolved instances.
type Deps map[string]any

// Type is a constructible type with an explicit, single-inheritance ancestry.
// Identity is the pointer: two Types with the same name are unrelated.
//
//	service := container.NewType("Service", nil) // abstract base
//	repo := service.Derive("UserRepository", newUserRepository)
//	repo.DerivesFrom(service) // true
type Type struct {
	name   string
	parent *Type
	ctor   Constructor
}

// NewType defines a root type. A nil constructor makes the type abstract:
// it can carry extensions through BindAll but cannot be bound itself.
func NewType(name string, ctor Constructor) *Type {
	return &Type{name: name, ctor: ctor}
}

// Derive defines a child type of t.
func (t *Type) Derive(name string, ctor Constructor) *Type {
	return &Type{name: name, parent: t, ctor: ctor}
}

// Name returns the type name, or "<anonymous>" for unnamed types.
func (t *Type) Name() string {
	if t.name == "" {
		return "<anonymous>"
	}
	return t.name
}

func (t *Type) String() string { return t.Name() }

// Parent returns the direct ancestor, nil for root types.
func (t *Type) Parent() *Type { return t.parent }

// Ancestors returns every strict ancestor, nearest first.
func (t *Type) Ancestors() []*Type {
	var out []*Type
	for p := t.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// DerivesFrom reports whether base is a strict ancestor of t.
func (t *Type) DerivesFrom(base *Type) bool {
	if base == nil {
		return false
	}
	for p := t.parent; p != nil; p = p.parent {
		if p == base {
			return true
		}
	}
	return false
}

// Is reports whether t is base or derives from it.
func (t *Type) Is(base *Type) bool {
	return t == base || t.DerivesFrom(base)
}

// Abstract reports whether the type has no constructor.
func (t *Type) Abstract() bool { return t.ctor == nil }

// New runs the constructor.
func (t *Type) New(args ...any) (any, error) {
	if t.ctor == nil {
		return nil, errors.New("type " + t.Name() + " is abstract")
	}
	return t.ctor(args...)
}
