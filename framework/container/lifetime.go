package container

import "fmt"

// Lifetime controls how often a recipe binding is constructed.
type Lifetime int

const (
	// Singleton is the default lifetime. The first resolution is cached on the
	// binding and returned by every later call.
	Singleton Lifetime = iota

	// Transient constructs a new instance on every resolution.
	Transient
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

func (l Lifetime) valid() bool {
	return l == Singleton || l == Transient
}

// ParseLifetime maps "singleton" or "transient" to a Lifetime.
func ParseLifetime(s string) (Lifetime, error) {
	switch s {
	case "singleton":
		return Singleton, nil
	case "transient":
		return Transient, nil
	}
	return 0, errInvalidArgument("", fmt.Sprintf("lifetime must be %q or %q, got %q", "singleton", "transient", s), nil)
}
