package container

import "sync/atomic"

var shared atomic.Pointer[Container]

// Shared returns the process-wide container, or nil when none is set.
// Nothing is created implicitly.
func Shared() *Container {
	return shared.Load()
}

// SetShared installs c as the process-wide container and returns the
// previous one. Pass nil to clear it.
func SetShared(c *Container) *Container {
	return shared.Swap(c)
}
