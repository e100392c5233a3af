package container

import (
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Resolve returns the instance bound to name, constructing it and its
// dependency graph as needed.
//
// Value bindings and already-built singletons return immediately. Otherwise
// the binding's own dependencies and then its inherited extension
// dependencies are resolved, the constructor runs with the params followed
// by the Deps map (only when non-empty), and the result is cached unless the
// lifetime is Transient.
//
// A missing binding anywhere in the graph fails with an Unknown-binding
// error. Dependencies constructed before the failure stay cached.
func (c *Container) Resolve(name string) (any, error) {
	if name == "" {
		return nil, errInvalidArgument("", "the name param must be a non-empty string", nil)
	}

	start := time.Now()

	instance, err := c.resolveLocked(name)

	if err != nil {
		c.cfg.logger.Debug("resolution failed",
			zap.String("container", c.id),
			zap.String("binding", name),
			zap.Error(err),
		)
	}

	for _, hook := range c.cfg.onResolve {
		hook(name, time.Since(start), err)
	}

	return instance, err
}

func (c *Container) resolveLocked(name string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve(name, nil)
}

// resolve must be called with c.mu held. path lists the bindings whose
// construction led here.
func (c *Container) resolve(name string, path []string) (any, error) {
	b, ok := c.bindings[name]
	if !ok {
		return nil, errUnknownBinding(name, path)
	}

	if b.cached {
		return b.instance, nil
	}

	path = append(path, name)

	wires := c.wiring(b)
	deps := make(Deps, len(wires))
	for _, w := range wires {
		v, err := c.resolve(w.Name, path)
		if err != nil {
			return nil, err
		}
		deps[w.Key] = v
	}

	args := make([]any, 0, len(b.params)+1)
	args = append(args, b.params...)
	if len(deps) > 0 {
		args = append(args, deps)
	}

	instance, err := b.target.New(args...)
	if err != nil {
		return nil, errConstructionFailed(name, err)
	}

	if b.lifetime == Transient {
		return instance, nil
	}

	b.instance = instance
	b.cached = true

	return instance, nil
}

// Get resolves name and asserts the result to T.
//
//	repo, err := container.Get[*UserRepository](c, "users")
func Get[T any](c *Container, name string) (T, error) {
	var zero T

	instance, err := c.Resolve(name)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, errTypeMismatch(name, reflect.TypeOf((*T)(nil)).Elem().String(), instance)
	}
	return typed, nil
}

// MustGet is like Get but panics on error.
func MustGet[T any](c *Container, name string) T {
	typed, err := Get[T](c, name)
	if err != nil {
		panic(err)
	}
	return typed
}
