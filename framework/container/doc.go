// Package container provides a named-binding IoC container.
//
// # Overview
//
// A binding maps a name to either a recipe (a constructible *Type plus its
// wiring) or a fixed value. Resolve turns a name into a fully constructed
// object graph. Go has no runtime constructor discovery, so types declare
// their constructor and their ancestry explicitly.
//
// # Types
//
//	service := container.NewType("Service", nil) // abstract
//	repo := service.Derive("Repository", func(args ...any) (any, error) {
//	    deps := args[len(args)-1].(container.Deps)
//	    return &Repository{DB: deps["db"].(*sql.DB)}, nil
//	})
//
// A constructor receives the binding's params in order, then a Deps map as
// the last argument when the binding has at least one dependency.
//
// # Bindings
//
//	c := container.New()
//
//	// Value, returned verbatim
//	c.Bind("dsn", "postgres://localhost/app")
//
//	// Recipe, singleton by default
//	c.Bind("db", dbType, container.WithDependency("dsn", "dsn"))
//
//	// Recipe, new instance on every Resolve
//	c.Bind("request", requestType, container.WithLifetime(container.Transient))
//
//	// Positional params come before the Deps map
//	c.Bind("pool", poolType, container.WithParams(4, 16))
//
// # Extensions
//
// BindAll declares dependencies every binding whose type is or derives from a
// base type inherits:
//
//	c.BindAll(service, map[string]string{"logger": "logger"})
//
// A binding's own dependency wins over an inherited one with the same key,
// and a nearer ancestor wins over a farther one. The inheritance chain of a
// binding is ordered nearest first, independent of registration order.
//
// # Cycles
//
// Bind and BindAll reject any registration that would let a binding reach
// itself, directly or through inherited dependencies. The container is left
// exactly as it was. Depending on a name that is not bound yet is allowed;
// it only fails at Resolve time.
//
// # Resolving
//
//	raw, err := c.Resolve("db")
//	db, err := container.Get[*sql.DB](c, "db")
//
// # Shared container
//
//	container.SetShared(c)   // explicit init
//	container.Shared()       // nil until set
//	container.SetShared(nil) // teardown
//
// # Errors
//
// Every failure is a *Error with an ErrorCode; use errors.Is with the
// Err* sentinels or the Is* helpers.
package container
