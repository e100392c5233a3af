package config

import (
	"sort"

	"github.com/km-arc/jerkface/framework/container"
)

// BindEnv binds every prefixed entry of the given env files into c as a
// value binding. Names are the lower-cased keys without the prefix:
//
//	# .env
//	SVC_DSN=postgres://localhost/app
//
//	config.BindEnv(c, "SVC_", ".env") // c.Resolve("dsn") → "postgres://localhost/app"
//
// It returns the bound names, sorted. Nothing is bound when a file cannot be
// read.
func BindEnv(c *container.Container, prefix string, files ...string) ([]string, error) {
	values, err := Values(prefix, files...)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.Bind(name, values[name]); err != nil {
			return nil, err
		}
	}
	return names, nil
}
