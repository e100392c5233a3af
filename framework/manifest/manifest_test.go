package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/jerkface/framework/container"
	"github.com/km-arc/jerkface/framework/manifest"
)

type repo struct {
	Table  string
	Limit  int
	Deps   container.Deps
	Serial int
}

func catalog() manifest.Catalog {
	var serial int
	service := container.NewType("Service", nil)
	logger := container.NewType("Logger", func(...any) (any, error) { return "logger", nil })
	users := service.Derive("UserRepository", func(args ...any) (any, error) {
		serial++
		return &repo{
			Table:  args[0].(string),
			Limit:  args[1].(int),
			Deps:   args[2].(container.Deps),
			Serial: serial,
		}, nil
	})
	return manifest.Catalog{}.Register(service, logger, users)
}

func TestLoadAndApply(t *testing.T) {
	m, err := manifest.Load("testdata/app.yaml")
	require.NoError(t, err)

	c := container.New()
	require.NoError(t, m.Apply(c, catalog()))

	assert.Equal(t, []string{"dsn", "logger", "region", "users"}, c.Bindings())
	assert.Equal(t, []string{"Service"}, c.Chain("users"))

	a, err := container.Get[*repo](c, "users")
	require.NoError(t, err)
	assert.Equal(t, "users", a.Table)
	assert.Equal(t, 10, a.Limit)
	assert.Equal(t, container.Deps{"db": "postgres://localhost/app", "logger": "logger"}, a.Deps)

	b, err := container.Get[*repo](c, "users")
	require.NoError(t, err)
	assert.NotEqual(t, a.Serial, b.Serial, "transient lifetime from manifest")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing name", "bindings:\n  - type: Logger\n", "The name field is required."},
		{"missing type", "bindings:\n  - name: logger\n", "The type field is required."},
		{"bad lifetime", "bindings:\n  - {name: a, type: T, lifetime: scoped}\n", "The selected lifetime is invalid."},
		{"name with space", "bindings:\n  - {name: a b, type: T}\n", "whitespace"},
		{"duplicate", "bindings:\n  - {name: a, type: T}\n  - {name: a, type: T}\n", `duplicate binding "a"`},
		{"value clash", "values: {a: 1}\nbindings:\n  - {name: a, type: T}\n", "also declared as a value"},
		{"empty base", "extensions:\n  - dependencies: {x: y}\n", "The base field is required."},
		{"no deps", "extensions:\n  - base: Service\n", "declares no dependencies"},
		{"bad value name", "values: {\"a b\": 1}\n", "whitespace"},
		{"not yaml", "bindings: [", "parse manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load("testdata/missing.yaml")
	assert.ErrorContains(t, err, "read manifest")
}

func TestApply_UnknownTypeRegistersNothing(t *testing.T) {
	m, err := manifest.Parse([]byte("values: {dsn: x}\nbindings:\n  - {name: a, type: Nope}\n"))
	require.NoError(t, err)

	c := container.New()
	err = m.Apply(c, catalog())
	assert.ErrorContains(t, err, `unknown type "Nope"`)
	assert.Zero(t, c.Size())
}

func TestApply_UnknownBase(t *testing.T) {
	m, err := manifest.Parse([]byte("extensions:\n  - {base: Nope, dependencies: {x: y}}\n"))
	require.NoError(t, err)
	assert.ErrorContains(t, m.Apply(container.New(), catalog()), `unknown type "Nope"`)
}

func TestApply_CycleIsContainerError(t *testing.T) {
	m, err := manifest.Parse([]byte(`
bindings:
  - {name: logger, type: Logger, dependencies: {users: users}}
  - {name: users, type: UserRepository, params: [u, 1], dependencies: {log: logger}}
`))
	require.NoError(t, err)

	c := container.New()
	err = m.Apply(c, catalog())
	assert.True(t, container.IsCircularReference(err))
	assert.False(t, c.Bound("users"))
}

func TestApply_ExtensionOrderDoesNotMatter(t *testing.T) {
	m, err := manifest.Load("testdata/app.yaml")
	require.NoError(t, err)

	c := container.New()
	cat := catalog()
	require.NoError(t, c.BindAll(cat["Service"], map[string]string{"logger": "logger"}))
	m.Extensions = nil
	require.NoError(t, m.Apply(c, cat))

	assert.Equal(t, []string{"Service"}, c.Chain("users"))
}
