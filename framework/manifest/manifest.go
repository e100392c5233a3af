// Package manifest declares container bindings in YAML.
//
//	values:
//	  dsn: postgres://localhost/app
//	extensions:
//	  - base: Service
//	    dependencies: {logger: logger}
//	bindings:
//	  - name: logger
//	    type: Logger
//	  - name: users
//	    type: UserRepository
//	    lifetime: transient
//	    params: [users]
//	    dependencies: {db: dsn}
//
// Type names are looked up in a Catalog supplied by the program, since Go
// cannot construct types by name.
package manifest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/km-arc/jerkface/framework/container"
	"github.com/km-arc/jerkface/framework/validation"
)

// Manifest is one parsed binding document.
type Manifest struct {
	Values     map[string]any `yaml:"values"`
	Extensions []Extension    `yaml:"extensions"`
	Bindings   []Binding      `yaml:"bindings"`
}

// Extension maps to one BindAll call.
type Extension struct {
	Base         string            `yaml:"base"`
	Dependencies map[string]string `yaml:"dependencies"`
}

// Binding maps to one recipe Bind call.
type Binding struct {
	Name         string            `yaml:"name"`
	Type         string            `yaml:"type"`
	Lifetime     string            `yaml:"lifetime"`
	Params       []any             `yaml:"params"`
	Dependencies map[string]string `yaml:"dependencies"`
}

// Catalog maps type names used in manifests to container types.
type Catalog map[string]*container.Type

// Register adds types under their own names and returns the catalog.
func (c Catalog) Register(types ...*container.Type) Catalog {
	for _, t := range types {
		c[t.Name()] = t
	}
	return c
}

var (
	bindingRules = validation.Rules{
		"name":     "required|identifier|max:255",
		"type":     "required",
		"lifetime": "nullable|in:singleton,transient",
	}
	extensionRules = validation.Rules{"base": "required"}
	valueRules     = validation.Rules{"name": "required|identifier|max:255"}
)

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a manifest from raw YAML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the shape of every entry. It does not look at the catalog.
func (m *Manifest) Validate() error {
	for _, name := range valueNames(m.Values) {
		if err := validation.Make(map[string]string{"name": name}, valueRules).Err(); err != nil {
			return fmt.Errorf("values[%q]: %w", name, err)
		}
	}

	seen := make(map[string]bool, len(m.Bindings))
	for i, b := range m.Bindings {
		v := validation.Make(map[string]string{
			"name":     b.Name,
			"type":     b.Type,
			"lifetime": b.Lifetime,
		}, bindingRules)
		if err := v.Err(); err != nil {
			return fmt.Errorf("bindings[%d]: %w", i, err)
		}
		if seen[b.Name] {
			return fmt.Errorf("bindings[%d]: duplicate binding %q", i, b.Name)
		}
		if _, ok := m.Values[b.Name]; ok {
			return fmt.Errorf("bindings[%d]: %q is also declared as a value", i, b.Name)
		}
		seen[b.Name] = true
	}

	for i, e := range m.Extensions {
		if err := validation.Make(map[string]string{"base": e.Base}, extensionRules).Err(); err != nil {
			return fmt.Errorf("extensions[%d]: %w", i, err)
		}
		if len(e.Dependencies) == 0 {
			return fmt.Errorf("extensions[%d]: base %s declares no dependencies", i, e.Base)
		}
	}

	return nil
}

// Apply registers the manifest into c: values first, then bindings, then
// extensions. Every type name is checked against the catalog before
// anything is registered. Apply stops at the first container error and
// leaves the registrations made before it in place.
func (m *Manifest) Apply(c *container.Container, catalog Catalog) error {
	for i, b := range m.Bindings {
		if catalog[b.Type] == nil {
			return fmt.Errorf("bindings[%d]: unknown type %q", i, b.Type)
		}
	}
	for i, e := range m.Extensions {
		if catalog[e.Base] == nil {
			return fmt.Errorf("extensions[%d]: unknown type %q", i, e.Base)
		}
	}

	for _, name := range valueNames(m.Values) {
		if err := c.Bind(name, m.Values[name]); err != nil {
			return err
		}
	}

	for _, b := range m.Bindings {
		opts, err := b.options()
		if err != nil {
			return err
		}
		if err := c.Bind(b.Name, catalog[b.Type], opts...); err != nil {
			return err
		}
	}

	for _, e := range m.Extensions {
		if err := c.BindAll(catalog[e.Base], e.Dependencies); err != nil {
			return err
		}
	}

	return nil
}

func (b Binding) options() ([]container.BindOption, error) {
	var opts []container.BindOption
	if b.Lifetime != "" {
		l, err := container.ParseLifetime(b.Lifetime)
		if err != nil {
			return nil, err
		}
		opts = append(opts, container.WithLifetime(l))
	}
	if len(b.Params) > 0 {
		opts = append(opts, container.WithParams(b.Params...))
	}
	if len(b.Dependencies) > 0 {
		opts = append(opts, container.WithDependencies(b.Dependencies))
	}
	return opts, nil
}

func valueNames(values map[string]any) []string {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
