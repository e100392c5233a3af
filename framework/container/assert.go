package container

import (
	"reflect"

	"github.com/km-arc/jerkface/framework/validation"
)

var nameRules = validation.Rules{"name": "required|identifier|max:255"}

func assertName(name string) error {
	v := validation.Make(map[string]string{"name": name}, nameRules)
	if err := v.Err(); err != nil {
		return errInvalidArgument(name, "the name param must be a non-empty identifier", err)
	}
	return nil
}

// recipeOf returns the type to construct when target is a recipe, nil when
// target is a plain value.
func recipeOf(target any) *Type {
	switch t := target.(type) {
	case *Type:
		return t
	case Constructor:
		return NewType("", t)
	case func(...any) (any, error):
		return NewType("", t)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func assertTarget(name string, target any) error {
	if isNil(target) {
		return errInvalidArgument(name, "the target param cannot be nil", nil)
	}
	if t, ok := target.(*Type); ok && t.Abstract() {
		return errInvalidArgument(name, "the target type "+t.Name()+" is abstract", nil)
	}
	return nil
}

func assertDependencyPair(name string, d Dependency) error {
	if d.Key == "" {
		return errInvalidArgument(name, "dependency keys cannot be empty", nil)
	}
	if d.Name == "" {
		return errInvalidArgument(name, "dependency "+d.Key+" must name a binding", nil)
	}
	return nil
}

// assertOptions checks shape first, then whether the option is allowed for
// the kind of target.
func assertOptions(name string, isRecipe bool, cfg *bindConfig) error {
	if cfg.paramsSet && !isRecipe {
		return errInvalidBinding(name, "params can only be used with constructors")
	}

	if cfg.lifetimeSet {
		if !cfg.lifetime.valid() {
			return errInvalidArgument(name, `lifetime must be "singleton" or "transient", got `+cfg.lifetime.String(), nil)
		}
		if !isRecipe {
			return errInvalidBinding(name, "lifetime can only be used with constructors")
		}
	}

	if cfg.depsSet {
		for _, d := range cfg.dependencies {
			if err := assertDependencyPair(name, d); err != nil {
				return err
			}
		}
		if !isRecipe {
			return errInvalidBinding(name, "dependencies can only be used with constructors")
		}
	}

	return nil
}

// newBinding validates every argument and builds the record. Nothing is
// stored here.
func newBinding(name string, target any, cfg *bindConfig) (*binding, error) {
	if err := assertName(name); err != nil {
		return nil, err
	}
	if err := assertTarget(name, target); err != nil {
		return nil, err
	}

	recipe := recipeOf(target)
	if err := assertOptions(name, recipe != nil, cfg); err != nil {
		return nil, err
	}

	if recipe == nil {
		return &binding{name: name, instance: target, cached: true}, nil
	}

	return &binding{
		name:         name,
		target:       recipe,
		lifetime:     cfg.lifetime,
		dependencies: cfg.dependencies,
		params:       cfg.params,
	}, nil
}

func assertBase(base *Type) error {
	if base == nil {
		return errInvalidArgument("", "the base param must be a type", nil)
	}
	return nil
}

func extensionEntries(base *Type, deps map[string]string) ([]Dependency, error) {
	if deps == nil {
		return nil, errInvalidArgument(base.Name(), "the dependencies param cannot be nil", nil)
	}
	if len(deps) == 0 {
		return nil, errInvalidArgument(base.Name(), "the dependencies param must have at least one key", nil)
	}

	entries := make([]Dependency, 0, len(deps))
	for _, key := range sortedKeys(deps) {
		d := Dependency{Key: key, Name: deps[key]}
		if err := assertDependencyPair(base.Name(), d); err != nil {
			return nil, err
		}
		entries = append(entries, d)
	}
	return entries, nil
}
