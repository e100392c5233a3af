package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/jerkface/framework/container"
)

func TestType_Ancestry(t *testing.T) {
	h := newHierarchy()

	assert.Equal(t, []*container.Type{h.Baz, h.Bar, h.Foo}, h.Qux.Ancestors())
	assert.Nil(t, h.Foo.Ancestors())
	assert.Same(t, h.Baz, h.Qux.Parent())

	assert.True(t, h.Qux.DerivesFrom(h.Foo))
	assert.False(t, h.Qux.DerivesFrom(h.Qux), "derivation is strict")
	assert.False(t, h.Foo.DerivesFrom(h.Qux))
	assert.False(t, h.Foo.DerivesFrom(nil))

	assert.True(t, h.Qux.Is(h.Qux))
	assert.True(t, h.Qux.Is(h.Bar))
	assert.False(t, h.Bar.Is(h.Qux))
}

func TestType_IdentityIsPointer(t *testing.T) {
	a := container.NewType("Same", nil)
	b := container.NewType("Same", nil)
	child := a.Derive("Child", nil)

	assert.True(t, child.DerivesFrom(a))
	assert.False(t, child.DerivesFrom(b))
}

func TestType_Names(t *testing.T) {
	assert.Equal(t, "Foo", container.NewType("Foo", nil).Name())
	assert.Equal(t, "<anonymous>", container.NewType("", nil).Name())
	assert.Equal(t, "Foo", container.NewType("Foo", nil).String())
}

func TestType_NewAbstract(t *testing.T) {
	abstract := container.NewType("Base", nil)
	assert.True(t, abstract.Abstract())

	_, err := abstract.New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abstract")
}

func TestLifetime_StringAndParse(t *testing.T) {
	assert.Equal(t, "singleton", container.Singleton.String())
	assert.Equal(t, "transient", container.Transient.String())
	assert.Equal(t, "Lifetime(9)", container.Lifetime(9).String())

	l, err := container.ParseLifetime("transient")
	require.NoError(t, err)
	assert.Equal(t, container.Transient, l)

	_, err = container.ParseLifetime("scoped")
	assert.True(t, container.IsInvalidArgument(err))
}
