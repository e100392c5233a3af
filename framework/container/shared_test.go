package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/jerkface/framework/container"
)

func TestShared(t *testing.T) {
	container.SetShared(nil)
	t.Cleanup(func() { container.SetShared(nil) })

	t.Run("nil by default", func(t *testing.T) {
		assert.Nil(t, container.Shared())
	})

	t.Run("set to instance", func(t *testing.T) {
		c := container.New()
		container.SetShared(c)
		assert.Same(t, c, container.Shared())
	})

	t.Run("swap returns previous", func(t *testing.T) {
		a, b := container.New(), container.New()
		container.SetShared(a)
		assert.Same(t, a, container.SetShared(b))
		assert.Same(t, b, container.Shared())
	})

	t.Run("reset to nil", func(t *testing.T) {
		container.SetShared(container.New())
		container.SetShared(nil)
		assert.Nil(t, container.Shared())
	})
}
