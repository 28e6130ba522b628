package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/namefix/internal/domain"
)

func TestContentCache_IsClean(t *testing.T) {
	c := domain.NewContentCache("/proj")
	c.MarkClean("src/a.go", "h1")

	t.Run("same hash", func(t *testing.T) {
		assert.True(t, c.IsClean("src/a.go", "h1"))
	})

	t.Run("content changed", func(t *testing.T) {
		assert.False(t, c.IsClean("src/a.go", "h2"))
	})

	t.Run("unknown path", func(t *testing.T) {
		assert.False(t, c.IsClean("src/b.go", "h1"))
	})
}

func TestContentCache_Forget(t *testing.T) {
	c := domain.NewContentCache("/proj")
	c.MarkClean("a.py", "h")
	c.Forget("a.py")
	assert.False(t, c.IsClean("a.py", "h"))
}

func TestContentCache_NilIsEmpty(t *testing.T) {
	var c *domain.ContentCache
	assert.False(t, c.IsClean("a.py", "h"))
}

func TestContentCache_MarkCleanOnZeroValue(t *testing.T) {
	c := &domain.ContentCache{}
	c.MarkClean("a.py", "h")
	assert.True(t, c.IsClean("a.py", "h"))
}
