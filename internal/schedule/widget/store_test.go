package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	t.Run("get or create returns the same widget", func(t *testing.T) {
		s := NewStore(10, time.Minute)
		a := s.GetOrCreate("session-a")
		assert.Same(t, a, s.GetOrCreate("session-a"))
		assert.NotSame(t, a, s.GetOrCreate("session-b"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("get unknown session", func(t *testing.T) {
		s := NewStore(10, time.Minute)
		_, ok := s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		s := NewStore(2, time.Minute)
		s.GetOrCreate("a")
		s.GetOrCreate("b")
		s.GetOrCreate("a")
		s.GetOrCreate("c")

		_, okA := s.Get("a")
		_, okB := s.Get("b")
		assert.True(t, okA)
		assert.False(t, okB)
	})

	t.Run("expires idle sessions", func(t *testing.T) {
		s := NewStore(10, 20*time.Millisecond)
		s.GetOrCreate("a")
		time.Sleep(60 * time.Millisecond)
		_, ok := s.Get("a")
		assert.False(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		s := NewStore(0, 0)
		s.GetOrCreate("a")
		s.Remove("a")
		assert.Equal(t, 0, s.Len())
	})
}
