package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestStoreGetSet(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.Get("log.tag.X"))

	s.Set("log.tag.X", "W")
	assert.Equal(t, "W", s.Get("log.tag.X"))

	s.Delete("log.tag.X")
	assert.Empty(t, s.Get("log.tag.X"))
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	s.Set("a", "1")

	s.Replace(map[string]string{"b": "2", "c": "3"})

	assert.Empty(t, s.Get("a"))
	assert.Equal(t, "2", s.Get("b"))
	assert.Equal(t, 2, s.Len())

	s.Replace(nil)
	assert.Zero(t, s.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				s.Set("k", "v")
				_ = s.Get("k")
				s.Replace(map[string]string{"k": "v"})
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, "v", s.Get("k"))
}
