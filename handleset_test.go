package pointstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSet(t *testing.T) {
	t.Run("AddRemoveContains", func(t *testing.T) {
		set := NewHandleSet()
		assert.True(t, set.IsEmpty())

		set.Add(3)
		set.Add(1)
		set.Add(3)

		assert.False(t, set.IsEmpty())
		assert.Equal(t, uint64(2), set.Cardinality())
		assert.True(t, set.Contains(1))
		assert.True(t, set.Contains(3))
		assert.False(t, set.Contains(2))

		set.Remove(3)
		assert.False(t, set.Contains(3))
		assert.Equal(t, uint64(1), set.Cardinality())
	})

	t.Run("CheckedAdd", func(t *testing.T) {
		set := NewHandleSet()

		assert.True(t, set.CheckedAdd(7))
		assert.False(t, set.CheckedAdd(7))
		assert.Equal(t, uint64(1), set.Cardinality())
	})

	t.Run("Clone", func(t *testing.T) {
		set := NewHandleSet()
		set.Add(1)
		set.Add(2)

		clone := set.Clone()
		clone.Remove(1)

		assert.True(t, set.Contains(1))
		assert.False(t, clone.Contains(1))
	})

	t.Run("Iterator", func(t *testing.T) {
		set := NewHandleSet()
		for _, h := range []Handle{9, 2, 5} {
			set.Add(h)
		}

		var got []Handle
		for h := range set.Iterator() {
			got = append(got, h)
		}
		assert.Equal(t, []Handle{2, 5, 9}, got)
	})

	t.Run("IteratorEarlyStop", func(t *testing.T) {
		set := NewHandleSet()
		for h := Handle(0); h < 10; h++ {
			set.Add(h)
		}

		count := 0
		for range set.Iterator() {
			count++
			if count == 3 {
				break
			}
		}
		assert.Equal(t, 3, count)
	})

	t.Run("SetOperations", func(t *testing.T) {
		a := NewHandleSet()
		a.Add(1)
		a.Add(2)
		a.Add(3)

		b := NewHandleSet()
		b.Add(2)
		b.Add(3)
		b.Add(4)

		and := a.Clone()
		and.And(b)
		assert.Equal(t, uint64(2), and.Cardinality())
		assert.True(t, and.Contains(2))
		assert.True(t, and.Contains(3))

		diff := a.Clone()
		diff.AndNot(b)
		assert.Equal(t, uint64(1), diff.Cardinality())
		assert.True(t, diff.Contains(1))

		or := a.Clone()
		or.Or(b)
		assert.Equal(t, uint64(4), or.Cardinality())
	})
}

func TestLiveHandles_Empty(t *testing.T) {
	s, err := New[float32](2, 4)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.LiveHandles().IsEmpty())
}
