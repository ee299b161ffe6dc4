package pointstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Validate(t *testing.T) {
	t.Run("FreshStore", func(t *testing.T) {
		s, err := New[float32](2, 8)
		require.NoError(t, err)
		defer s.Close()

		require.NoError(t, s.Validate())
	})

	t.Run("AfterChurn", func(t *testing.T) {
		s, err := New[float32](2, 8)
		require.NoError(t, err)
		defer s.Close()

		var handles []Handle
		for i := 0; i < 8; i++ {
			h, err := s.Add([]float32{float32(i), float32(i)})
			require.NoError(t, err)
			handles = append(handles, h)
		}
		require.NoError(t, s.Validate())

		for _, h := range handles[2:6] {
			require.NoError(t, s.DecRef(h))
		}
		require.NoError(t, s.Validate())

		for i := 0; i < 3; i++ {
			_, err := s.Add([]float32{9, 9})
			require.NoError(t, err)
		}
		require.NoError(t, s.Validate())
	})

	t.Run("DetectsFreePointerOutOfRange", func(t *testing.T) {
		s, err := New[float32](2, 4)
		require.NoError(t, err)
		defer s.Close()

		s.freePtr = -2
		assert.ErrorContains(t, s.Validate(), "free pointer")
	})

	t.Run("DetectsDuplicateFreeListEntry", func(t *testing.T) {
		s, err := New[float32](2, 4)
		require.NoError(t, err)
		defer s.Close()

		s.freeStack[0] = s.freeStack[1]
		assert.ErrorContains(t, s.Validate(), "twice in the free-list")
	})

	t.Run("DetectsLiveHandleOnFreeList", func(t *testing.T) {
		s, err := New[float32](2, 4)
		require.NoError(t, err)
		defer s.Close()

		_, err = s.Add([]float32{1, 2})
		require.NoError(t, err)

		s.freePtr = s.capacity - 1 // puts the live handle back in the free range
		assert.ErrorContains(t, s.Validate(), "reference count")
	})

	t.Run("DetectsNegativeRefCount", func(t *testing.T) {
		s, err := New[float32](2, 4)
		require.NoError(t, err)
		defer s.Close()

		h, err := s.Add([]float32{1, 2})
		require.NoError(t, err)

		s.refCount[h] = -1
		assert.Error(t, s.Validate())
	})

	t.Run("DetectsLostFreeHandle", func(t *testing.T) {
		s, err := New[float32](2, 4)
		require.NoError(t, err)
		defer s.Close()

		// Shrink the free-list without marking any slot live.
		s.freePtr--
		assert.Error(t, s.Validate())
	})
}
