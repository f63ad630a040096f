package kernel_test

import (
	"testing"

	"stockflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create ID from positive value", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.NoError(t, id.Validate())
		assert.False(t, id.IsZero())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		_, err := kernel.NewID(0)
		require.Error(t, err)
	})

	t.Run("should reject negative value", func(t *testing.T) {
		_, err := kernel.NewID(-7)
		require.Error(t, err)
	})
}

func TestMustNewID(t *testing.T) {
	t.Run("should create ID from positive value", func(t *testing.T) {
		id := kernel.MustNewID(1)
		assert.Equal(t, int64(1), id.Int64())
	})

	t.Run("should panic on invalid value", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustNewID(0) })
	})
}

func TestID_IsEqual(t *testing.T) {
	id1 := kernel.MustNewID(10)
	id2 := kernel.MustNewID(10)
	id3 := kernel.MustNewID(11)

	assert.True(t, id1.IsEqual(id2))
	assert.False(t, id1.IsEqual(id3))
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.True(t, id.IsZero())
	require.Error(t, id.Validate())
	assert.Equal(t, kernel.ErrIDIsNotConstructed, id.Validate())
}
