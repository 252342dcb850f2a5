package kernel_test

import (
	"testing"

	"routeadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("creates_valid_unique_uuids", func(t *testing.T) {
		// When
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		// Then
		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("round_trips_canonical_form", func(t *testing.T) {
		// Given
		original := kernel.NewUUID()

		// When
		parsed, err := kernel.UUIDFromString(original.String())

		// Then
		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trips_raw_bytes", func(t *testing.T) {
		// Given
		original := kernel.NewUUID()
		raw := original.Bytes()

		// When
		rebuilt, err := kernel.UUIDFromBytes(raw[:])

		// Then
		require.NoError(t, err)
		assert.True(t, original.IsEqual(rebuilt))
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}
