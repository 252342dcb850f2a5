package guard_test

import (
	"errors"
	"testing"

	"routeadmin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("segment not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	copied := g

	testErr := errors.New("not constructed")
	require.NoError(t, g.Validate(testErr))
	require.NoError(t, copied.Validate(testErr))
}
