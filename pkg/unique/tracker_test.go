package unique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naija/pkg/unique"
)

func TestTrackerRecordsPicks(t *testing.T) {
	t.Parallel()

	tracker := unique.NewTracker(unique.New())
	pool := []string{"red", "green", "blue"}

	got := make(map[string]bool)
	for i := range len(pool) {
		v, err := tracker.Pick("color", pool)
		require.NoError(t, err)
		got[v] = true
		assert.Equal(t, i+1, tracker.Used("color"))
	}

	assert.Len(t, got, len(pool))
}

func TestTrackerCategoriesAreIndependent(t *testing.T) {
	t.Parallel()

	tracker := unique.NewTracker(unique.New())
	small := []string{"a1", "a2"}
	large := []string{"b1", "b2", "b3", "b4", "b5"}

	// Interleave two categories: exhausting the small one must not disturb
	// the large one's cycle.
	seenLarge := make(map[string]bool)

	for range 2 {
		_, err := tracker.Pick("small", small)
		require.NoError(t, err)

		v, err := tracker.Pick("large", large)
		require.NoError(t, err)
		assert.False(t, seenLarge[v])
		seenLarge[v] = true
	}

	// Third pick on the small category wraps its cycle.
	_, err := tracker.Pick("small", small)
	require.NoError(t, err)
	assert.Equal(t, 1, tracker.Used("small"), "reset leaves only the value just picked")

	// The large category continues without repeats.
	for range 3 {
		v, err := tracker.Pick("large", large)
		require.NoError(t, err)
		assert.False(t, seenLarge[v], "small-category reset leaked into the large category")
		seenLarge[v] = true
	}
	assert.Len(t, seenLarge, len(large))
}

func TestTrackerEmptyPool(t *testing.T) {
	t.Parallel()

	tracker := unique.NewTracker(nil)

	_, err := tracker.Pick("void", nil)
	require.ErrorIs(t, err, unique.ErrEmptyPool)
	assert.Equal(t, 0, tracker.Used("void"))
}

func TestTrackerReset(t *testing.T) {
	t.Parallel()

	tracker := unique.NewTracker(unique.New())
	pool := []string{"x", "y"}

	_, err := tracker.Pick("one", pool)
	require.NoError(t, err)
	_, err = tracker.Pick("two", pool)
	require.NoError(t, err)

	tracker.Reset("one")
	assert.Equal(t, 0, tracker.Used("one"))
	assert.Equal(t, 1, tracker.Used("two"), "Reset touches only the named category")

	_, err = tracker.Pick("one", pool)
	require.NoError(t, err)
	tracker.ResetAll()
	assert.Equal(t, 0, tracker.Used("one"))
	assert.Equal(t, 0, tracker.Used("two"))
}

func TestTrackerUnknownCategory(t *testing.T) {
	t.Parallel()

	tracker := unique.NewTracker(nil)
	assert.Equal(t, 0, tracker.Used("never-picked"))
	tracker.Reset("never-picked") // must not panic
}
