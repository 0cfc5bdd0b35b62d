package naija_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourse(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	seen := map[string]bool{}
	for range 2 {
		c, err := gen.Course()
		require.NoError(t, err)
		seen[c] = true
	}
	assert.ElementsMatch(t, []string{"Introduction to Computer Science", "Organic Chemistry"}, mapKeys(seen))
}

func TestCourseCode(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	seen := map[string]bool{}
	for range 2 {
		c, err := gen.CourseCode()
		require.NoError(t, err)
		seen[c] = true
	}
	assert.ElementsMatch(t, []string{"CSC101", "CHM201"}, mapKeys(seen))
}

func mapKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
