package naija_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaculty(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	seen := map[string]bool{}
	for range 2 {
		f, err := gen.Faculty()
		require.NoError(t, err)
		seen[f] = true
	}
	assert.ElementsMatch(t, []string{"Faculty of Science", "Faculty of Arts"}, mapKeys(seen))
}

func TestDepartment(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	seen := map[string]bool{}
	for range 4 {
		d, err := gen.Department()
		require.NoError(t, err)
		seen[d] = true
	}
	// Departments from every faculty are pooled together.
	assert.ElementsMatch(t, []string{"Computer Science", "Chemistry", "History", "Linguistics"}, mapKeys(seen))
}
