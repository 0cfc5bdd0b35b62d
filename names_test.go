package naija_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naija"
)

var fixtureFirstNames = map[naija.Tribe]map[naija.Gender][]string{
	naija.TribeYoruba: {naija.GenderMale: {"Ayo"}, naija.GenderFemale: {"Bisi"}},
	naija.TribeIgbo:   {naija.GenderMale: {"Chinedu"}, naija.GenderFemale: {"Ada", "Ngozi"}},
	naija.TribeHausa:  {naija.GenderMale: {"Musa"}, naija.GenderFemale: {"Amina"}},
	naija.TribeEdo:    {naija.GenderMale: {"Osaze"}, naija.GenderFemale: {"Eki"}},
	naija.TribeFulani: {naija.GenderMale: {"Bello"}},
	naija.TribeIjaw:   {naija.GenderMale: {"Ebi"}, naija.GenderFemale: {"Timi"}},
}

var fixtureLastNames = map[naija.Tribe]string{
	naija.TribeYoruba: "Adeyemi",
	naija.TribeIgbo:   "Okafor",
	naija.TribeHausa:  "Abubakar",
	naija.TribeEdo:    "Osagie",
	naija.TribeFulani: "Dikko",
	naija.TribeIjaw:   "Clark",
}

func TestFirstName(t *testing.T) {
	t.Parallel()

	t.Run("no filter", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		name, err := gen.FirstName(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, name)
	})

	t.Run("tribe and gender filter", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		for range 5 {
			name, err := gen.FirstName(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderFemale})
			require.NoError(t, err)
			assert.Contains(t, fixtureFirstNames[naija.TribeIgbo][naija.GenderFemale], name)
		}
	})

	t.Run("filter values are case insensitive", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		name, err := gen.FirstName(&naija.NameOptions{Tribe: "Igbo", Gender: "FEMALE"})
		require.NoError(t, err)
		assert.Contains(t, fixtureFirstNames[naija.TribeIgbo][naija.GenderFemale], name)
	})

	t.Run("unknown tribe", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.FirstName(&naija.NameOptions{Tribe: "martian"})
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "martian")
	})

	t.Run("unknown gender", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.FirstName(&naija.NameOptions{Gender: "other"})
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})

	t.Run("valid filter with no candidates", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.FirstName(&naija.NameOptions{Tribe: naija.TribeFulani, Gender: naija.GenderFemale})
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrEmptyPool)
	})
}

func TestLastName(t *testing.T) {
	t.Parallel()

	t.Run("tribe filter", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		name, err := gen.LastName(naija.TribeHausa)
		require.NoError(t, err)
		assert.Equal(t, "Abubakar", name)
	})

	t.Run("no filter draws from all tribes", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		seen := map[string]bool{}
		for range 6 {
			name, err := gen.LastName("")
			require.NoError(t, err)
			seen[name] = true
		}
		// Six draws with no repeats must cover the whole fixture pool.
		assert.Len(t, seen, 6)
	})

	t.Run("unknown tribe", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.LastName("atlantean")
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})
}

func TestFullName(t *testing.T) {
	t.Parallel()

	t.Run("parts come from one tribe", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		for range 10 {
			full, err := gen.FullName(nil)
			require.NoError(t, err)

			parts := strings.Fields(full)
			require.Len(t, parts, 2)

			var tribe naija.Tribe
			for tr, last := range fixtureLastNames {
				if last == parts[1] {
					tribe = tr
					break
				}
			}
			require.NotEmpty(t, tribe, "unexpected last name %q", parts[1])

			var firsts []string
			for _, names := range fixtureFirstNames[tribe] {
				firsts = append(firsts, names...)
			}
			assert.Contains(t, firsts, parts[0], "first name %q does not match tribe %s", parts[0], tribe)
		}
	})

	t.Run("pinned tribe and gender", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		full, err := gen.FullName(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderMale})
		require.NoError(t, err)
		assert.Equal(t, "Chinedu Okafor", full)
	})

	t.Run("middle name is distinct", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		full, err := gen.FullName(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderFemale, MiddleName: true})
		require.NoError(t, err)

		parts := strings.Fields(full)
		require.Len(t, parts, 3)
		assert.NotEqual(t, parts[0], parts[1])
		assert.ElementsMatch(t, []string{"Ada", "Ngozi"}, parts[:2])
		assert.Equal(t, "Okafor", parts[2])
	})

	t.Run("unknown gender", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.FullName(&naija.NameOptions{Gender: "unknown"})
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	t.Run("male pool", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		seen := map[string]bool{}
		for range 19 {
			p, err := gen.Prefix(naija.GenderMale)
			require.NoError(t, err)
			seen[p] = true
		}
		// A full cycle visits each of the nineteen male prefixes once.
		assert.Len(t, seen, 19)
		assert.Contains(t, seen, "Mr.")
		assert.Contains(t, seen, "Alhaji")
		assert.NotContains(t, seen, "Mrs.")
	})

	t.Run("female pool", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		seen := map[string]bool{}
		for range 14 {
			p, err := gen.Prefix(naija.GenderFemale)
			require.NoError(t, err)
			seen[p] = true
		}
		assert.Len(t, seen, 14)
		assert.Contains(t, seen, "Mrs.")
		assert.Contains(t, seen, "Dr. (Mrs.)")
		assert.NotContains(t, seen, "Mr.")
	})

	t.Run("no filter", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		p, err := gen.Prefix("")
		require.NoError(t, err)
		assert.NotEmpty(t, p)
	})

	t.Run("unknown gender", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.Prefix("robot")
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})
}

func TestProfessionalTitle(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	seen := map[string]bool{}
	for range 5 {
		title, err := gen.ProfessionalTitle()
		require.NoError(t, err)
		seen[title] = true
	}
	assert.Len(t, seen, 5)
	assert.Contains(t, seen, "Barrister")
}

func TestTraditionalTitle(t *testing.T) {
	t.Parallel()

	t.Run("merged pool counts shared titles once", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		seen := map[string]bool{}
		// Male and female pools share "Chief", so the union holds
		// eighteen distinct titles.
		for range 18 {
			title, err := gen.TraditionalTitle("")
			require.NoError(t, err)
			assert.False(t, seen[title], "title %q repeated before the pool was exhausted", title)
			seen[title] = true
		}
		assert.Len(t, seen, 18)
	})

	t.Run("female pool", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		seen := map[string]bool{}
		for range 8 {
			title, err := gen.TraditionalTitle(naija.GenderFemale)
			require.NoError(t, err)
			seen[title] = true
		}
		assert.Len(t, seen, 8)
		assert.Contains(t, seen, "Erelu")
	})

	t.Run("unknown gender", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.TraditionalTitle("x")
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})
}
