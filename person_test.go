package naija_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naija"
)

func TestPerson(t *testing.T) {
	t.Parallel()

	t.Run("coherent identity", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		p, err := gen.Person(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderMale})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, naija.TribeIgbo, p.Tribe)
		assert.Equal(t, naija.GenderMale, p.Gender)
		assert.Equal(t, "Chinedu", p.FirstName)
		assert.Equal(t, "Okafor", p.LastName)
		assert.Equal(t, "Chinedu Okafor", p.FullName)

		local, _, found := strings.Cut(p.Email, "@")
		require.True(t, found)
		assert.Contains(t, local, "chinedu")
		assert.Contains(t, local, "okafor")

		assert.Regexp(t, phonePattern, p.PhoneNumber)
		assert.NotEmpty(t, p.Prefix)
		assert.NotEmpty(t, p.Degree)
		assert.NotEmpty(t, p.School)
		assert.Contains(t, []string{"Lagos", "Kano"}, p.State)
	})

	t.Run("middle name", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		p, err := gen.Person(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderFemale, MiddleName: true})
		require.NoError(t, err)

		assert.NotEmpty(t, p.MiddleName)
		assert.NotEqual(t, p.FirstName, p.MiddleName)
		assert.Equal(t, p.FirstName+" "+p.MiddleName+" "+p.LastName, p.FullName)
	})

	t.Run("random identity from full datasets", func(t *testing.T) {
		t.Parallel()

		gen := newEmbeddedGenerator(t)
		p, err := gen.Person(nil)
		require.NoError(t, err)

		assert.Contains(t, naija.Tribes(), p.Tribe)
		assert.Contains(t, naija.Genders(), p.Gender)
		assert.NotEmpty(t, p.FullName)
		assert.Regexp(t, addressPattern, p.Email)
	})

	t.Run("unknown tribe", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.Person(&naija.NameOptions{Tribe: "martian"})
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})

	t.Run("json shape", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		p, err := gen.Person(&naija.NameOptions{Tribe: naija.TribeHausa, Gender: naija.GenderFemale})
		require.NoError(t, err)

		raw, err := json.Marshal(p)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "Amina", decoded["first_name"])
		assert.Equal(t, "hausa", decoded["tribe"])
		// Absent middle names are omitted entirely.
		assert.NotContains(t, decoded, "middle_name")
	})
}

func TestPersonVCard(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	p, err := gen.Person(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderMale})
	require.NoError(t, err)

	card := p.VCard()
	lines := strings.Split(strings.TrimSuffix(card, "\r\n"), "\r\n")

	assert.Equal(t, "BEGIN:VCARD", lines[0])
	assert.Equal(t, "VERSION:3.0", lines[1])
	assert.Equal(t, "END:VCARD", lines[len(lines)-1])
	assert.Contains(t, card, "FN:"+p.FullName)
	assert.Contains(t, card, "TEL;TYPE=CELL:"+p.PhoneNumber)
	assert.Contains(t, card, "EMAIL;TYPE=INTERNET:"+p.Email)
	assert.Contains(t, card, "UID:urn:uuid:"+p.ID.String())
	assert.Contains(t, card, "ADR;TYPE=HOME:;;;"+p.State+";;;Nigeria")
}
