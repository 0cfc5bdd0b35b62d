package naija

import (
	"errors"
	"fmt"
	"strings"
)

// Honorific pools. These are curated inline rather than shipped as dataset
// files because they are closed lists that no deployment overrides.
var (
	allPrefixes = []string{
		"Mr.", "Mrs.", "Miss", "Master", "Mister", "Madam", "Prof.", "J.P",
		"Chief", "Oba", "Otunba", "Erelu", "Prince", "Princess", "Lolo",
		"Igwe", "Obi", "Obong", "Iyalode", "Emir", "Waziri", "Olu",
		"Alhaja", "Alhaji", "Hajia", "Lady", "Dr.", "Engr.", "Tpl",
		"Barrister",
	}
	malePrefixes = []string{
		"Mr.", "Master", "Mister", "Chief", "Oba", "Otunba", "Prince",
		"Prof.", "Dr.", "Alhaji", "Engr.", "Tpl", "Barrister", "Igwe",
		"Obi", "Obong", "Emir", "Waziri", "Olu",
	}
	femalePrefixes = []string{
		"Mrs.", "Miss", "Madam", "Chief", "Lady", "Princess", "Erelu",
		"Prof.", "Dr. (Mrs.)", "Hajia", "Lady (Mrs.)", "Alhaja", "Lolo",
		"Iyalode",
	}
	maleTitles = []string{
		"Chief", "Oba", "Otunba", "Prince", "Alhaji", "Igwe", "Obi",
		"Obong", "Emir", "Waziri", "Olu",
	}
	femaleTitles = []string{
		"Chief", "Erelu", "Princess", "Lady (Mrs.)", "Hajia", "Alhaja",
		"Lolo", "Iyalode",
	}
	professionalTitles = []string{"Dr.", "Engr.", "Tpl", "Barrister", "Prof."}
)

// NameOptions narrows name generation. Zero values mean no filter.
type NameOptions struct {
	Tribe  Tribe
	Gender Gender
	// MiddleName adds a second first name between the given and family
	// names. Only FullName and Person honor it.
	MiddleName bool
}

func (o *NameOptions) normalized() (Tribe, Gender, error) {
	if o == nil {
		return "", "", nil
	}
	tribe, err := ParseTribe(string(o.Tribe))
	if err != nil {
		return "", "", err
	}
	gender, err := ParseGender(string(o.Gender))
	if err != nil {
		return "", "", err
	}
	return tribe, gender, nil
}

// FirstName returns a random first name, optionally narrowed by tribe and
// gender. Each filter combination cycles through its candidates without
// repeats.
func (g *Generator) FirstName(opts *NameOptions) (string, error) {
	tribe, gender, err := opts.normalized()
	if err != nil {
		return "", err
	}
	return g.pickFirstName(tribe, gender)
}

// LastName returns a random last name, optionally narrowed by tribe.
func (g *Generator) LastName(tribe Tribe) (string, error) {
	t, err := ParseTribe(string(tribe))
	if err != nil {
		return "", err
	}
	return g.pickLastName(t)
}

// FullName composes a first and last name from the same tribe. When no
// tribe is given one is chosen at random, so the parts always match. With
// MiddleName set, a second first name from the same pool is inserted; the
// used-value tracking keeps it distinct from the given name as long as the
// pool has candidates left.
func (g *Generator) FullName(opts *NameOptions) (string, error) {
	tribe, gender, err := opts.normalized()
	if err != nil {
		return "", err
	}
	if tribe == "" {
		tribe = g.randTribe()
	}

	first, err := g.pickFirstName(tribe, gender)
	if err != nil {
		return "", err
	}
	parts := []string{first}
	if opts != nil && opts.MiddleName {
		middle, err := g.pickFirstName(tribe, gender)
		if err != nil {
			return "", err
		}
		parts = append(parts, middle)
	}
	last, err := g.pickLastName(tribe)
	if err != nil {
		return "", err
	}
	parts = append(parts, last)
	return strings.Join(parts, " "), nil
}

// Prefix returns a name prefix, optionally narrowed to the male or female
// pool.
func (g *Generator) Prefix(gender Gender) (string, error) {
	gd, err := ParseGender(string(gender))
	if err != nil {
		return "", err
	}
	pool := allPrefixes
	switch gd {
	case GenderMale:
		pool = malePrefixes
	case GenderFemale:
		pool = femalePrefixes
	}
	return g.tracker.Pick(categoryKey("prefix", string(gd)), pool)
}

// ProfessionalTitle returns a professional honorific such as "Engr." or
// "Barrister".
func (g *Generator) ProfessionalTitle() (string, error) {
	return g.tracker.Pick("professional_title", professionalTitles)
}

// TraditionalTitle returns a traditional honorific. With no gender the two
// pools are merged; titles carried by both count once.
func (g *Generator) TraditionalTitle(gender Gender) (string, error) {
	gd, err := ParseGender(string(gender))
	if err != nil {
		return "", err
	}
	var pool []string
	switch gd {
	case GenderMale:
		pool = maleTitles
	case GenderFemale:
		pool = femaleTitles
	default:
		pool = append(append([]string{}, maleTitles...), femaleTitles...)
	}
	return g.tracker.Pick(categoryKey("traditional_title", string(gd)), pool)
}

func (g *Generator) pickFirstName(tribe Tribe, gender Gender) (string, error) {
	store := g.firstNames
	if tribe != "" {
		store = store.Where("tribe", string(tribe))
	}
	if gender != "" {
		store = store.Where("gender", string(gender))
	}
	pool := store.Values("name")
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, fmt.Errorf("no first names match tribe=%q gender=%q", tribe, gender))
	}
	return g.tracker.Pick(categoryKey("first_name", string(tribe), string(gender)), pool)
}

func (g *Generator) pickLastName(tribe Tribe) (string, error) {
	store := g.lastNames
	if tribe != "" {
		store = store.Where("tribe", string(tribe))
	}
	pool := store.Values("name")
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, fmt.Errorf("no last names match tribe=%q", tribe))
	}
	return g.tracker.Pick(categoryKey("last_name", string(tribe)), pool)
}
