package naija

import (
	"errors"
	"fmt"
	"strings"
)

// SchoolOptions narrows school generation. Zero values mean no filter.
type SchoolOptions struct {
	Type      SchoolType
	Ownership Ownership
	// Location filters by the state a school sits in, e.g. "Lagos".
	Location string
	// Acronym returns the institution's acronym instead of its name.
	Acronym bool
}

// School returns a random institution name, or its acronym with Acronym
// set. Filters combine, so asking for a private polytechnic in a state
// that has none fails with ErrEmptyPool.
func (g *Generator) School(opts *SchoolOptions) (string, error) {
	if opts == nil {
		opts = &SchoolOptions{}
	}
	typ, err := ParseSchoolType(string(opts.Type))
	if err != nil {
		return "", err
	}
	own, err := ParseOwnership(string(opts.Ownership))
	if err != nil {
		return "", err
	}
	loc := strings.TrimSpace(opts.Location)

	store := g.schools
	if typ != "" {
		store = store.Where("type", string(typ))
	}
	if own != "" {
		store = store.Where("ownership", string(own))
	}
	if loc != "" {
		store = store.Where("location", loc)
	}

	field, family := "name", "school"
	if opts.Acronym {
		field, family = "acronym", "school_acronym"
	}
	pool := store.Values(field)
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, fmt.Errorf("no schools match type=%q ownership=%q location=%q", typ, own, loc))
	}
	return g.tracker.Pick(categoryKey(family, string(typ), string(own), strings.ToLower(loc)), pool)
}
