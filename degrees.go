package naija

import (
	"errors"
	"fmt"
)

// Degree returns a random degree name, optionally narrowed to one academic
// level.
func (g *Generator) Degree(typ DegreeType) (string, error) {
	return g.pickDegree(typ, "name", "degree")
}

// DegreeAbbr returns a random degree abbreviation such as "B.Sc." or
// "Ph.D.", optionally narrowed to one academic level.
func (g *Generator) DegreeAbbr(typ DegreeType) (string, error) {
	return g.pickDegree(typ, "initials", "degree_abbr")
}

func (g *Generator) pickDegree(typ DegreeType, field, family string) (string, error) {
	dt, err := ParseDegreeType(string(typ))
	if err != nil {
		return "", err
	}
	store := g.degrees
	if dt != "" {
		store = store.Where("degree_type", string(dt))
	}
	pool := store.Values(field)
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, fmt.Errorf("no degrees match type=%q", dt))
	}
	return g.tracker.Pick(categoryKey(family, string(dt)), pool)
}
