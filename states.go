package naija

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/naija/pkg/dataset"
)

// StateOptions narrows state generation. The zero value means no filter.
type StateOptions struct {
	// Region restricts picks to one geopolitical zone, e.g. RegionSouthWest.
	Region Region
}

// State returns a random state name, optionally narrowed to a geopolitical
// zone.
func (g *Generator) State(opts *StateOptions) (string, error) {
	return g.pickState(opts, "name", "state")
}

// StateCode returns a random two-letter state code, optionally narrowed to
// a geopolitical zone.
func (g *Generator) StateCode(opts *StateOptions) (string, error) {
	return g.pickState(opts, "code", "state_code")
}

// StateCapital returns the capital of the named state, or of a random one
// when state is empty.
func (g *Generator) StateCapital(state string) (string, error) {
	if s := strings.TrimSpace(state); s != "" {
		rec, err := g.stateRecord(s)
		if err != nil {
			return "", err
		}
		return rec.String("capital"), nil
	}
	return g.tracker.Pick("state_capital", g.states.Values("capital"))
}

// LGA returns a random local government area, either nationwide or within
// the named state.
func (g *Generator) LGA(state string) (string, error) {
	if s := strings.TrimSpace(state); s != "" {
		rec, err := g.stateRecord(s)
		if err != nil {
			return "", err
		}
		pool := rec.Strings("lgas")
		if len(pool) == 0 {
			return "", errors.Join(ErrEmptyPool, fmt.Errorf("no LGAs recorded for state %q", s))
		}
		return g.tracker.Pick(categoryKey("lga", strings.ToLower(s)), pool)
	}
	pool := g.states.Flatten("lgas")
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, errors.New("no LGAs in state dataset"))
	}
	return g.tracker.Pick("lga", pool)
}

// PostalCode returns the postal code of the named state, or of a random
// one when state is empty. Postal codes are attributes rather than a pool
// to cycle through, so they skip used-value tracking.
func (g *Generator) PostalCode(state string) (string, error) {
	if s := strings.TrimSpace(state); s != "" {
		rec, err := g.stateRecord(s)
		if err != nil {
			return "", err
		}
		return rec.String("postal_code"), nil
	}
	pool := g.states.Values("postal_code")
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, errors.New("no postal codes in state dataset"))
	}
	return g.pick(pool), nil
}

// Region returns a random geopolitical zone name such as "South West".
func (g *Generator) Region() (string, error) {
	return g.tracker.Pick("region", g.states.Values("region"))
}

// RegionInitial returns a random geopolitical zone initial such as "SW".
func (g *Generator) RegionInitial() (string, error) {
	return g.tracker.Pick("region_initial", g.states.Values("region_initial"))
}

func (g *Generator) pickState(opts *StateOptions, field, family string) (string, error) {
	var region Region
	if opts != nil {
		var err error
		if region, err = ParseRegion(string(opts.Region)); err != nil {
			return "", err
		}
	}
	store := g.states
	if region != "" {
		store = store.Where("region_initial", string(region))
	}
	pool := store.Values(field)
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, fmt.Errorf("no states match region=%q", region))
	}
	return g.tracker.Pick(categoryKey(family, string(region)), pool)
}

// stateRecord resolves a state by case-insensitive name.
func (g *Generator) stateRecord(name string) (dataset.Record, error) {
	matches := g.states.Where("name", name)
	if matches.Len() == 0 {
		return nil, errors.Join(ErrNotFound, fmt.Errorf("unknown state %q", name))
	}
	return matches.Records()[0], nil
}
