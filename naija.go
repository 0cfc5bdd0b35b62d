package naija

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/lucasjones/reggen"

	"github.com/dmitrymomot/naija/pkg/dataset"
	"github.com/dmitrymomot/naija/pkg/unique"
)

//go:embed datasets
var embeddedData embed.FS

// Dataset schemas. Every record in a dataset file must carry exactly these
// keys; Load rejects anything else.
var (
	firstNameSchema = dataset.Schema{Name: "first_names", Keys: []string{"tribe", "gender", "name"}}
	lastNameSchema  = dataset.Schema{Name: "last_names", Keys: []string{"tribe", "name"}}
	degreeSchema    = dataset.Schema{Name: "degrees", Keys: []string{"name", "degree_type", "initials"}}
	courseSchema    = dataset.Schema{Name: "courses", Keys: []string{"name", "department", "code", "faculty", "credit_units", "level", "semester"}}
	facultySchema   = dataset.Schema{Name: "faculties", Keys: []string{"name", "departments"}}
	schoolSchema    = dataset.Schema{Name: "schools", Keys: []string{"name", "acronym", "location", "type", "ownership", "year_founded"}}
	stateSchema     = dataset.Schema{Name: "states", Keys: []string{"name", "code", "capital", "region", "region_initial", "postal_code", "lgas"}}
)

// defaultEmailDomains mirrors the providers commonly seen on Nigerian
// addresses, including the academic and government zones.
var defaultEmailDomains = []string{"gmail.com", "yahoo.com", "edu.ng", "gov.ng", "mail.com"}

// Generator produces randomized Nigeria-flavored data. Each value family
// tracks what it already returned and avoids repeats until its candidate
// pool is exhausted, at which point the cycle starts over.
//
// A Generator is not safe for concurrent use, for the same reason a
// *rand.Rand is not. Create one per goroutine or serialize access.
type Generator struct {
	rnd     *rand.Rand
	intn    unique.IntN
	tracker *unique.Tracker

	firstNames *dataset.Store
	lastNames  *dataset.Store
	degrees    *dataset.Store
	courses    *dataset.Store
	faculties  *dataset.Store
	schools    *dataset.Store
	states     *dataset.Store

	emailDomains []string
	phoneDigits  *reggen.Generator
}

type config struct {
	src     rand.Source
	intn    unique.IntN
	dataFS  fs.FS
	domains []string
}

// Option configures a Generator.
type Option func(*config)

// WithSeed makes every draw reproducible for a given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.NewSource(seed)
	}
}

// WithSource supplies the randomness source backing all draws.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// WithIntN overrides the integer draw used for pool selection. Draws that
// are not pool selections (amounts, digit suffixes, coin flips) keep using
// the configured source; use WithSeed for full determinism.
func WithIntN(fn unique.IntN) Option {
	return func(c *config) {
		c.intn = fn
	}
}

// WithDataFS loads datasets from fsys instead of the embedded copies. The
// filesystem must carry the same base names (first_names, last_names,
// degrees, courses, faculties, schools, states) with a .json, .yaml or
// .yml extension.
func WithDataFS(fsys fs.FS) Option {
	return func(c *config) {
		c.dataFS = fsys
	}
}

// WithDataDir is WithDataFS over a directory on disk.
func WithDataDir(dir string) Option {
	return func(c *config) {
		c.dataFS = os.DirFS(dir)
	}
}

// WithEmailDomains replaces the default email domain pool.
func WithEmailDomains(domains ...string) Option {
	return func(c *config) {
		c.domains = domains
	}
}

// New builds a Generator, loading and validating every dataset up front so
// malformed data surfaces here rather than mid-generation.
func New(opts ...Option) (*Generator, error) {
	cfg := config{
		src:     rand.NewSource(time.Now().UnixNano()),
		domains: defaultEmailDomains,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dataFS == nil {
		sub, err := fs.Sub(embeddedData, "datasets")
		if err != nil {
			return nil, err
		}
		cfg.dataFS = sub
	}

	rnd := rand.New(cfg.src)
	intn := cfg.intn
	if intn == nil {
		intn = rnd.Intn
	}

	g := &Generator{
		rnd:          rnd,
		intn:         intn,
		tracker:      unique.NewTracker(unique.New(unique.WithIntN(intn))),
		emailDomains: make([]string, 0, len(cfg.domains)),
	}

	for _, d := range cfg.domains {
		nd, err := normalizeDomain(d)
		if err != nil {
			return nil, err
		}
		g.emailDomains = append(g.emailDomains, nd)
	}
	if len(g.emailDomains) == 0 {
		return nil, errors.Join(ErrInvalidArgument, errors.New("email domain pool is empty"))
	}

	var err error
	if g.firstNames, err = loadStore(cfg.dataFS, firstNameSchema); err != nil {
		return nil, err
	}
	if g.lastNames, err = loadStore(cfg.dataFS, lastNameSchema); err != nil {
		return nil, err
	}
	if g.degrees, err = loadStore(cfg.dataFS, degreeSchema); err != nil {
		return nil, err
	}
	if g.courses, err = loadStore(cfg.dataFS, courseSchema); err != nil {
		return nil, err
	}
	if g.faculties, err = loadStore(cfg.dataFS, facultySchema); err != nil {
		return nil, err
	}
	if g.schools, err = loadStore(cfg.dataFS, schoolSchema); err != nil {
		return nil, err
	}
	if g.states, err = loadStore(cfg.dataFS, stateSchema); err != nil {
		return nil, err
	}

	// The subscriber part of phone numbers is regex-generated. Seeding it
	// from the generator's own source keeps WithSeed fully reproducible.
	g.phoneDigits, err = reggen.NewGenerator(`[0-9]{7}`)
	if err != nil {
		return nil, err
	}
	g.phoneDigits.SetSeed(rnd.Int63())

	return g, nil
}

// loadStore resolves the dataset file by base name, trying the supported
// extensions in order.
func loadStore(fsys fs.FS, schema dataset.Schema) (*dataset.Store, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := schema.Name + ext
		if _, err := fs.Stat(fsys, path); err != nil {
			continue
		}
		return dataset.Load(fsys, path, schema)
	}
	return nil, errors.Join(dataset.ErrNotFound, fmt.Errorf("no %s dataset found (.json, .yaml or .yml)", schema.Name))
}

// Reset clears all used-value tracking, so every family may repeat values
// it has already returned.
func (g *Generator) Reset() {
	g.tracker.ResetAll()
}

// pick draws uniformly from pool without uniqueness tracking.
func (g *Generator) pick(pool []string) string {
	return pool[g.intn(len(pool))]
}

// chance reports true with probability p.
func (g *Generator) chance(p float64) bool {
	return g.rnd.Float64() < p
}

func (g *Generator) randTribe() Tribe {
	tribes := Tribes()
	return tribes[g.intn(len(tribes))]
}

func (g *Generator) randGender() Gender {
	genders := Genders()
	return genders[g.intn(len(genders))]
}

// categoryKey builds a used-set key from the family name and any active
// filters, so every filter combination cycles independently.
func categoryKey(parts ...string) string {
	key := parts[0]
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		key += ":" + p
	}
	return key
}
