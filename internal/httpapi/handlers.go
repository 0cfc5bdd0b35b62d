package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/dmitrymomot/naija"
)

const maxCount = 100

// Handlers holds the HTTP endpoints. All draws from the generator run
// under mu; the generator alone is not safe for concurrent use.
type Handlers struct {
	mu  sync.Mutex
	gen *naija.Generator
	log *slog.Logger
}

// NewHandlers wires a generator into the endpoint set.
func NewHandlers(gen *naija.Generator, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handlers{gen: gen, log: log}
}

// respondList draws count values and writes them as a data envelope. The
// draw closure must not retain the lock-free generator outside the call.
func (h *Handlers) respondList(w http.ResponseWriter, r *http.Request, draw func() (any, error)) {
	count, err := requestCount(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out := make([]any, 0, count)
	h.mu.Lock()
	for range count {
		v, err := draw()
		if err != nil {
			h.mu.Unlock()
			h.writeError(w, r, err)
			return
		}
		out = append(out, v)
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, dataResponse{Data: out})
}

// requestCount parses ?count= within [1, maxCount], defaulting to one.
func requestCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxCount {
		return 0, errors.Join(naija.ErrInvalidArgument, fmt.Errorf("count must be an integer between 1 and %d, got %q", maxCount, raw))
	}
	return n, nil
}

// requestBool parses an optional boolean query parameter.
func requestBool(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Join(naija.ErrInvalidArgument, fmt.Errorf("%s must be a boolean, got %q", key, raw))
	}
	return v, nil
}

func (h *Handlers) firstName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := &naija.NameOptions{Tribe: naija.Tribe(q.Get("tribe")), Gender: naija.Gender(q.Get("gender"))}
	h.respondList(w, r, func() (any, error) { return h.gen.FirstName(opts) })
}

func (h *Handlers) lastName(w http.ResponseWriter, r *http.Request) {
	tribe := naija.Tribe(r.URL.Query().Get("tribe"))
	h.respondList(w, r, func() (any, error) { return h.gen.LastName(tribe) })
}

func (h *Handlers) fullName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	middle, err := requestBool(r, "middle")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	opts := &naija.NameOptions{
		Tribe:      naija.Tribe(q.Get("tribe")),
		Gender:     naija.Gender(q.Get("gender")),
		MiddleName: middle,
	}
	h.respondList(w, r, func() (any, error) { return h.gen.FullName(opts) })
}

func (h *Handlers) prefix(w http.ResponseWriter, r *http.Request) {
	gender := naija.Gender(r.URL.Query().Get("gender"))
	h.respondList(w, r, func() (any, error) { return h.gen.Prefix(gender) })
}

func (h *Handlers) degree(w http.ResponseWriter, r *http.Request) {
	typ := naija.DegreeType(r.URL.Query().Get("type"))
	abbr, err := requestBool(r, "abbr")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondList(w, r, func() (any, error) {
		if abbr {
			return h.gen.DegreeAbbr(typ)
		}
		return h.gen.Degree(typ)
	})
}

func (h *Handlers) course(w http.ResponseWriter, r *http.Request) {
	code, err := requestBool(r, "code")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondList(w, r, func() (any, error) {
		if code {
			return h.gen.CourseCode()
		}
		return h.gen.Course()
	})
}

func (h *Handlers) faculty(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, func() (any, error) { return h.gen.Faculty() })
}

func (h *Handlers) department(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, func() (any, error) { return h.gen.Department() })
}

func (h *Handlers) school(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	acronym, err := requestBool(r, "acronym")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	opts := &naija.SchoolOptions{
		Type:      naija.SchoolType(q.Get("type")),
		Ownership: naija.Ownership(q.Get("ownership")),
		Location:  q.Get("state"),
		Acronym:   acronym,
	}
	h.respondList(w, r, func() (any, error) { return h.gen.School(opts) })
}

func (h *Handlers) state(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field := q.Get("field")
	if field == "" {
		field = "name"
	}
	name := q.Get("state")
	opts := &naija.StateOptions{Region: naija.Region(q.Get("region"))}

	var draw func() (any, error)
	switch field {
	case "name":
		draw = func() (any, error) { return h.gen.State(opts) }
	case "code":
		draw = func() (any, error) { return h.gen.StateCode(opts) }
	case "capital":
		draw = func() (any, error) { return h.gen.StateCapital(name) }
	case "region":
		draw = func() (any, error) { return h.gen.Region() }
	case "lga":
		draw = func() (any, error) { return h.gen.LGA(name) }
	case "postal":
		draw = func() (any, error) { return h.gen.PostalCode(name) }
	default:
		h.writeError(w, r, errors.Join(naija.ErrInvalidArgument,
			fmt.Errorf("unknown field %q, expected one of [name, code, capital, region, lga, postal]", field)))
		return
	}
	h.respondList(w, r, draw)
}

func (h *Handlers) email(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := &naija.EmailOptions{
		Tribe:  naija.Tribe(q.Get("tribe")),
		Gender: naija.Gender(q.Get("gender")),
		Domain: q.Get("domain"),
		Name:   q.Get("name"),
	}
	h.respondList(w, r, func() (any, error) { return h.gen.Email(opts) })
}

func (h *Handlers) phone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := &naija.PhoneOptions{
		Network: naija.Network(q.Get("network")),
		Prefix:  q.Get("prefix"),
	}
	h.respondList(w, r, func() (any, error) { return h.gen.PhoneNumber(opts) })
}

func (h *Handlers) person(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	middle, err := requestBool(r, "middle")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	opts := &naija.NameOptions{
		Tribe:      naija.Tribe(q.Get("tribe")),
		Gender:     naija.Gender(q.Get("gender")),
		MiddleName: middle,
	}
	h.respondList(w, r, func() (any, error) { return h.gen.Person(opts) })
}
