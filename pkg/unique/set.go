package unique

// Set records the values already returned within a session. Create one with
// NewSet; reading from a nil Set is safe, adding to one panics like any nil
// map write.
type Set map[string]bool

// NewSet returns a Set pre-populated with the given values.
func NewSet(vals ...string) Set {
	s := make(Set, len(vals))
	for _, v := range vals {
		s[v] = true
	}
	return s
}

// Has reports whether v has been recorded.
func (s Set) Has(v string) bool { return s[v] }

// Add records v.
func (s Set) Add(v string) { s[v] = true }

// Clear removes every recorded value in place. The map identity is
// preserved so every holder of the Set observes the reset.
func (s Set) Clear() {
	for v := range s {
		delete(s, v)
	}
}

// Len returns the number of recorded values.
func (s Set) Len() int { return len(s) }
