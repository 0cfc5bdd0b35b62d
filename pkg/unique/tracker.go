package unique

// Tracker groups used Sets by category name so independent generation
// streams cycle through their pools without affecting each other. Unlike
// the bare Picker it records every successful pick into the category's Set
// before returning it.
//
// Like Picker, a Tracker performs no locking and must be confined to a
// single goroutine.
type Tracker struct {
	picker *Picker
	used   map[string]Set
}

// NewTracker wraps picker with per-category session state. A nil picker
// falls back to New().
func NewTracker(picker *Picker) *Tracker {
	if picker == nil {
		picker = New()
	}
	return &Tracker{
		picker: picker,
		used:   make(map[string]Set),
	}
}

// Pick selects a value from pool using the used Set registered for
// category, creating the Set on first use, and records the value before
// returning it.
func (t *Tracker) Pick(category string, pool []string) (string, error) {
	used, ok := t.used[category]
	if !ok {
		used = NewSet()
		t.used[category] = used
	}

	v, err := t.picker.Pick(pool, used)
	if err != nil {
		return "", err
	}
	used.Add(v)
	return v, nil
}

// Used returns how many values the category has consumed in its current
// cycle. Unknown categories report zero.
func (t *Tracker) Used(category string) int {
	return t.used[category].Len()
}

// Reset clears the named category's session state.
func (t *Tracker) Reset(category string) {
	if used, ok := t.used[category]; ok {
		used.Clear()
	}
}

// ResetAll clears every category.
func (t *Tracker) ResetAll() {
	for _, used := range t.used {
		used.Clear()
	}
}
