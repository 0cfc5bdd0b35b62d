package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Record is a single dataset entry: a flat object keyed by field name.
type Record map[string]any

// String returns the field under key when it holds a string, or "".
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Strings returns the field under key when it holds a list of strings.
// Non-string members are skipped; a scalar or absent field yields nil.
func (r Record) Strings(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Schema names a dataset and declares the exact key set every record must
// carry. Validation is strict in both directions: a missing key and an
// unknown key are equally malformed.
type Schema struct {
	Name string
	Keys []string
}

// Validate checks records against the schema and reports the first
// violation with its record index and the offending keys.
func (s Schema) Validate(records []Record) error {
	required := make(map[string]bool, len(s.Keys))
	for _, k := range s.Keys {
		required[k] = true
	}

	for i, r := range records {
		var missing, unknown []string
		for _, k := range s.Keys {
			if _, ok := r[k]; !ok {
				missing = append(missing, k)
			}
		}
		for k := range r {
			if !required[k] {
				unknown = append(unknown, k)
			}
		}
		if len(missing) == 0 && len(unknown) == 0 {
			continue
		}

		sort.Strings(unknown) // map iteration order is random
		var details []string
		if len(missing) > 0 {
			details = append(details, fmt.Sprintf("missing keys [%s]", strings.Join(missing, ", ")))
		}
		if len(unknown) > 0 {
			details = append(details, fmt.Sprintf("unknown keys [%s]", strings.Join(unknown, ", ")))
		}
		return errors.Join(ErrMalformed, fmt.Errorf("dataset %q: record %d: %s",
			s.Name, i, strings.Join(details, ", ")))
	}
	return nil
}
