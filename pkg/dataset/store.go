package dataset

import (
	"errors"
	"io/fs"
	"strings"
)

// Store is an immutable, ordered collection of validated records. Filters
// return views over the same records; nothing is copied or mutated, and
// file order is preserved end to end.
type Store struct {
	schema  Schema
	records []Record
}

// Load reads, parses, and validates one dataset file from fsys. The parser
// is selected by file extension, so the same call handles JSON and YAML
// sources (embedded or on disk via os.DirFS).
func Load(fsys fs.FS, path string, schema Schema) (*Store, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, errors.Join(ErrReadFailed, err)
	}

	records, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(records); err != nil {
		return nil, err
	}

	return &Store{schema: schema, records: records}, nil
}

// Schema returns the schema the store was validated against.
func (s *Store) Schema() Schema { return s.schema }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Records returns the records in file order. The slice is shared; callers
// must treat it as read-only.
func (s *Store) Records() []Record { return s.records }

// Where returns the records whose field under key equals value, compared
// case-insensitively. Calls chain to intersect filters. A filter matching
// nothing yields an empty store, never an error: whether empty is fatal is
// the caller's decision.
func (s *Store) Where(key, value string) *Store {
	matched := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if strings.EqualFold(r.String(key), value) {
			matched = append(matched, r)
		}
	}
	return &Store{schema: s.schema, records: matched}
}

// Values projects the string field under key across all records, in file
// order. Duplicates are kept; deduplication belongs to the selection layer.
func (s *Store) Values(key string) []string {
	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		if v := r.String(key); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Flatten concatenates the list field under key across all records, in
// file order.
func (s *Store) Flatten(key string) []string {
	var out []string
	for _, r := range s.records {
		out = append(out, r.Strings(key)...)
	}
	return out
}
