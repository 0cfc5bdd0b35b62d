package dataset

import (
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for JSON files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes a top-level JSON array of flat objects.
func (p *JSONParser) Parse(content []byte) ([]Record, error) {
	var entries []map[string]any
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}

	records := make([]Record, len(entries))
	for i, entry := range entries {
		records[i] = Record(entry)
	}
	return records, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
