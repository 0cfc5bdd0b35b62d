package dataset

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a top-level YAML sequence of flat mappings.
func (p *YAMLParser) Parse(content []byte) ([]Record, error) {
	var entries []map[string]any
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}

	records := make([]Record, len(entries))
	for i, entry := range entries {
		records[i] = Record(entry)
	}
	return records, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
