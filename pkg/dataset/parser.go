package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Parser decodes raw dataset content into an ordered record list.
type Parser interface {
	// Parse decodes content. The top-level value must be a list of flat
	// objects; anything else is malformed.
	Parse(content []byte) ([]Record, error)

	// SupportsFileExtension checks if the parser supports a given file
	// extension. The extension may or may not include a leading dot (both
	// "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// ParserFor returns the parser responsible for the named file, based on its
// extension, or ErrUnsupportedFormat when no parser claims it.
func ParserFor(filename string) (Parser, error) {
	ext := fileExtension(filename)
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("no parser handles %q", filename))
}

// fileExtension extracts the extension from a filename.
func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
