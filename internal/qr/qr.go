// Package qr renders text payloads, typically vCards, into QR code PNG
// images sized for phone camera scanning.
package qr

import (
	"errors"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the payload is empty or whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrEncode is returned when the payload cannot be rendered as a QR code.
	ErrEncode = errors.New("failed to encode qr code")
	// ErrWrite is returned when the rendered image cannot be written to disk.
	ErrWrite = errors.New("failed to write qr code file")
)

// DefaultSize is the edge length in pixels used when no size is given.
const DefaultSize = 256

// Encode renders content into a size×size PNG image.
func Encode(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return png, nil
}

// WriteFile renders content and writes the PNG to path.
func WriteFile(path, content string, size int) error {
	png, err := Encode(content, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}
