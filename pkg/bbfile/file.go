// Package bbfile reads and writes breadboard documents.
//
// TOML is the native format. JSON and YAML documents carry the same fields
// and are selected by file extension.
package bbfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

var (
	// ErrUnknownFormat is returned for paths whose extension maps to no codec.
	ErrUnknownFormat = errors.New("unknown file format")
	// ErrParse wraps every decoding failure.
	ErrParse = errors.New("parse error")
)

// Format selects a codec.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultExtension is the extension used for listing and for names typed
// without one.
const DefaultExtension = "toml"

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Decode parses a document. Counters are resynchronised from the ids present.
func Decode(data []byte, format Format) (*breadboard.Breadboard, error) {
	d := newDocument()
	var err error
	switch format {
	case FormatTOML:
		err = decodeTOML(data, d)
	case FormatJSON:
		err = decodeJSON(data, d)
	case FormatYAML:
		err = decodeYAML(data, d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, format, err)
	}
	if err := d.checkIDs(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, format, err)
	}
	return d.toBreadboard(), nil
}

// Encode serialises a breadboard.
func Encode(b *breadboard.Breadboard, format Format) ([]byte, error) {
	d := fromBreadboard(b)
	switch format {
	case FormatTOML:
		return encodeTOML(d)
	case FormatJSON:
		return encodeJSON(d, true)
	case FormatYAML:
		return encodeYAML(d)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Read decodes a document from a reader.
func Read(r io.Reader, format Format) (*breadboard.Breadboard, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// Write encodes a document to a writer.
func Write(w io.Writer, b *breadboard.Breadboard, format Format) error {
	data, err := Encode(b, format)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// ReadFile loads a breadboard, choosing the format by extension.
func ReadFile(path string) (*breadboard.Breadboard, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return b, nil
}

// WriteFile saves a breadboard, choosing the format by extension. The
// document is encoded before the file is touched, so an encoding failure
// leaves an existing file intact.
func WriteFile(path string, b *breadboard.Breadboard) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(b, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
