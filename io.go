// FILE: lixenwraith/ncl/io.go
package ncl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/ncl/term"
)

// Format is an output syntax.
type Format string

const (
	FormatNickel Format = "nickel"
	FormatHCL    Format = "hcl"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatJSON   Format = "json"
)

// Formats lists every supported output format.
var Formats = []Format{FormatNickel, FormatHCL, FormatYAML, FormatTOML, FormatJSON}

// ParseFormat parses a format name. Common aliases and file extensions
// (ncl, yml, tml, tf) are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "nickel", "ncl":
		return FormatNickel, nil
	case "hcl", "tf":
		return FormatHCL, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Write renders t to w in the given format.
func Write(w io.Writer, t term.Term, format Format) error {
	var err error
	switch format {
	case FormatNickel:
		err = term.Pretty(w, t)
	case FormatHCL:
		err = term.WriteHCL(w, t)
	case FormatYAML:
		err = term.WriteYAML(w, t)
	case FormatTOML:
		err = term.WriteTOML(w, t)
	case FormatJSON:
		err = term.WriteJSON(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return nil
}

// Marshal renders t in the given format.
func Marshal(t term.Term, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes t to path atomically. An empty format is taken from the
// file extension.
func Save(path string, t term.Term, format Format) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}

	data, err := Marshal(t, format)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// atomicWriteFile writes data to a temporary file next to path and renames
// it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
