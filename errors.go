// FILE: lixenwraith/ncl/errors.go
package ncl

import "errors"

var (
	// ErrInvalidPath is returned when a dotted path has an empty segment.
	ErrInvalidPath = errors.New("invalid field path")
	// ErrNotFound is returned by LoadFile when the input file does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrUnsupportedFormat is returned for unknown or read-unsupported formats.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNotStruct is returned when FromStruct receives something other than a struct.
	ErrNotStruct = errors.New("value is not a struct")
	// ErrInvalidTag is returned when a struct tag cannot be interpreted.
	ErrInvalidTag = errors.New("invalid struct tag")
)
