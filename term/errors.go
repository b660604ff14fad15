// FILE: lixenwraith/ncl/term/errors.go
package term

import "errors"

var (
	// ErrUnsupportedValue is returned when a Go or cty value has no term representation.
	ErrUnsupportedValue = errors.New("unsupported value")
	// ErrUnsupportedType is returned when a cty type has no annotation counterpart.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrInvalidType is returned when a type constraint expression cannot be parsed.
	ErrInvalidType = errors.New("invalid type expression")
	// ErrMergeConflict is returned when two definitions of a field cannot be resolved statically.
	ErrMergeConflict = errors.New("conflicting field definitions")
	// ErrNotRecord is returned when an emitter that needs a record at the top receives another term.
	ErrNotRecord = errors.New("term is not a record")
	// ErrInvalidIdentifier is returned when a field name is not valid in the target syntax.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
