// FILE: lixenwraith/ncl/convenience.go
package ncl

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ncl/term"
)

// Quick builds a record from struct defaults overlaid by a file. Defaults are
// attached at bottom priority so any file value overrides them once exported.
// When the file does not exist the defaults are returned together with an
// error matching ErrNotFound. An empty file name skips the file.
func Quick(defaults any, file string) (term.Term, error) {
	r := NewRecord()

	if defaults != nil {
		opts := DefaultStructOptions()
		opts.Priority = term.PriorityBottom
		d, err := FromStructWithOptions(defaults, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to register defaults: %w", err)
		}
		r.Extend(d)
	}

	if file == "" {
		return r.Build(), nil
	}

	f, err := LoadFile(file)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return r.Build(), err
		}
		return nil, err
	}
	return r.Extend(f).Build(), nil
}

// MustQuick is like Quick but panics on error. A missing file is not an error.
func MustQuick(defaults any, file string) term.Term {
	t, err := Quick(defaults, file)
	if err != nil && !errors.Is(err, ErrNotFound) {
		panic(fmt.Sprintf("ncl initialization failed: %v", err))
	}
	return t
}

// MustBuild converts v to a term with the same rules as Field.ValueOf and
// panics on failure.
func MustBuild(v any) term.Term {
	return mustTerm(v)
}
