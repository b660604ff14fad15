// FILE: lixenwraith/ncl/path.go
package ncl

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ncl/term"
)

// Path is a nonempty dotted field location such as terraform.required_providers.
// The zero Path is invalid; build paths with NewPath or ParsePath.
type Path struct {
	head term.Ident
	tail []term.Ident
}

// newIdent creates a field identifier positioned at the placeholder location.
func newIdent(name string) term.Ident {
	return term.NewIdentWithPos(name, term.FakePos())
}

// NewPath builds a path from its segments. Empty segments are caller bugs and panic.
func NewPath(head string, tail ...string) Path {
	p := Path{head: newIdent(head)}
	if len(tail) > 0 {
		p.tail = make([]term.Ident, len(tail))
		for i, s := range tail {
			p.tail[i] = newIdent(s)
		}
	}
	return p
}

// ParsePath splits a dotted path. Every segment must be nonempty.
func ParsePath(dotted string) (Path, error) {
	segments := strings.Split(dotted, ".")
	for _, s := range segments {
		if s == "" {
			return Path{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, dotted)
		}
	}
	return NewPath(segments[0], segments[1:]...), nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(dotted string) Path {
	p, err := ParsePath(dotted)
	if err != nil {
		panic(fmt.Sprintf("ncl: %v", err))
	}
	return p
}

// IsZero reports whether p is the invalid zero path.
func (p Path) IsZero() bool {
	return p.head.IsZero()
}

// Head returns the first segment.
func (p Path) Head() string {
	return p.head.Name
}

// Tail returns the segments after the first.
func (p Path) Tail() []string {
	out := make([]string, len(p.tail))
	for i, id := range p.tail {
		out[i] = id.Name
	}
	return out
}

// Len returns the number of segments.
func (p Path) Len() int {
	if p.IsZero() {
		return 0
	}
	return 1 + len(p.tail)
}

// Segments returns all segments in order.
func (p Path) Segments() []string {
	if p.IsZero() {
		return nil
	}
	return append([]string{p.head.Name}, p.Tail()...)
}

// Append returns a new path extended by segments. p is not modified.
func (p Path) Append(segments ...string) Path {
	if p.IsZero() {
		panic("ncl: extending an empty path")
	}
	out := Path{head: p.head, tail: make([]term.Ident, 0, len(p.tail)+len(segments))}
	out.tail = append(out.tail, p.tail...)
	for _, s := range segments {
		out.tail = append(out.tail, newIdent(s))
	}
	return out
}

func (p Path) String() string {
	return strings.Join(p.Segments(), ".")
}

// Elaborate turns a field path and its content into a top-level key and the
// content nested under the remaining segments:
//
//	a       , c  ->  (a, c)
//	a.b.c   , c  ->  (a, { b = { c = c } })
//
// Wrapping records are closed and carry no metadata.
func Elaborate(p Path, content term.Field) (term.Ident, term.Field) {
	if p.IsZero() {
		panic("ncl: unreachable: elaborating an empty path")
	}
	for i := len(p.tail) - 1; i >= 0; i-- {
		content = term.FieldOf(term.Singleton(p.tail[i], content))
	}
	return p.head, content
}
