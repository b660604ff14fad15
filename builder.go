// FILE: lixenwraith/ncl/builder.go
package ncl

import (
	"fmt"

	"github.com/lixenwraith/ncl/term"
)

// entry is a field attached to a record, kept with its full path until Build.
type entry struct {
	path    Path
	content term.Field
}

// Record accumulates fields in attachment order and turns them into a record
// term with Build. Fields may share keys or path prefixes; combining them is
// left to term.BuildRecord.
//
// A Record is spent once built: further use panics.
type Record struct {
	fields []entry
	attrs  term.RecordAttrs
	built  bool
}

// NewRecord creates an empty, closed record builder.
func NewRecord() *Record {
	return &Record{}
}

// RecordOf creates a record builder holding fs in order.
func RecordOf(fs ...CompleteField) *Record {
	return NewRecord().Fields(fs...)
}

// Field starts a field of r with a single-segment path.
func (r *Record) Field(name string) RecordField {
	return r.At(NewPath(name))
}

// Path starts a field of r at the path formed by the given segments.
func (r *Record) Path(head string, tail ...string) RecordField {
	return r.At(NewPath(head, tail...))
}

// At starts a field of r at p.
func (r *Record) At(p Path) RecordField {
	r.checkLive()
	if p.IsZero() {
		panic("ncl: field path must not be empty")
	}
	return newRecordField(r, p)
}

// Fields appends complete fields in order. Existing fields are kept.
func (r *Record) Fields(fs ...CompleteField) *Record {
	for _, f := range fs {
		f.WithRecord(r)
	}
	return r
}

// Extend appends every field of o after the fields of r and spends o.
// Attributes combine as in a record merge.
func (r *Record) Extend(o *Record) *Record {
	r.checkLive()
	o.checkLive()
	if r == o {
		panic("ncl: record extended with itself")
	}
	r.fields = append(r.fields, o.fields...)
	r.attrs = r.attrs.Combine(o.attrs)
	o.built = true
	return r
}

// Attrs replaces the record attributes.
func (r *Record) Attrs(a term.RecordAttrs) *Record {
	r.checkLive()
	r.attrs = a
	return r
}

// Open marks the record open.
func (r *Record) Open() *Record {
	return r.SetOpen(true)
}

// SetOpen sets whether the record is open.
func (r *Record) SetOpen(open bool) *Record {
	r.checkLive()
	r.attrs.Open = open
	return r
}

// Len returns the number of attached fields, counting each attachment.
func (r *Record) Len() int {
	return len(r.fields)
}

// Pairs returns the elaborated top-level pairs in attachment order without
// spending the record.
func (r *Record) Pairs() []term.Pair {
	r.checkLive()
	pairs := make([]term.Pair, len(r.fields))
	for i, e := range r.fields {
		key, content := Elaborate(e.path, e.content)
		pairs[i] = term.Pair{Key: key, Field: content}
	}
	return pairs
}

// Build elaborates every field and constructs the record term.
func (r *Record) Build() term.Term {
	pairs := r.Pairs()
	r.built = true
	return term.BuildRecord(pairs, r.attrs)
}

// Term is Build, for callers converting a builder into a tree node.
func (r *Record) Term() term.Term {
	return r.Build()
}

// MustRecord builds r and returns the record literal.
func (r *Record) MustRecord() *term.RecordData {
	return r.Build().(*term.RecordData)
}

func (r *Record) attach(p Path, content term.Field) *Record {
	r.checkLive()
	r.fields = append(r.fields, entry{path: p, content: content})
	return r
}

func (r *Record) checkLive() {
	if r == nil {
		panic("ncl: nil record")
	}
	if r.built {
		panic(fmt.Sprintf("ncl: record with %d fields already built", len(r.fields)))
	}
}
