// FILE: lixenwraith/ncl/field.go
package ncl

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/ncl/term"
)

// A field moves through three phases, each its own type:
//
//	Field          path and metadata, value not decided
//	CompleteField  value decided (Value or NoValue), ready to attach
//	RecordField    scoped to a *Record; deciding the value attaches it
//
// Only Field and RecordField offer Value/NoValue, so a second value decision
// and attaching an undecided field do not compile.

// Field is a field whose value has not been decided yet.
// Setters return an updated copy; the receiver is left untouched.
type Field struct {
	path Path
	md   term.FieldMetadata
}

// Name starts a field with a single-segment path.
func Name(name string) Field {
	return NewField(NewPath(name))
}

// PathField starts a field at the path formed by the given segments.
func PathField(head string, tail ...string) Field {
	return NewField(NewPath(head, tail...))
}

// NewField starts a field at p.
func NewField(p Path) Field {
	if p.IsZero() {
		panic("ncl: field path must not be empty")
	}
	return Field{path: p}
}

// Path returns the field path.
func (f Field) Path() Path { return f.path }

// Doc sets the documentation.
func (f Field) Doc(doc string) Field { f.md.Doc = doc; return f }

// SomeDoc sets the documentation when ok is true and clears it otherwise.
func (f Field) SomeDoc(doc string, ok bool) Field { f.md.Doc = someDoc(doc, ok); return f }

// Optional marks the field optional.
func (f Field) Optional() Field { return f.SetOptional(true) }

// SetOptional sets the optional flag.
func (f Field) SetOptional(opt bool) Field { f.md.Opt = opt; return f }

// NotExported hides the field from exports.
func (f Field) NotExported() Field { return f.SetNotExported(true) }

// SetNotExported sets the not-exported flag.
func (f Field) SetNotExported(v bool) Field { f.md.NotExported = v; return f }

// Priority sets the merge priority.
func (f Field) Priority(p term.MergePriority) Field { f.md.Priority = p; return f }

// Type sets the type annotation.
func (f Field) Type(t term.Type) Field { f.md = withType(f.md, t); return f }

// Contract appends a contract.
func (f Field) Contract(c term.Type) Field { f.md = withContracts(f.md, c); return f }

// Contracts appends contracts in order.
func (f Field) Contracts(cs ...term.Type) Field { f.md = withContracts(f.md, cs...); return f }

// Metadata replaces all metadata.
func (f Field) Metadata(md term.FieldMetadata) Field { f.md = md.Clone(); return f }

// Value decides the field value. A nil term is taken as null.
func (f Field) Value(v term.Term) CompleteField {
	if v == nil {
		v = term.Null{}
	}
	return CompleteField{path: f.path, content: term.Field{Value: v, Metadata: f.md.Clone()}, attached: new(bool)}
}

// ValueOf decides the field value from a Go value (see term.FromGo). A
// *Record is built and used as the value. Unconvertible values panic.
func (f Field) ValueOf(v any) CompleteField {
	return f.Value(mustTerm(v))
}

// NoValue decides that the field has no value; it only declares metadata.
func (f Field) NoValue() CompleteField {
	return CompleteField{path: f.path, content: term.Field{Metadata: f.md.Clone()}, attached: new(bool)}
}

// CompleteField is a field with its value decided. Copies share one
// attachment, so it can be attached to a record once.
type CompleteField struct {
	path     Path
	content  term.Field
	attached *bool
}

// Path returns the field path.
func (f CompleteField) Path() Path { return f.path }

// Content returns the field content.
func (f CompleteField) Content() term.Field {
	return term.Field{Value: f.content.Value, Metadata: f.content.Metadata.Clone()}
}

// WithRecord attaches the field to r and returns r. Attaching the same field
// again panics.
func (f CompleteField) WithRecord(r *Record) *Record {
	if f.path.IsZero() || f.attached == nil {
		panic("ncl: attaching a field without a path")
	}
	if *f.attached {
		panic(fmt.Sprintf("ncl: field %s already attached", f.path))
	}
	r.attach(f.path, f.Content())
	*f.attached = true
	return r
}

// RecordField is a field scoped to a record. Deciding its value attaches it
// to the record and returns the record; a RecordField can be attached once.
type RecordField struct {
	rec      *Record
	path     Path
	md       term.FieldMetadata
	attached *bool
}

func newRecordField(r *Record, p Path) RecordField {
	return RecordField{rec: r, path: p, attached: new(bool)}
}

// Path returns the field path.
func (f RecordField) Path() Path { return f.path }

// Doc sets the documentation.
func (f RecordField) Doc(doc string) RecordField { f.md.Doc = doc; return f }

// SomeDoc sets the documentation when ok is true and clears it otherwise.
func (f RecordField) SomeDoc(doc string, ok bool) RecordField { f.md.Doc = someDoc(doc, ok); return f }

// Optional marks the field optional.
func (f RecordField) Optional() RecordField { return f.SetOptional(true) }

// SetOptional sets the optional flag.
func (f RecordField) SetOptional(opt bool) RecordField { f.md.Opt = opt; return f }

// NotExported hides the field from exports.
func (f RecordField) NotExported() RecordField { return f.SetNotExported(true) }

// SetNotExported sets the not-exported flag.
func (f RecordField) SetNotExported(v bool) RecordField { f.md.NotExported = v; return f }

// Priority sets the merge priority.
func (f RecordField) Priority(p term.MergePriority) RecordField { f.md.Priority = p; return f }

// Type sets the type annotation.
func (f RecordField) Type(t term.Type) RecordField { f.md = withType(f.md, t); return f }

// Contract appends a contract.
func (f RecordField) Contract(c term.Type) RecordField { f.md = withContracts(f.md, c); return f }

// Contracts appends contracts in order.
func (f RecordField) Contracts(cs ...term.Type) RecordField { f.md = withContracts(f.md, cs...); return f }

// Metadata replaces all metadata.
func (f RecordField) Metadata(md term.FieldMetadata) RecordField { f.md = md.Clone(); return f }

// Value attaches the field with value v and returns the record.
// A nil term is taken as null.
func (f RecordField) Value(v term.Term) *Record {
	if v == nil {
		v = term.Null{}
	}
	return f.attach(term.Field{Value: v, Metadata: f.md.Clone()})
}

// ValueOf attaches the field with a Go value (see Field.ValueOf).
func (f RecordField) ValueOf(v any) *Record {
	return f.Value(mustTerm(v))
}

// NoValue attaches the field without a value and returns the record.
func (f RecordField) NoValue() *Record {
	return f.attach(term.Field{Metadata: f.md.Clone()})
}

func (f RecordField) attach(content term.Field) *Record {
	if f.rec == nil {
		panic("ncl: field is not scoped to a record")
	}
	if *f.attached {
		panic(fmt.Sprintf("ncl: field %s already attached", f.path))
	}
	*f.attached = true
	return f.rec.attach(f.path, content)
}

func someDoc(doc string, ok bool) string {
	if !ok {
		return ""
	}
	return doc
}

func withType(md term.FieldMetadata, t term.Type) term.FieldMetadata {
	t = t.Clone()
	md.Annotation.Typ = &t
	return md
}

// withContracts appends without writing into a backing array shared with
// other copies of md.
func withContracts(md term.FieldMetadata, cs ...term.Type) term.FieldMetadata {
	contracts := slices.Clip(md.Annotation.Contracts)
	for _, c := range cs {
		contracts = append(contracts, c.Clone())
	}
	md.Annotation.Contracts = contracts
	return md
}

// toTerm converts a Go value, building records passed as values.
func toTerm(v any) (term.Term, error) {
	switch x := v.(type) {
	case *Record:
		return x.Build(), nil
	case CompleteField:
		return nil, fmt.Errorf("ncl: a field is not a value, attach it to a record")
	}
	return term.FromGo(v)
}

func mustTerm(v any) term.Term {
	t, err := toTerm(v)
	if err != nil {
		panic(fmt.Sprintf("ncl: %v", err))
	}
	return t
}
