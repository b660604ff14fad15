// FILE: lixenwraith/ncl/term/field.go
package term

import "slices"

// TypeAnnotation holds the declared type of a field and its contracts.
type TypeAnnotation struct {
	Typ       *Type
	Contracts []Type
}

// IsEmpty reports whether the annotation declares nothing.
func (a TypeAnnotation) IsEmpty() bool {
	return a.Typ == nil && len(a.Contracts) == 0
}

// FieldMetadata is the metadata attached to a record field.
type FieldMetadata struct {
	Doc         string
	Opt         bool
	NotExported bool
	Priority    MergePriority
	Annotation  TypeAnnotation
}

// IsEmpty reports whether every attribute holds its default.
func (m FieldMetadata) IsEmpty() bool {
	return m.Doc == "" && !m.Opt && !m.NotExported && m.Priority.IsDefault() && m.Annotation.IsEmpty()
}

// Clone returns a copy that shares no memory with m.
func (m FieldMetadata) Clone() FieldMetadata {
	if m.Annotation.Typ != nil {
		t := m.Annotation.Typ.Clone()
		m.Annotation.Typ = &t
	}
	if m.Annotation.Contracts != nil {
		cs := make([]Type, len(m.Annotation.Contracts))
		for i, c := range m.Annotation.Contracts {
			cs[i] = c.Clone()
		}
		m.Annotation.Contracts = cs
	}
	return m
}

// combineMetadata folds the metadata of a later definition into an earlier one.
func combineMetadata(a, b FieldMetadata) FieldMetadata {
	out := a.Clone()
	if out.Doc == "" {
		out.Doc = b.Doc
	}
	out.Opt = a.Opt && b.Opt
	out.NotExported = a.NotExported || b.NotExported
	if b.Priority.Compare(a.Priority) > 0 {
		out.Priority = b.Priority
	}
	if out.Annotation.Typ == nil && b.Annotation.Typ != nil {
		t := b.Annotation.Typ.Clone()
		out.Annotation.Typ = &t
	}
	for _, c := range b.Annotation.Contracts {
		out.Annotation.Contracts = append(out.Annotation.Contracts, c.Clone())
	}
	return out
}

func metadataEqual(a, b FieldMetadata) bool {
	if a.Doc != b.Doc || a.Opt != b.Opt || a.NotExported != b.NotExported || a.Priority != b.Priority {
		return false
	}
	if (a.Annotation.Typ == nil) != (b.Annotation.Typ == nil) {
		return false
	}
	if a.Annotation.Typ != nil && !a.Annotation.Typ.Equal(*b.Annotation.Typ) {
		return false
	}
	return slices.EqualFunc(a.Annotation.Contracts, b.Annotation.Contracts, Type.Equal)
}

// Field is the content of a record field: an optional value and its metadata.
// A nil Value means the field is declared without a definition.
type Field struct {
	Value    Term
	Metadata FieldMetadata
}

// FieldOf wraps a value in a field with default metadata.
func FieldOf(v Term) Field {
	return Field{Value: v}
}

// HasValue reports whether the field is defined.
func (f Field) HasValue() bool {
	return f.Value != nil
}

// FieldEqual reports whether two fields hold equal values and metadata.
func FieldEqual(a, b Field) bool {
	return Equal(a.Value, b.Value) && metadataEqual(a.Metadata, b.Metadata)
}
