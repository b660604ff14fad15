// FILE: lixenwraith/ncl/term/record.go
package term

import "slices"

// RecordAttrs are record-level attributes.
type RecordAttrs struct {
	// Open marks the record as accepting fields beyond the declared ones.
	Open bool
}

// Combine returns the attributes of the merge of two records.
func (a RecordAttrs) Combine(o RecordAttrs) RecordAttrs {
	return RecordAttrs{Open: a.Open || o.Open}
}

// Entry is a named field of a record.
type Entry struct {
	Name  Ident
	Field Field
}

// RecordData is a record literal. Field names are unique and kept in
// definition order.
type RecordData struct {
	Fields []Entry
	Attrs  RecordAttrs
}

func (*RecordData) Kind() Kind { return KindRecord }

// Singleton returns the closed record with a single field.
func Singleton(name Ident, f Field) *RecordData {
	return &RecordData{Fields: []Entry{{Name: name, Field: f}}}
}

// Len returns the number of fields.
func (r *RecordData) Len() int {
	return len(r.Fields)
}

// Names returns the field names in definition order.
func (r *RecordData) Names() []string {
	names := make([]string, len(r.Fields))
	for i, e := range r.Fields {
		names[i] = e.Name.Name
	}
	return names
}

// Lookup returns the field called name.
func (r *RecordData) Lookup(name string) (Field, bool) {
	if i := r.index(name); i >= 0 {
		return r.Fields[i].Field, true
	}
	return Field{}, false
}

func (r *RecordData) index(name string) int {
	return slices.IndexFunc(r.Fields, func(e Entry) bool { return e.Name.Name == name })
}

// insert adds a field, merging it into an existing definition of the same name.
func (r *RecordData) insert(name Ident, f Field) {
	if i := r.index(name.Name); i >= 0 {
		r.Fields[i].Field = MergeFields(r.Fields[i].Field, f)
		return
	}
	r.Fields = append(r.Fields, Entry{Name: name, Field: f})
}

// Pair is a top-level key and the field content to place under it.
type Pair struct {
	Key   Ident
	Field Field
}

// BuildRecord constructs a record from an ordered list of pairs. Pairs sharing
// a key are merged in order with MergeFields, so later pairs extend or
// override earlier ones according to the merge rules.
func BuildRecord(pairs []Pair, attrs RecordAttrs) *RecordData {
	r := &RecordData{Fields: make([]Entry, 0, len(pairs)), Attrs: attrs}
	for _, p := range pairs {
		r.insert(p.Key, p.Field)
	}
	return r
}

// MergeFields combines two definitions of the same field, a before b.
// Two record literals merge field by field. A definition without a value
// contributes only metadata. Any other pair of values becomes a Merge node.
func MergeFields(a, b Field) Field {
	md := combineMetadata(a.Metadata, b.Metadata)

	switch {
	case a.Value == nil:
		return Field{Value: b.Value, Metadata: md}
	case b.Value == nil:
		return Field{Value: a.Value, Metadata: md}
	}

	ra, okA := a.Value.(*RecordData)
	rb, okB := b.Value.(*RecordData)
	if okA && okB {
		return Field{Value: mergeRecords(ra, rb), Metadata: md}
	}
	return Field{Value: Merge{Left: a, Right: b}, Metadata: md}
}

// mergeRecords merges b into a copy of a. Neither input is modified.
func mergeRecords(a, b *RecordData) *RecordData {
	out := &RecordData{
		Fields: slices.Clone(a.Fields),
		Attrs:  a.Attrs.Combine(b.Attrs),
	}
	for _, e := range b.Fields {
		out.insert(e.Name, e.Field)
	}
	return out
}
