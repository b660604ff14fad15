// FILE: lixenwraith/ncl/term/doc.go

// Package term is the tree representation produced by the ncl record builder.
//
// A tree is made of Term nodes: scalar leaves (Null, Bool, Num, Str), arrays,
// records (*RecordData) and deferred merges (Merge). Record fields carry a
// Field value: an optional value plus FieldMetadata (documentation,
// optionality, export visibility, merge priority, type and contract
// annotations).
//
// BuildRecord is the record-construction primitive. It accepts an ordered list
// of (key, field) pairs and reconciles repeated keys: record literals are merged
// field by field, anything else is kept as a Merge node in attachment order and
// left to the evaluator.
//
// Emitters turn a finished tree into Nickel source (Pretty), HCL (WriteHCL),
// YAML (WriteYAML), TOML (WriteTOML), JSON (WriteJSON), plain Go values (ToGo)
// or cty values (ToCty). Data emitters resolve Merge nodes statically using
// merge priorities and fail with ErrMergeConflict when two definitions of the
// same priority disagree.
//
// Positions: every Ident carries a Pos. The builder has no source text, so it
// uses FakePos, a single placeholder registered once in Sources. It carries no
// diagnostic meaning.
package term
