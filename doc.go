// FILE: lixenwraith/ncl/doc.go

// Package ncl builds Nickel record terms from dotted field paths.
//
// Fields are described with a fluent builder and attached to a record in
// order. A field at a path such as terraform.required_providers.aws is
// rewritten into nested single-field records under the top-level key
// terraform, and term.BuildRecord merges every definition sharing a key.
//
// Quick Start:
//
//	r := ncl.NewRecord()
//	r.Path("terraform", "required_providers", "aws").
//	    Doc("AWS provider").
//	    Value(term.Str("hashicorp/aws"))
//	r.Path("terraform", "backend").
//	    Priority(term.PriorityBottom).
//	    Value(term.Str("local"))
//
//	t := r.Build()
//	fmt.Print(term.Print(t))
//
// Fields move through three phases, each with its own type: Field before the
// value is decided, CompleteField after, and RecordField while scoped to a
// record. Deciding a value twice, or attaching a field whose value was never
// decided, does not compile.
//
// Records can also be built from maps (FromMap), tagged structs (FromStruct)
// and TOML, JSON or YAML files (LoadFile), written as Nickel, HCL, YAML, TOML
// or JSON (Write, Save), and decoded back into structs (Decode).
//
// A Record is spent once built. Builders are not safe for concurrent use.
package ncl
