// FILE: lixenwraith/ncl/term/term.go
package term

import "math"

// Kind identifies a term node type.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNum
	KindStr
	KindArray
	KindRecord
	KindMerge
)

var kindNames = [...]string{"null", "bool", "number", "string", "array", "record", "merge"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Term is a node of a configuration tree.
type Term interface {
	Kind() Kind
}

// Null is the null literal.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is a boolean literal.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Num is a number literal.
type Num float64

func (Num) Kind() Kind { return KindNum }

// isInt reports whether n holds an integer that fits an int64.
func (n Num) isInt() bool {
	f := float64(n)
	return f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63
}

// Str is a string literal.
type Str string

func (Str) Kind() Kind { return KindStr }

// Array is an array literal.
type Array []Term

func (Array) Kind() Kind { return KindArray }

// Merge is a merge of two definitions of the same field that could not be
// combined structurally. Left was attached first.
type Merge struct {
	Left  Field
	Right Field
}

func (Merge) Kind() Kind { return KindMerge }

// Equal reports whether two terms are structurally equal, including field
// metadata. Identifier positions are ignored.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *RecordData:
		y := b.(*RecordData)
		if x.Attrs != y.Attrs || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if !x.Fields[i].Name.Equal(y.Fields[i].Name) || !FieldEqual(x.Fields[i].Field, y.Fields[i].Field) {
				return false
			}
		}
		return true
	case Merge:
		y := b.(Merge)
		return FieldEqual(x.Left, y.Left) && FieldEqual(x.Right, y.Right)
	default:
		return a == b
	}
}
