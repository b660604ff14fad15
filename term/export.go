// FILE: lixenwraith/ncl/term/export.go
package term

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
)

// exportedEntry is a record field as seen by data emitters.
type exportedEntry struct {
	Name  string
	Doc   string
	Value Term
}

// exported returns the fields of r that carry a value and are exported, with
// top-level merges resolved.
func exported(r *RecordData) ([]exportedEntry, error) {
	out := make([]exportedEntry, 0, len(r.Fields))
	for _, e := range r.Fields {
		if e.Field.Metadata.NotExported || !e.Field.HasValue() {
			continue
		}
		v, err := resolve(e.Field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", e.Name.Name, err)
		}
		if v == nil {
			continue
		}
		out = append(out, exportedEntry{Name: e.Name.Name, Doc: e.Field.Metadata.Doc, Value: v})
	}
	return out, nil
}

// resolve reduces a Merge node to a single value. Records merge, otherwise the
// definition with the higher priority wins. Equal priorities must agree.
// A nil result means neither side is defined.
func resolve(t Term) (Term, error) {
	m, ok := t.(Merge)
	if !ok {
		return t, nil
	}

	l, err := resolve(m.Left.Value)
	if err != nil {
		return nil, err
	}
	r, err := resolve(m.Right.Value)
	if err != nil {
		return nil, err
	}
	switch {
	case l == nil:
		return r, nil
	case r == nil:
		return l, nil
	}

	rl, okL := l.(*RecordData)
	rr, okR := r.(*RecordData)
	if okL && okR {
		return mergeRecords(rl, rr), nil
	}

	switch m.Left.Metadata.Priority.Compare(m.Right.Metadata.Priority) {
	case 1:
		return l, nil
	case -1:
		return r, nil
	}
	if Equal(l, r) {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %s and %s at %s", ErrMergeConflict, l.Kind(), r.Kind(), m.Left.Metadata.Priority)
}

// ToGo converts t into plain Go values: map[string]any for records, []any for
// arrays, nil, bool, int64 for integral numbers, float64 and string.
// Fields without a value and not-exported fields are omitted.
func ToGo(t Term) (any, error) {
	t, err := resolve(t)
	if err != nil {
		return nil, err
	}

	switch x := t.(type) {
	case nil, Null:
		return nil, nil
	case Bool:
		return bool(x), nil
	case Num:
		if x.isInt() {
			return int64(x), nil
		}
		return float64(x), nil
	case Str:
		return string(x), nil
	case Array:
		out := make([]any, len(x))
		for i, el := range x {
			v, err := ToGo(el)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case *RecordData:
		entries, err := exported(x)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			v, err := ToGo(e.Value)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", e.Name, err)
			}
			out[e.Name] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, t.Kind())
}

// ToCty converts t into a cty value. Records become objects and arrays tuples.
func ToCty(t Term) (cty.Value, error) {
	t, err := resolve(t)
	if err != nil {
		return cty.NilVal, err
	}

	switch x := t.(type) {
	case nil, Null:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case Bool:
		return cty.BoolVal(bool(x)), nil
	case Num:
		if x.isInt() {
			return cty.NumberIntVal(int64(x)), nil
		}
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return cty.NilVal, fmt.Errorf("%w: non-finite number %v", ErrUnsupportedValue, float64(x))
		}
		return cty.NumberFloatVal(float64(x)), nil
	case Str:
		return cty.StringVal(string(x)), nil
	case Array:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(x))
		for i, el := range x {
			v, err := ToCty(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = v
		}
		return cty.TupleVal(vals), nil
	case *RecordData:
		entries, err := exported(x)
		if err != nil {
			return cty.NilVal, err
		}
		if len(entries) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(entries))
		for _, e := range entries {
			v, err := ToCty(e.Value)
			if err != nil {
				return cty.NilVal, fmt.Errorf("field %s: %w", e.Name, err)
			}
			attrs[e.Name] = v
		}
		return cty.ObjectVal(attrs), nil
	}
	return cty.NilVal, fmt.Errorf("%w: %s", ErrUnsupportedValue, t.Kind())
}
