// FILE: lixenwraith/ncl/term/convert.go
package term

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/zclconf/go-cty/cty"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// FromGo converts a Go value into a term. Supported are nil, booleans,
// numbers, strings, json.Number, time.Duration, encoding.TextMarshaler
// implementations (rendered as strings), cty.Value, Term, slices, arrays and
// maps with string keys. Maps become closed records with fields sorted by key.
// NaN and infinite floats are rejected with ErrUnsupportedValue.
func FromGo(v any) (Term, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Term:
		return x, nil
	case cty.Value:
		return FromCty(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrUnsupportedValue, x.String(), err)
		}
		return finiteNum(f)
	case time.Duration:
		return Str(x.String()), nil
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %w", ErrUnsupportedValue, v, err)
		}
		return Str(text), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Term, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null{}, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Num(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Num(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return finiteNum(rv.Float())
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Array{}, nil
		}
		arr := make(Array, rv.Len())
		for i := range arr {
			t, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = t
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupportedValue, rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		pairs := make([]Pair, 0, len(keys))
		for _, k := range keys {
			t, err := FromGo(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if k == "" {
				return nil, fmt.Errorf("%w: empty map key", ErrInvalidIdentifier)
			}
			pairs = append(pairs, Pair{Key: NewIdentWithPos(k, FakePos()), Field: FieldOf(t)})
		}
		return BuildRecord(pairs, RecordAttrs{}), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
}

// finiteNum rejects NaN and infinities, which have no literal form.
func finiteNum(f float64) (Term, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: non-finite number %v", ErrUnsupportedValue, f)
	}
	return Num(f), nil
}

// FromCty converts a known cty value into a term. Objects and maps become
// records with attributes in cty's iteration order (sorted by name); lists,
// sets and tuples become arrays. Marks are dropped.
func FromCty(v cty.Value) (Term, error) {
	v, _ = v.Unmark()
	if !v.IsKnown() {
		return nil, fmt.Errorf("%w: unknown value of type %s", ErrUnsupportedValue, v.Type().FriendlyName())
	}
	if v.IsNull() {
		return Null{}, nil
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return Str(v.AsString()), nil
	case ty.Equals(cty.Number):
		f, _ := v.AsBigFloat().Float64()
		return finiteNum(f)
	case ty.Equals(cty.Bool):
		return Bool(v.True()), nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		arr := Array{}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			t, err := FromCty(ev)
			if err != nil {
				return nil, err
			}
			arr = append(arr, t)
		}
		return arr, nil
	case ty.IsMapType() || ty.IsObjectType():
		var pairs []Pair
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			t, err := FromCty(ev)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", k.AsString(), err)
			}
			pairs = append(pairs, Pair{Key: NewIdentWithPos(k.AsString(), FakePos()), Field: FieldOf(t)})
		}
		return BuildRecord(pairs, RecordAttrs{}), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, ty.FriendlyName())
}
