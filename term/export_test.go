// FILE: lixenwraith/ncl/term/export_test.go
package term

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestToGo(t *testing.T) {
	t.Run("Record", func(t *testing.T) {
		r := BuildRecord([]Pair{
			{Key: ident("name"), Field: FieldOf(Str("web"))},
			{Key: ident("port"), Field: FieldOf(Num(8080))},
			{Key: ident("ratio"), Field: FieldOf(Num(0.25))},
			{Key: ident("tags"), Field: FieldOf(Array{Str("a"), Null{}})},
			{Key: ident("secret"), Field: Field{Value: Str("x"), Metadata: FieldMetadata{NotExported: true}}},
			{Key: ident("declared"), Field: Field{Metadata: FieldMetadata{Opt: true}}},
		}, RecordAttrs{})

		got, err := ToGo(r)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name":  "web",
			"port":  int64(8080),
			"ratio": 0.25,
			"tags":  []any{"a", nil},
		}, got)
	})

	t.Run("PriorityResolution", func(t *testing.T) {
		tests := []struct {
			name        string
			left, right Field
			want        any
		}{
			{"LeftHigher",
				Field{Value: Num(1), Metadata: FieldMetadata{Priority: PriorityTop}},
				FieldOf(Num(2)), int64(1)},
			{"RightHigher",
				Field{Value: Num(1), Metadata: FieldMetadata{Priority: PriorityBottom}},
				FieldOf(Num(2)), int64(2)},
			{"Numerals",
				Field{Value: Str("low"), Metadata: FieldMetadata{Priority: Numeral(1)}},
				Field{Value: Str("high"), Metadata: FieldMetadata{Priority: Numeral(2)}}, "high"},
			{"EqualValues", FieldOf(Bool(true)), FieldOf(Bool(true)), true},
			{"MissingSide", Field{}, FieldOf(Str("only")), "only"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := BuildRecord([]Pair{{Key: ident("v"), Field: tt.left}, {Key: ident("v"), Field: tt.right}}, RecordAttrs{})
				got, err := ToGo(r)
				require.NoError(t, err)
				assert.Equal(t, map[string]any{"v": tt.want}, got)
			})
		}
	})

	t.Run("MergeOfRecordsAfterScalar", func(t *testing.T) {
		low := Field{Value: Str("placeholder"), Metadata: FieldMetadata{Priority: PriorityBottom}}
		nested := Merge{Left: low, Right: FieldOf(Str("real"))}
		r := rec(entry("outer", FieldOf(rec(entry("inner", FieldOf(nested))))))

		got, err := ToGo(r)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"outer": map[string]any{"inner": "real"}}, got)
	})

	t.Run("Conflict", func(t *testing.T) {
		r := BuildRecord([]Pair{
			{Key: ident("a"), Field: FieldOf(Singleton(ident("b"), FieldOf(Str("one"))))},
			{Key: ident("a"), Field: FieldOf(Singleton(ident("b"), FieldOf(Str("two"))))},
		}, RecordAttrs{})

		_, err := ToGo(r)
		require.ErrorIs(t, err, ErrMergeConflict)
		assert.Contains(t, err.Error(), "field a")
		assert.Contains(t, err.Error(), "field b")
	})

	t.Run("Scalar", func(t *testing.T) {
		got, err := ToGo(Num(-3))
		require.NoError(t, err)
		assert.Equal(t, int64(-3), got)
	})

	t.Run("IntegerRange", func(t *testing.T) {
		tests := []struct {
			name string
			in   Num
			want any
		}{
			{"MinInt64", Num(math.MinInt64), int64(math.MinInt64)},
			{"LargestBelowTwoTo63", Num(1<<63 - 1024), int64(1<<63 - 1024)},
			{"TwoTo63", Num(1 << 63), float64(1 << 63)},
			{"BelowMinInt64", Num(-(1 << 64)), float64(-(1 << 64))},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ToGo(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})
}

func TestToCty(t *testing.T) {
	r := BuildRecord([]Pair{
		{Key: ident("name"), Field: FieldOf(Str("web"))},
		{Key: ident("port"), Field: FieldOf(Num(8080))},
		{Key: ident("list"), Field: FieldOf(Array{Num(1.5), Bool(false)})},
		{Key: ident("empty"), Field: FieldOf(&RecordData{})},
		{Key: ident("none"), Field: FieldOf(Array{})},
		{Key: ident("null"), Field: FieldOf(Null{})},
	}, RecordAttrs{})

	got, err := ToCty(r)
	require.NoError(t, err)

	want := cty.ObjectVal(map[string]cty.Value{
		"name":  cty.StringVal("web"),
		"port":  cty.NumberIntVal(8080),
		"list":  cty.TupleVal([]cty.Value{cty.NumberFloatVal(1.5), cty.False}),
		"empty": cty.EmptyObjectVal,
		"none":  cty.EmptyTupleVal,
		"null":  cty.NullVal(cty.DynamicPseudoType),
	})
	assert.True(t, want.RawEquals(got), "want %#v, got %#v", want, got)

	t.Run("TwoTo63", func(t *testing.T) {
		got, err := ToCty(Num(1 << 63))
		require.NoError(t, err)
		assert.Equal(t, cty.Number, got.Type())
		assert.Equal(t, 1, got.AsBigFloat().Sign())
	})

	t.Run("NonFinite", func(t *testing.T) {
		for _, n := range []Num{Num(math.NaN()), Num(math.Inf(1)), Num(math.Inf(-1))} {
			_, err := ToCty(n)
			assert.ErrorIs(t, err, ErrUnsupportedValue)
		}
	})
}
