// FILE: lixenwraith/ncl/path_test.go
package ncl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ncl/term"
)

// treeOpts compares trees structurally; identifiers compare by name.
var treeOpts = cmp.Options{
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreFields(term.Ident{}, "Pos"),
}

func ident(name string) term.Ident {
	return term.NewIdentWithPos(name, term.FakePos())
}

func nest(name string, f term.Field) term.Field {
	return term.FieldOf(term.Singleton(ident(name), f))
}

func TestPath(t *testing.T) {
	t.Run("Segments", func(t *testing.T) {
		p := NewPath("terraform", "required_providers", "aws")
		assert.Equal(t, "terraform", p.Head())
		assert.Equal(t, []string{"required_providers", "aws"}, p.Tail())
		assert.Equal(t, 3, p.Len())
		assert.Equal(t, "terraform.required_providers.aws", p.String())
		assert.False(t, p.IsZero())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var p Path
		assert.True(t, p.IsZero())
		assert.Equal(t, 0, p.Len())
		assert.Nil(t, p.Segments())
	})

	t.Run("EmptySegmentPanics", func(t *testing.T) {
		assert.Panics(t, func() { NewPath("") })
		assert.Panics(t, func() { NewPath("a", "") })
	})

	t.Run("Parse", func(t *testing.T) {
		p, err := ParsePath("server.tls.cert")
		require.NoError(t, err)
		assert.Equal(t, []string{"server", "tls", "cert"}, p.Segments())

		for _, bad := range []string{"", ".", "a..b", "a.", ".a"} {
			_, err := ParsePath(bad)
			assert.ErrorIs(t, err, ErrInvalidPath, bad)
		}
		assert.Panics(t, func() { MustParsePath("a..b") })
	})

	t.Run("AppendDoesNotAlias", func(t *testing.T) {
		base := NewPath("a", "b")
		x := base.Append("x")
		y := base.Append("y")
		assert.Equal(t, "a.b.x", x.String())
		assert.Equal(t, "a.b.y", y.String())
		assert.Equal(t, "a.b", base.String())
	})

	t.Run("IdentifiersUsePlaceholderPosition", func(t *testing.T) {
		p := NewPath("a", "b")
		key, content := Elaborate(p, term.FieldOf(term.Num(1)))
		assert.Equal(t, term.FakePos(), key.Pos)
		inner := content.Value.(*term.RecordData)
		assert.Equal(t, term.FakePos(), inner.Fields[0].Name.Pos)
	})
}

func TestElaborate(t *testing.T) {
	leaf := term.Field{
		Value:    term.Str("hello"),
		Metadata: term.FieldMetadata{Doc: "leaf", Opt: true},
	}

	t.Run("SingleSegmentIsIdentity", func(t *testing.T) {
		key, content := Elaborate(NewPath("foo"), leaf)
		assert.Equal(t, "foo", key.Name)
		assert.Empty(t, cmp.Diff(leaf, content, treeOpts))
	})

	t.Run("NestsTailRightToLeft", func(t *testing.T) {
		key, content := Elaborate(NewPath("k0", "k1", "k2", "k3"), leaf)
		assert.Equal(t, "k0", key.Name)

		want := nest("k1", nest("k2", nest("k3", leaf)))
		assert.Empty(t, cmp.Diff(want, content, treeOpts))
	})

	t.Run("DepthIsLengthMinusOne", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			segments := make([]string, n)
			for i := range segments {
				segments[i] = string(rune('a' + i))
			}
			_, content := Elaborate(NewPath(segments[0], segments[1:]...), leaf)

			depth := 0
			innermost := ""
			for {
				r, ok := content.Value.(*term.RecordData)
				if !ok || content.Metadata.Doc == "leaf" {
					break
				}
				require.Equal(t, 1, r.Len())
				assert.False(t, r.Attrs.Open)
				assert.True(t, content.Metadata.IsEmpty())
				innermost = r.Fields[0].Name.Name
				content = r.Fields[0].Field
				depth++
			}
			assert.Equal(t, n-1, depth)
			if n > 1 {
				assert.Equal(t, segments[n-1], innermost)
			}
			assert.Empty(t, cmp.Diff(leaf, content, treeOpts))
		}
	})

	t.Run("NoValueContent", func(t *testing.T) {
		content := term.Field{Metadata: term.FieldMetadata{Opt: true}}
		key, got := Elaborate(NewPath("a", "b"), content)
		assert.Equal(t, "a", key.Name)
		assert.Empty(t, cmp.Diff(nest("b", content), got, treeOpts))
	})

	t.Run("ZeroPathPanics", func(t *testing.T) {
		assert.Panics(t, func() { Elaborate(Path{}, leaf) })
	})
}
