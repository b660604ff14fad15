// FILE: lixenwraith/ncl/term/emit_test.go
package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// sample is a record with a nested table, a documented field, a hidden field
// and a field resolved by priority.
func sample() *RecordData {
	return BuildRecord([]Pair{
		{Key: ident("name"), Field: Field{Value: Str("web"), Metadata: FieldMetadata{Doc: "Server name"}}},
		{Key: ident("server"), Field: FieldOf(Singleton(ident("port"), Field{Value: Num(80), Metadata: FieldMetadata{Priority: PriorityBottom}}))},
		{Key: ident("server"), Field: FieldOf(Singleton(ident("port"), FieldOf(Num(8080))))},
		{Key: ident("server"), Field: FieldOf(Singleton(ident("tags"), FieldOf(Array{Str("a"), Str("b")})))},
		{Key: ident("hidden"), Field: Field{Value: Str("x"), Metadata: FieldMetadata{NotExported: true}}},
	}, RecordAttrs{})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))

	want := `{
  "name": "web",
  "server": {
    "port": 8080,
    "tags": [
      "a",
      "b"
    ]
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	r := sample()
	r.Fields = append(r.Fields, entry("nothing", FieldOf(Null{})))
	require.NoError(t, WriteTOML(&buf, r))

	var back map[string]any
	_, err := toml.Decode(buf.String(), &back)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name": "web",
		"server": map[string]any{
			"port": int64(8080),
			"tags": []any{"a", "b"},
		},
	}, back)

	t.Run("NullsInArrays", func(t *testing.T) {
		var buf bytes.Buffer
		r := rec(
			entry("ports", FieldOf(Array{Num(1), Null{}, Num(2)})),
			entry("hosts", FieldOf(Array{
				rec(entry("name", FieldOf(Str("a"))), entry("alias", FieldOf(Null{}))),
				Null{},
			})),
		)
		require.NoError(t, WriteTOML(&buf, r))

		var back map[string]any
		_, err := toml.Decode(buf.String(), &back)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"ports": []any{int64(1), int64(2)},
			"hosts": []map[string]any{{"name": "a"}},
		}, back)
	})

	t.Run("NotRecord", func(t *testing.T) {
		err := WriteTOML(&bytes.Buffer{}, Str("x"))
		assert.ErrorIs(t, err, ErrNotRecord)
	})
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sample()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Server name\nname: web\n"), out)
	assert.Less(t, strings.Index(out, "name:"), strings.Index(out, "server:"), "field order is kept")
	assert.NotContains(t, out, "hidden")

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, map[string]any{
		"name": "web",
		"server": map[string]any{
			"port": 8080,
			"tags": []any{"a", "b"},
		},
	}, back)
}

func TestWriteHCL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHCL(&buf, sample()))
	out := buf.String()

	assert.Contains(t, out, "# Server name\n")
	assert.Contains(t, out, `name = "web"`)
	assert.Contains(t, out, "server {")
	assert.NotContains(t, out, "hidden")

	file, diags := hclsyntax.ParseConfig(buf.Bytes(), "out.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())

	body := file.Body.(*hclsyntax.Body)
	require.Len(t, body.Blocks, 1)
	assert.Equal(t, "server", body.Blocks[0].Type)

	port, diags := body.Blocks[0].Body.Attributes["port"].Expr.Value(nil)
	require.False(t, diags.HasErrors())
	p, _ := port.AsBigFloat().Int64()
	assert.Equal(t, int64(8080), p)

	t.Run("InvalidIdentifier", func(t *testing.T) {
		r := BuildRecord([]Pair{{Key: ident("my key"), Field: FieldOf(Num(1))}}, RecordAttrs{})
		err := WriteHCL(&bytes.Buffer{}, r)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("Conflict", func(t *testing.T) {
		r := BuildRecord([]Pair{{Key: ident("a"), Field: FieldOf(Num(1))}, {Key: ident("a"), Field: FieldOf(Num(2))}}, RecordAttrs{})
		err := WriteHCL(&bytes.Buffer{}, r)
		assert.ErrorIs(t, err, ErrMergeConflict)
	})
}
