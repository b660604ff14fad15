// FILE: lixenwraith/ncl/io_test.go
package ncl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ncl/term"
)

func sampleRecord() term.Term {
	return NewRecord().
		Field("name").Doc("Service name").Value(term.Str("web")).
		Path("server", "port").Priority(term.PriorityBottom).Value(term.Num(80)).
		Path("server", "port").Value(term.Num(8080)).
		Path("server", "token").NotExported().Value(term.Str("secret")).
		Build()
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"nickel": FormatNickel,
		"ncl":    FormatNickel,
		".ncl":   FormatNickel,
		"HCL":    FormatHCL,
		"tf":     FormatHCL,
		"yml":    FormatYAML,
		"yaml":   FormatYAML,
		"tml":    FormatTOML,
		"toml":   FormatTOML,
		"json":   FormatJSON,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	f, err := FormatFromPath("out/main.ncl")
	require.NoError(t, err)
	assert.Equal(t, FormatNickel, f)

	_, err = FormatFromPath("Makefile")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWrite(t *testing.T) {
	t.Run("Nickel", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleRecord(), FormatNickel))

		want := `{
  name | doc "Service name" = "web",
  server = {
    port | default = 80,
    port = 8080,
    token | not_exported = "secret",
  },
}
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := Marshal(sampleRecord(), FormatJSON)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "web", "server": {"port": 8080}}`, string(data))
	})

	t.Run("HCL", func(t *testing.T) {
		data, err := Marshal(sampleRecord(), FormatHCL)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Service name\n")
		assert.Contains(t, string(data), `name = "web"`)
		assert.Contains(t, string(data), "server {")
		assert.NotContains(t, string(data), "secret")
	})

	t.Run("Unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, sampleRecord(), Format("xml"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("ConflictIsReported", func(t *testing.T) {
		conflict := NewRecord().
			Field("x").Value(term.Num(1)).
			Field("x").Value(term.Num(2)).
			Build()
		_, err := Marshal(conflict, FormatJSON)
		assert.ErrorIs(t, err, term.ErrMergeConflict)

		// Nickel source keeps both definitions for the evaluator.
		_, err = Marshal(conflict, FormatNickel)
		assert.NoError(t, err)
	})
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"out.json", "out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "nested", name)
			require.NoError(t, Save(path, sampleRecord(), ""))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			r, err := LoadFile(path)
			require.NoError(t, err)
			v, err := term.ToGo(r.Build())
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"name":   "web",
				"server": map[string]any{"port": int64(8080)},
			}, v)
		})
	}

	t.Run("ExplicitFormat", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.out")
		require.NoError(t, Save(path, sampleRecord(), FormatNickel))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "port | default = 80,")
	})

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		dir := filepath.Join(tmpDir, "clean")
		require.NoError(t, Save(filepath.Join(dir, "a.json"), sampleRecord(), ""))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.json", entries[0].Name())
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		err := Save(filepath.Join(tmpDir, "x.bin"), sampleRecord(), "")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
