// FILE: lixenwraith/ncl/term/emit.go
package term

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"
)

// asRecord resolves t and requires a record.
func asRecord(t Term) (*RecordData, error) {
	t, err := resolve(t)
	if err != nil {
		return nil, err
	}
	r, ok := t.(*RecordData)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotRecord, kindOf(t))
	}
	return r, nil
}

func kindOf(t Term) string {
	if t == nil {
		return "nothing"
	}
	return t.Kind().String()
}

// WriteJSON writes the exported data of t as indented JSON.
func WriteJSON(w io.Writer, t Term) error {
	v, err := ToGo(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteTOML writes the exported data of t as TOML. TOML has no null, so null
// fields and null array elements are left out.
func WriteTOML(w io.Writer, t Term) error {
	if _, err := asRecord(t); err != nil {
		return err
	}
	v, err := ToGo(t)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(dropNulls(v.(map[string]any))); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}

// dropNulls removes null values from maps and arrays at any depth.
func dropNulls(m map[string]any) map[string]any {
	for k, v := range m {
		if v == nil {
			delete(m, k)
			continue
		}
		m[k] = dropNullsIn(v)
	}
	return m
}

func dropNullsIn(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return dropNulls(x)
	case []any:
		out := x[:0]
		for _, el := range x {
			if el != nil {
				out = append(out, dropNullsIn(el))
			}
		}
		return out
	}
	return v
}

// WriteYAML writes the exported data of t as YAML, keeping field order.
// Field documentation becomes a comment above the key.
func WriteYAML(w io.Writer, t Term) error {
	node, err := yamlNode(t)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func yamlNode(t Term) (*yaml.Node, error) {
	t, err := resolve(t)
	if err != nil {
		return nil, err
	}

	switch x := t.(type) {
	case nil, Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(x))}, nil
	case Num:
		if x.isInt() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(x), 10)}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(float64(x), 'g', -1, 64)}, nil
	case Str:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(x)}, nil
	case Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, el := range x {
			n, err := yamlNode(el)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case *RecordData:
		entries, err := exported(x)
		if err != nil {
			return nil, err
		}
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range entries {
			v, err := yamlNode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", e.Name, err)
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name, HeadComment: e.Doc}
			m.Content = append(m.Content, key, v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, t.Kind())
}

// WriteHCL writes the exported data of t in HCL native syntax. Nested records
// become blocks, other values attributes. Field documentation becomes line
// comments. Every field name must be a valid HCL identifier.
func WriteHCL(w io.Writer, t Term) error {
	r, err := asRecord(t)
	if err != nil {
		return err
	}

	f := hclwrite.NewEmptyFile()
	if err := writeBody(f.Body(), r); err != nil {
		return err
	}
	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write HCL: %w", err)
	}
	return nil
}

func writeBody(body *hclwrite.Body, r *RecordData) error {
	entries, err := exported(r)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !hclsyntax.ValidIdentifier(e.Name) {
			return fmt.Errorf("%w: %q is not an HCL identifier", ErrInvalidIdentifier, e.Name)
		}
		if e.Doc != "" {
			body.AppendUnstructuredTokens(commentTokens(e.Doc))
		}

		if sub, ok := e.Value.(*RecordData); ok {
			block := body.AppendNewBlock(e.Name, nil)
			if err := writeBody(block.Body(), sub); err != nil {
				return fmt.Errorf("block %s: %w", e.Name, err)
			}
			continue
		}

		v, err := ToCty(e.Value)
		if err != nil {
			return fmt.Errorf("attribute %s: %w", e.Name, err)
		}
		body.SetAttributeValue(e.Name, v)
	}
	return nil
}

func commentTokens(doc string) hclwrite.Tokens {
	var toks hclwrite.Tokens
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		toks = append(toks, &hclwrite.Token{
			Type:  hclsyntax.TokenComment,
			Bytes: []byte(strings.TrimRight("# "+line, " ") + "\n"),
		})
	}
	return toks
}
