// FILE: lixenwraith/ncl/term/pretty.go
package term

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const indentUnit = "  "

var identRe = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9'-]*$`)

// quoteIdent renders a field name, quoting it when it is not a bare identifier.
func quoteIdent(name string) string {
	if identRe.MatchString(name) {
		return name
	}
	return quoteString(name)
}

// quoteString renders a Nickel string literal. Control and other
// non-printable characters use the \u{..} escape; "%{" is escaped so it does
// not open an interpolation.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '%' && strings.HasPrefix(s[i+1:], "{"):
			b.WriteString(`\%`)
		case r == utf8.RuneError || !unicode.IsPrint(r):
			fmt.Fprintf(&b, `\u{%x}`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Print renders t as Nickel source.
func Print(t Term) string {
	var p printer
	p.term(t, 0)
	return p.b.String()
}

// Pretty writes t as Nickel source to w, followed by a newline.
func Pretty(w io.Writer, t Term) error {
	_, err := io.WriteString(w, Print(t)+"\n")
	return err
}

type printer struct {
	b strings.Builder
}

func (p *printer) indent(depth int) {
	p.b.WriteString(strings.Repeat(indentUnit, depth))
}

func (p *printer) term(t Term, depth int) {
	switch x := t.(type) {
	case nil, Null:
		p.b.WriteString("null")
	case Bool:
		p.b.WriteString(strconv.FormatBool(bool(x)))
	case Num:
		p.b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 64))
	case Str:
		p.b.WriteString(quoteString(string(x)))
	case Array:
		p.b.WriteByte('[')
		for i, el := range x {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.term(el, depth)
		}
		p.b.WriteByte(']')
	case *RecordData:
		p.record(x, depth)
	case Merge:
		p.b.WriteByte('(')
		p.term(x.Left.Value, depth)
		p.b.WriteString(") & (")
		p.term(x.Right.Value, depth)
		p.b.WriteByte(')')
	}
}

func (p *printer) record(r *RecordData, depth int) {
	if len(r.Fields) == 0 {
		if r.Attrs.Open {
			p.b.WriteString("{ .. }")
		} else {
			p.b.WriteString("{}")
		}
		return
	}

	p.b.WriteString("{\n")
	for _, e := range r.Fields {
		for _, def := range definitions(e.Field) {
			p.field(e.Name.Name, def, depth+1)
		}
	}
	if r.Attrs.Open {
		p.indent(depth + 1)
		p.b.WriteString("..\n")
	}
	p.indent(depth)
	p.b.WriteByte('}')
}

// definitions splits a merged field back into the piecewise definitions it
// was built from, so each keeps its own metadata.
func definitions(f Field) []Field {
	m, ok := f.Value.(Merge)
	if !ok {
		return []Field{f}
	}
	return append(definitions(m.Left), definitions(m.Right)...)
}

func (p *printer) field(name string, f Field, depth int) {
	md := f.Metadata

	p.indent(depth)
	p.b.WriteString(quoteIdent(name))
	if md.Annotation.Typ != nil {
		p.b.WriteString(" : ")
		p.b.WriteString(md.Annotation.Typ.String())
	}
	for _, c := range md.Annotation.Contracts {
		p.b.WriteString(" | ")
		p.b.WriteString(c.String())
	}
	if md.Doc != "" {
		p.b.WriteString(" | doc ")
		p.b.WriteString(quoteString(md.Doc))
	}
	if md.Opt {
		p.b.WriteString(" | optional")
	}
	if md.NotExported {
		p.b.WriteString(" | not_exported")
	}
	switch {
	case md.Priority.Level == LevelBottom:
		p.b.WriteString(" | default")
	case md.Priority.Level == LevelTop:
		p.b.WriteString(" | force")
	case !md.Priority.IsDefault():
		p.b.WriteString(" | priority ")
		p.b.WriteString(strconv.FormatFloat(md.Priority.Value, 'g', -1, 64))
	}
	if f.HasValue() {
		p.b.WriteString(" = ")
		p.term(f.Value, depth)
	}
	p.b.WriteString(",\n")
}
