// FILE: lixenwraith/ncl/term/types.go
package term

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// TypeKind identifies the shape of a Type.
type TypeKind int

const (
	TypeDyn TypeKind = iota
	TypeNumber
	TypeBool
	TypeString
	TypeArray
	TypeDict
	TypeRecord
	// TypeFlat is a named contract such as std.string.NonEmpty.
	TypeFlat
)

// Type is a type or contract expression used in field annotations.
type Type struct {
	Kind TypeKind
	// Elem is the element type of arrays and dictionaries.
	Elem *Type
	// Rows are the fields of a record type, in declaration order.
	Rows []TypeRow
	// Name is the contract expression of a flat type.
	Name string
}

// TypeRow is one field of a record type.
type TypeRow struct {
	Name string
	Type Type
}

var (
	DynType    = Type{Kind: TypeDyn}
	NumberType = Type{Kind: TypeNumber}
	BoolType   = Type{Kind: TypeBool}
	StringType = Type{Kind: TypeString}
)

// ArrayOf returns the array type with elements of type elem.
func ArrayOf(elem Type) Type {
	return Type{Kind: TypeArray, Elem: &elem}
}

// DictOf returns the dictionary type with values of type elem.
func DictOf(elem Type) Type {
	return Type{Kind: TypeDict, Elem: &elem}
}

// RecordType returns the record type with the given rows.
func RecordType(rows ...TypeRow) Type {
	return Type{Kind: TypeRecord, Rows: rows}
}

// Contract returns a flat type referring to the contract expression name.
func Contract(name string) Type {
	return Type{Kind: TypeFlat, Name: name}
}

// Clone returns a deep copy of t.
func (t Type) Clone() Type {
	if t.Elem != nil {
		e := t.Elem.Clone()
		t.Elem = &e
	}
	if t.Rows != nil {
		rows := make([]TypeRow, len(t.Rows))
		for i, r := range t.Rows {
			rows[i] = TypeRow{Name: r.Name, Type: r.Type.Clone()}
		}
		t.Rows = rows
	}
	return t
}

// Equal reports whether two types are structurally equal.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}
	if (t.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if t.Elem != nil && !t.Elem.Equal(*o.Elem) {
		return false
	}
	return slices.EqualFunc(t.Rows, o.Rows, func(a, b TypeRow) bool {
		return a.Name == b.Name && a.Type.Equal(b.Type)
	})
}

// String renders t in Nickel type syntax.
func (t Type) String() string {
	switch t.Kind {
	case TypeNumber:
		return "Number"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array " + t.elem().atom()
	case TypeDict:
		return "{ _ : " + t.elem().String() + " }"
	case TypeRecord:
		if len(t.Rows) == 0 {
			return "{}"
		}
		parts := make([]string, len(t.Rows))
		for i, r := range t.Rows {
			parts[i] = quoteIdent(r.Name) + " : " + r.Type.String()
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case TypeFlat:
		return t.Name
	default:
		return "Dyn"
	}
}

func (t Type) elem() Type {
	if t.Elem == nil {
		return DynType
	}
	return *t.Elem
}

// atom renders t so it can be used as a type constructor argument.
func (t Type) atom() string {
	if t.Kind == TypeArray {
		return "(" + t.String() + ")"
	}
	return t.String()
}

// TypeFromCty converts a cty type into an annotation type. Object attributes
// become record rows sorted by name; tuples become arrays of Dyn.
func TypeFromCty(ty cty.Type) (Type, error) {
	switch {
	case ty.Equals(cty.DynamicPseudoType):
		return DynType, nil
	case ty.Equals(cty.String):
		return StringType, nil
	case ty.Equals(cty.Number):
		return NumberType, nil
	case ty.Equals(cty.Bool):
		return BoolType, nil
	case ty.IsListType() || ty.IsSetType():
		elem, err := TypeFromCty(ty.ElementType())
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	case ty.IsMapType():
		elem, err := TypeFromCty(ty.ElementType())
		if err != nil {
			return Type{}, err
		}
		return DictOf(elem), nil
	case ty.IsTupleType():
		return ArrayOf(DynType), nil
	case ty.IsObjectType():
		attrs := ty.AttributeTypes()
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([]TypeRow, 0, len(names))
		for _, name := range names {
			rt, err := TypeFromCty(attrs[name])
			if err != nil {
				return Type{}, fmt.Errorf("attribute %q: %w", name, err)
			}
			rows = append(rows, TypeRow{Name: name, Type: rt})
		}
		return RecordType(rows...), nil
	}
	return Type{}, fmt.Errorf("%w: %s", ErrUnsupportedType, ty.FriendlyName())
}

// ParseType parses an HCL type constraint such as "map(list(string))" or
// "object({ name = string })". The keyword any maps to Dyn.
func ParseType(src string) (Type, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<type>", hcl.InitialPos)
	if diags.HasErrors() {
		return Type{}, fmt.Errorf("%w %q: %s", ErrInvalidType, src, diags.Error())
	}

	ty, diags := typeexpr.TypeConstraint(expr)
	if diags.HasErrors() {
		return Type{}, fmt.Errorf("%w %q: %s", ErrInvalidType, src, diags.Error())
	}
	return TypeFromCty(ty)
}
