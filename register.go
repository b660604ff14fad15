// FILE: lixenwraith/ncl/register.go
package ncl

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/ncl/term"
)

// StructOptions controls how FromStruct reads struct tags.
type StructOptions struct {
	// TagName names the tag holding the field key, as in `toml:"port"`.
	TagName string
	// DocTag names the tag holding field documentation.
	DocTag string
	// MetaTag names the tag holding field metadata:
	// `ncl:"optional,not_exported,priority=top,type=list(string)"`.
	MetaTag string
	// Priority is applied to every field that does not set its own.
	Priority term.MergePriority
	// Prefix is prepended to every field path.
	Prefix []string
}

// DefaultStructOptions returns the options used by FromStruct.
func DefaultStructOptions() StructOptions {
	return StructOptions{
		TagName: "toml",
		DocTag:  "doc",
		MetaTag: "ncl",
	}
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// FromStruct builds a record from the exported fields of a struct, using the
// field values as field values. Nested structs become nested records.
func FromStruct(v any) (*Record, error) {
	return FromStructWithOptions(v, DefaultStructOptions())
}

// FromStructWithOptions is FromStruct with explicit tag names and defaults.
func FromStructWithOptions(v any, opts StructOptions) (*Record, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil pointer", ErrNotStruct)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrNotStruct, v)
	}
	if opts.TagName == "" {
		opts.TagName = "toml"
	}

	r := NewRecord()
	var errs []string
	registerFields(r, rv, opts, opts.Prefix, "", &errs)
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to register %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return r, nil
}

// registerFields attaches the fields of struct v under prefix. Errors are
// collected so that one bad field does not hide the others.
func registerFields(r *Record, v reflect.Value, opts StructOptions, prefix []string, fieldPath string, errs *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(opts.TagName)
		if tag == "-" {
			continue
		}
		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}
		where := fieldPath + field.Name

		if !isValidKeySegment(key) {
			*errs = append(*errs, fmt.Sprintf("field %s: %v: key %q", where, ErrInvalidPath, key))
			continue
		}

		f, err := fieldFromTags(field, opts)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("field %s: %v", where, err))
			continue
		}
		path := append(append([]string(nil), prefix...), key)
		f = f.rebase(NewPath(path[0], path[1:]...))

		// Nested structs become a record value so the field keeps its own metadata.
		nested, ok := structValue(fieldValue)
		if ok {
			if nested.IsValid() {
				sub := NewRecord()
				registerFields(sub, nested, opts, nil, where+".", errs)
				f.Value(sub.Build()).WithRecord(r)
			}
			continue
		}

		value, err := term.FromGo(fieldValue.Interface())
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("field %s (path %s): %v", where, strings.Join(path, "."), err))
			continue
		}
		f.Value(value).WithRecord(r)
	}
}

// structValue reports whether v is a struct or pointer to struct that should
// be walked field by field. A nil pointer yields an invalid value. Types with
// their own text form, such as time.Time, are leaves.
func structValue(v reflect.Value) (reflect.Value, bool) {
	t := v.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return reflect.Value{}, false
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, true
		}
		return v.Elem(), true
	}
	return v, true
}

// fieldFromTags reads documentation and metadata tags into an undecided field.
func fieldFromTags(sf reflect.StructField, opts StructOptions) (Field, error) {
	f := Field{md: term.FieldMetadata{Priority: opts.Priority}}
	if opts.DocTag != "" {
		if doc, ok := sf.Tag.Lookup(opts.DocTag); ok {
			f = f.Doc(doc)
		}
	}
	if opts.MetaTag == "" {
		return f, nil
	}

	meta, ok := sf.Tag.Lookup(opts.MetaTag)
	if !ok || meta == "" {
		return f, nil
	}
	// type= may contain commas, so it must come last.
	meta, typ, hasType := strings.Cut(meta, "type=")
	if hasType {
		t, err := term.ParseType(typ)
		if err != nil {
			return f, fmt.Errorf("%w: %w", ErrInvalidTag, err)
		}
		f = f.Type(t)
	}
	for _, opt := range strings.Split(meta, ",") {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case opt == "optional":
			f = f.Optional()
		case opt == "not_exported":
			f = f.NotExported()
		case strings.HasPrefix(opt, "priority="):
			p, ok := term.ParsePriority(strings.TrimPrefix(opt, "priority="))
			if !ok {
				return f, fmt.Errorf("%w: bad priority %q", ErrInvalidTag, opt)
			}
			f = f.Priority(p)
		case strings.HasPrefix(opt, "contract="):
			f = f.Contract(term.Contract(strings.TrimPrefix(opt, "contract=")))
		default:
			return f, fmt.Errorf("%w: unknown option %q", ErrInvalidTag, opt)
		}
	}
	return f, nil
}

// rebase returns f at path p.
func (f Field) rebase(p Path) Field {
	f.path = p
	return f
}
