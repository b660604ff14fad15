// FILE: lixenwraith/ncl/helper.go
package ncl

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/lixenwraith/ncl/term"
)

// leaf is a non-map value found while flattening a nested map.
type leaf struct {
	segments []string
	value    any
}

// flattenMap walks a nested map[string]any depth first, keys sorted at every
// level, and returns its leaves with their key paths. Empty nested maps are
// leaves so that they survive as empty records.
func flattenMap(nested map[string]any, prefix []string) ([]leaf, error) {
	var out []leaf
	for _, key := range slices.Sorted(maps.Keys(nested)) {
		if key == "" {
			return nil, fmt.Errorf("%w: empty key under %q", ErrInvalidPath, strings.Join(prefix, "."))
		}
		segments := append(slices.Clip(prefix), key)

		value := nested[key]
		if sub, ok := value.(map[string]any); ok && len(sub) > 0 {
			leaves, err := flattenMap(sub, segments)
			if err != nil {
				return nil, err
			}
			out = append(out, leaves...)
			continue
		}
		out = append(out, leaf{segments: segments, value: value})
	}
	return out, nil
}

// FromMap builds a record from a nested map. Every leaf is attached at its
// full key path, so the nesting is rebuilt when the record is built.
func FromMap(m map[string]any) (*Record, error) {
	leaves, err := flattenMap(m, nil)
	if err != nil {
		return nil, err
	}

	r := NewRecord()
	var errs []string
	for _, l := range leaves {
		v, err := toTerm(l.value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", strings.Join(l.segments, "."), err))
			continue
		}
		r.Path(l.segments[0], l.segments[1:]...).Value(v)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to convert %d value(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return r, nil
}

// Lookup follows p through nested record literals and returns the field it
// names. Merge nodes are not looked through.
func Lookup(t term.Term, p Path) (term.Field, bool) {
	current := term.FieldOf(t)
	for _, segment := range p.Segments() {
		rec, ok := current.Value.(*term.RecordData)
		if !ok {
			return term.Field{}, false
		}
		f, ok := rec.Lookup(segment)
		if !ok {
			return term.Field{}, false
		}
		current = f
	}
	return current, !p.IsZero()
}

// ParseSetting parses a command-line style assignment such as
// "server.port=8080" into a complete field. Values are read as booleans,
// numbers or strings; surrounding double quotes force a string.
func ParseSetting(s string) (CompleteField, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return CompleteField{}, fmt.Errorf("%w: missing '=' in %q", ErrInvalidPath, s)
	}
	p, err := ParsePath(strings.TrimSpace(key))
	if err != nil {
		return CompleteField{}, err
	}
	return NewField(p).Value(parseValue(raw)), nil
}

// parseValue reads a scalar the way a user would type it on a command line.
func parseValue(s string) term.Term {
	switch s {
	case "true":
		return term.Bool(true)
	case "false":
		return term.Bool(false)
	case "null":
		return term.Null{}
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return term.Str(s[1 : len(s)-1])
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return term.Num(n)
	}
	return term.Str(s)
}

// isValidKeySegment reports whether s is a TOML bare key, which the HCL and
// Nickel printers can also write unquoted.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
