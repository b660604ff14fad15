// FILE: lixenwraith/ncl/term/priority.go
package term

import (
	"cmp"
	"strconv"
)

// PriorityLevel is the coarse ordering class of a MergePriority.
type PriorityLevel int

const (
	// LevelNumeral orders by Value. The zero value, Numeral(0), is the default priority.
	LevelNumeral PriorityLevel = iota
	// LevelBottom is lower than every numeral.
	LevelBottom
	// LevelTop is higher than every numeral.
	LevelTop
)

// MergePriority decides which definition wins when a merger reconciles two
// definitions of the same field. Bottom < Numeral(n) < Top.
type MergePriority struct {
	Level PriorityLevel
	Value float64
}

var (
	PriorityBottom  = MergePriority{Level: LevelBottom}
	PriorityDefault = MergePriority{}
	PriorityTop     = MergePriority{Level: LevelTop}
)

// Numeral returns the numeric priority n.
func Numeral(n float64) MergePriority {
	return MergePriority{Level: LevelNumeral, Value: n}
}

func (p MergePriority) rank() int {
	switch p.Level {
	case LevelBottom:
		return -1
	case LevelTop:
		return 1
	default:
		return 0
	}
}

// Compare returns -1, 0 or +1 depending on whether p is lower, equal or higher than o.
func (p MergePriority) Compare(o MergePriority) int {
	if c := cmp.Compare(p.rank(), o.rank()); c != 0 {
		return c
	}
	if p.Level != LevelNumeral {
		return 0
	}
	return cmp.Compare(p.Value, o.Value)
}

// IsDefault reports whether p is the default priority.
func (p MergePriority) IsDefault() bool {
	return p.Level == LevelNumeral && p.Value == 0
}

func (p MergePriority) String() string {
	switch p.Level {
	case LevelBottom:
		return "bottom"
	case LevelTop:
		return "top"
	}
	if p.Value == 0 {
		return "default"
	}
	return "priority " + strconv.FormatFloat(p.Value, 'g', -1, 64)
}

// ParsePriority parses "bottom", "default", "top" or a number.
func ParsePriority(s string) (MergePriority, bool) {
	switch s {
	case "bottom":
		return PriorityBottom, true
	case "default", "":
		return PriorityDefault, true
	case "top", "force":
		return PriorityTop, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return MergePriority{}, false
	}
	return Numeral(n), true
}
