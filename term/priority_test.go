// FILE: lixenwraith/ncl/term/priority_test.go
package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergePriority(t *testing.T) {
	t.Run("Ordering", func(t *testing.T) {
		ordered := []MergePriority{PriorityBottom, Numeral(-5), PriorityDefault, Numeral(2.5), Numeral(100), PriorityTop}
		for i := range ordered {
			for j := range ordered {
				want := 0
				switch {
				case i < j:
					want = -1
				case i > j:
					want = 1
				}
				assert.Equal(t, want, ordered[i].Compare(ordered[j]), "%s vs %s", ordered[i], ordered[j])
			}
		}
	})

	t.Run("Default", func(t *testing.T) {
		var zero MergePriority
		assert.Equal(t, PriorityDefault, zero)
		assert.Equal(t, PriorityDefault, Numeral(0))
		assert.True(t, zero.IsDefault())
		assert.False(t, PriorityTop.IsDefault())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "bottom", PriorityBottom.String())
		assert.Equal(t, "default", PriorityDefault.String())
		assert.Equal(t, "top", PriorityTop.String())
		assert.Equal(t, "priority 3", Numeral(3).String())
	})

	t.Run("Parse", func(t *testing.T) {
		tests := []struct {
			in   string
			want MergePriority
			ok   bool
		}{
			{"bottom", PriorityBottom, true},
			{"default", PriorityDefault, true},
			{"top", PriorityTop, true},
			{"force", PriorityTop, true},
			{"-1.5", Numeral(-1.5), true},
			{"high", MergePriority{}, false},
		}
		for _, tt := range tests {
			got, ok := ParsePriority(tt.in)
			assert.Equal(t, tt.ok, ok, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		}
	})
}
