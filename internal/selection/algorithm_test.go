package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pastelines/internal/domain"
)

func sel(start, end int) *domain.Selection {
	return &domain.Selection{FileIndex: 0, Start: start, End: end}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		current  *domain.Selection
		line     int
		extend   bool
		want     domain.Selection
		toUnmark []int
		toMark   []int
	}{
		{
			name:   "first plain activation",
			line:   4,
			want:   domain.Selection{Start: 4, End: 4},
			toMark: []int{4},
		},
		{
			name:   "first extend acts like plain",
			line:   7,
			extend: true,
			want:   domain.Selection{Start: 7, End: 7},
			toMark: []int{7},
		},
		{
			name:     "plain collapses range",
			current:  sel(3, 6),
			line:     10,
			want:     domain.Selection{Start: 10, End: 10},
			toUnmark: []int{3, 4, 5, 6},
			toMark:   []int{10},
		},
		{
			name:     "plain inside range collapses",
			current:  sel(3, 6),
			line:     5,
			want:     domain.Selection{Start: 5, End: 5},
			toUnmark: []int{3, 4, 5, 6},
			toMark:   []int{5},
		},
		{
			name:    "extend forward keeps start",
			current: sel(4, 4),
			line:    9,
			extend:  true,
			want:    domain.Selection{Start: 4, End: 9},
			toMark:  []int{5, 6, 7, 8, 9},
		},
		{
			name:    "extend forward from a range marks only new lines",
			current: sel(4, 6),
			line:    8,
			extend:  true,
			want:    domain.Selection{Start: 4, End: 8},
			toMark:  []int{7, 8},
		},
		{
			name:     "extend backward drops old end",
			current:  sel(4, 9),
			line:     2,
			extend:   true,
			want:     domain.Selection{Start: 2, End: 4},
			toUnmark: []int{5, 6, 7, 8, 9},
			toMark:   []int{2, 3},
		},
		{
			name:    "extend backward from a single line",
			current: sel(5, 5),
			line:    1,
			extend:  true,
			want:    domain.Selection{Start: 1, End: 5},
			toMark:  []int{1, 2, 3, 4},
		},
		{
			name:     "extend inside range collapses",
			current:  sel(2, 8),
			line:     6,
			extend:   true,
			want:     domain.Selection{Start: 6, End: 6},
			toUnmark: []int{2, 3, 4, 5, 6, 7, 8},
			toMark:   []int{6},
		},
		{
			name:     "extend on range boundary collapses",
			current:  sel(2, 8),
			line:     8,
			extend:   true,
			want:     domain.Selection{Start: 8, End: 8},
			toUnmark: []int{2, 3, 4, 5, 6, 7, 8},
			toMark:   []int{8},
		},
		{
			name:     "extend on single line re-selects it",
			current:  sel(3, 3),
			line:     3,
			extend:   true,
			want:     domain.Selection{Start: 3, End: 3},
			toUnmark: []int{3},
			toMark:   []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.current, 0, tt.line, tt.extend)
			assert.Equal(t, tt.want, got.Next)
			assert.Equal(t, tt.toUnmark, got.ToUnmark)
			assert.Equal(t, tt.toMark, got.ToMark)
		})
	}
}

func TestNext_BackwardExtendIsNotAUnion(t *testing.T) {
	got := Next(sel(10, 20), 0, 5, true)
	assert.Equal(t, 5, got.Next.Start)
	assert.Equal(t, 10, got.Next.End, "backward extend ends at the old start, not the old end")
	assert.NotEqual(t, 20, got.Next.End)
}

func TestNext_PlainAlwaysCollapses(t *testing.T) {
	for s := 1; s <= 6; s++ {
		for e := s + 1; e <= 8; e++ {
			for l := 1; l <= 10; l++ {
				got := Next(sel(s, e), 0, l, false)
				assert.Equal(t, domain.Selection{Start: l, End: l}, got.Next, "from (%d,%d) at %d", s, e, l)
			}
		}
	}
}

func TestNext_KeepsFileIndex(t *testing.T) {
	cur := &domain.Selection{FileIndex: 3, Start: 1, End: 1}
	got := Next(cur, 3, 4, true)
	assert.Equal(t, 3, got.Next.FileIndex)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10, Clamp(25, 10))
	assert.Equal(t, 1, Clamp(0, 10))
	assert.Equal(t, 1, Clamp(-4, 10))
	assert.Equal(t, 7, Clamp(7, 10))
}
