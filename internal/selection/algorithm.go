// Package selection implements the per-file line range state machine and the
// gesture service that applies it to a store and a rendering layer.
package selection

import "pastelines/internal/domain"

// Transition is the outcome of one gesture on one file
type Transition struct {
	Next     domain.Selection
	ToUnmark []int // applied before ToMark
	ToMark   []int
}

// Next computes the range that follows a gesture at line on fileIndex.
// current is nil when the file has no range yet. line must already be a
// valid 1-based line of the file.
//
// Extending backwards runs the range from line up to the old start and drops
// the old end. Extending forwards keeps the old start.
func Next(current *domain.Selection, fileIndex, line int, extend bool) Transition {
	single := domain.Selection{FileIndex: fileIndex, Start: line, End: line}

	if current == nil {
		return Transition{Next: single, ToMark: []int{line}}
	}

	s, e := current.Start, current.End
	switch {
	case !extend, line >= s && line <= e:
		return Transition{
			Next:     single,
			ToUnmark: span(s, e),
			ToMark:   []int{line},
		}
	case line < s:
		return Transition{
			Next:     domain.Selection{FileIndex: fileIndex, Start: line, End: s},
			ToUnmark: span(s+1, e),
			ToMark:   span(line, s-1),
		}
	default:
		return Transition{
			Next:   domain.Selection{FileIndex: fileIndex, Start: s, End: line},
			ToMark: span(e+1, line),
		}
	}
}

// span returns the inclusive run from..to, or nil when it is empty
func span(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
