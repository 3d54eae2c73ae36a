package selection

import (
	"log"

	"pastelines/internal/domain"
	"pastelines/internal/eventbus"
	"pastelines/internal/logic"
)

// Marker toggles the "selected" visual of a rendered line
type Marker interface {
	Mark(fileIndex, line int)
	Unmark(fileIndex, line int)
}

// LineCounter reports how many lines a file has, or a negative value when
// no such file exists. *domain.Paste satisfies it.
type LineCounter interface {
	LineCount(fileIndex int) int
}

// NullMarker is a no-op implementation of Marker
type NullMarker struct{}

func (NullMarker) Mark(fileIndex, line int)   {}
func (NullMarker) Unmark(fileIndex, line int) {}

// Service applies gestures to the selection store and keeps the visuals in step
type Service struct {
	store     logic.SelectionStore
	lines     LineCounter
	marker    Marker
	bus       eventbus.EventBus
	replaying bool
}

// NewService creates a selection service. bus may be nil.
func NewService(store logic.SelectionStore, lines LineCounter, marker Marker, bus eventbus.EventBus) *Service {
	if marker == nil {
		marker = NullMarker{}
	}
	return &Service{
		store:  store,
		lines:  lines,
		marker: marker,
		bus:    bus,
	}
}

// SetMarker replaces the rendering layer
func (s *Service) SetMarker(marker Marker) {
	if marker == nil {
		marker = NullMarker{}
	}
	s.marker = marker
}

// Activate handles a gesture at rawLine of fileIndex. It returns false when
// the gesture was a no-op because the file does not exist or has no lines.
func (s *Service) Activate(fileIndex, rawLine int, extend bool) bool {
	count := -1
	if s.lines != nil {
		count = s.lines.LineCount(fileIndex)
	}
	if count <= 0 {
		return false
	}
	line := Clamp(rawLine, count)

	var previous *domain.Selection
	if cur, ok := s.store.Get(fileIndex); ok {
		previous = &cur
	}

	t := Next(previous, fileIndex, line, extend)
	for _, n := range t.ToUnmark {
		s.marker.Unmark(fileIndex, n)
	}
	for _, n := range t.ToMark {
		s.marker.Mark(fileIndex, n)
	}
	s.store.Set(t.Next)

	if s.bus != nil {
		s.bus.Publish(domain.SelectionChangedEvent{
			Previous:  previous,
			Current:   t.Next,
			Marked:    t.ToMark,
			Unmarked:  t.ToUnmark,
			Replaying: s.replaying,
		})
	}
	return true
}

// Replay runs fn with every gesture it issues flagged as a replay
func (s *Service) Replay(fn func()) {
	prev := s.replaying
	s.replaying = true
	defer func() { s.replaying = prev }()
	fn()
}

// Reset drops every range, unmarking its lines, and switches to a new set of
// files. Used whenever the paste changes identity.
func (s *Service) Reset(lines LineCounter) {
	for _, sel := range s.store.All() {
		for n := sel.Start; n <= sel.End; n++ {
			s.marker.Unmark(sel.FileIndex, n)
		}
	}
	s.store.Clear()
	s.lines = lines
	log.Printf("Selection: store reset")

	if s.bus != nil {
		s.bus.Publish(domain.SelectionClearedEvent{})
	}
}

// Selections returns a snapshot of every active range ordered by file
func (s *Service) Selections() []domain.Selection {
	return s.store.All()
}

// Get returns the active range of one file
func (s *Service) Get(fileIndex int) (domain.Selection, bool) {
	return s.store.Get(fileIndex)
}

// IsSelected reports whether a line is inside its file's active range
func (s *Service) IsSelected(fileIndex, line int) bool {
	sel, ok := s.store.Get(fileIndex)
	return ok && sel.Contains(line)
}

// Clamp pulls a requested line into [1, count]
func Clamp(line, count int) int {
	if line > count {
		line = count
	}
	if line < 1 {
		line = 1
	}
	return line
}
