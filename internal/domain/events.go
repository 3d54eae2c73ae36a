package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPasteLoaded      EventType = "PasteLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventLinkUpdated      EventType = "LinkUpdated"
	EventLinkRestored     EventType = "LinkRestored"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PasteLoadedEvent is emitted when a paste with a new identity is installed
type PasteLoadedEvent struct {
	PasteID   string
	FileCount int
}

func (e PasteLoadedEvent) Type() EventType { return EventPasteLoaded }

// SelectionChangedEvent is emitted after a gesture changes one file's range
type SelectionChangedEvent struct {
	Previous  *Selection // nil when the file had no range
	Current   Selection
	Marked    []int
	Unmarked  []int
	Replaying bool // true while a link is being restored
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when every range is dropped
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// LinkUpdatedEvent is emitted when the shareable link parameter was rewritten
type LinkUpdatedEvent struct {
	Parameter string
	Link      string
}

func (e LinkUpdatedEvent) Type() EventType { return EventLinkUpdated }

// LinkRestoredEvent is emitted once a link has been replayed into the selection store
type LinkRestoredEvent struct {
	Restored int
	Skipped  int
}

func (e LinkRestoredEvent) Type() EventType { return EventLinkRestored }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
