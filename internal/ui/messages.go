package ui

import (
	"time"

	"pastelines/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying the link
type clipboardMsg struct {
	link string
	err  error
}

// clearStatusMsg clears the status message set with the same seq
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

const statusTimeout = 3 * time.Second
