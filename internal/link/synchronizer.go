// Package link keeps the shareable link parameter in step with the selection store.
package link

import (
	"fmt"
	"log"

	"pastelines/internal/domain"
	"pastelines/internal/eventbus"
	"pastelines/internal/linkcodec"
	"pastelines/internal/selection"
)

// LoadResult summarizes restoring selections from a link
type LoadResult struct {
	Parameter string
	Restored  int
	Skipped   []linkcodec.Skipped
}

// Synchronizer rewrites the link parameter after every selection change and
// restores selections from it once on load
type Synchronizer struct {
	port      Port
	codec     *linkcodec.Codec
	selection *selection.Service
	bus       eventbus.EventBus

	loaded       bool
	written      bool
	last         string
	unsubscribes []func()
}

// NewSynchronizer creates a synchronizer. bus may be nil, in which case
// the caller is responsible for calling Sync after each gesture.
func NewSynchronizer(port Port, codec *linkcodec.Codec, svc *selection.Service, bus eventbus.EventBus) *Synchronizer {
	return &Synchronizer{
		port:      port,
		codec:     codec,
		selection: svc,
		bus:       bus,
	}
}

// Load reads the parameter, replays it into the selection service and then
// starts following selection changes. Only the first call does anything.
func (s *Synchronizer) Load() LoadResult {
	if s.loaded {
		return LoadResult{}
	}
	s.loaded = true

	value := s.port.ReadParameter()
	result := LoadResult{Parameter: value}

	if value != "" {
		tokens, skipped := s.codec.Decode(value)
		result.Skipped = skipped
		for _, sk := range skipped {
			log.Printf("Link: skipping %q at offset %d: %s", sk.Text, sk.Offset, sk.Reason)
		}

		s.selection.Replay(func() {
			result.Restored = linkcodec.Replay(tokens, s.selection.Activate)
		})
		log.Printf("Link: restored %d of %d selections from %q", result.Restored, len(tokens), value)

		if result.Restored > 0 {
			s.Sync()
		}
	}

	if s.bus != nil {
		s.unsubscribes = append(s.unsubscribes,
			s.bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
				if event, ok := e.(eventbus.SelectionChangedEvent); ok && !event.Replaying {
					s.Sync()
				}
			}),
			s.bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
				s.Sync()
			}),
		)
		s.bus.Publish(domain.LinkRestoredEvent{
			Restored: result.Restored,
			Skipped:  len(result.Skipped),
		})
	}

	return result
}

// Sync encodes the store and writes it to the port. Once something has been
// written, writing an unchanged value again is skipped.
func (s *Synchronizer) Sync() string {
	value := s.codec.Encode(s.selection.Selections())
	if s.written && value == s.last {
		return value
	}
	s.last = value
	s.written = true
	s.port.WriteParameter(value)

	if s.bus != nil {
		s.bus.Publish(domain.LinkUpdatedEvent{Parameter: value, Link: s.Link()})
	}
	return value
}

// Parameter returns the last value written
func (s *Synchronizer) Parameter() string {
	return s.last
}

// Link returns the full shareable link when the port knows it, otherwise
// just the parameter value
func (s *Synchronizer) Link() string {
	if str, ok := s.port.(fmt.Stringer); ok {
		return str.String()
	}
	return s.last
}

// Close stops following selection changes
func (s *Synchronizer) Close() {
	for _, unsubscribe := range s.unsubscribes {
		unsubscribe()
	}
	s.unsubscribes = nil
}
