package ui

import (
	"deckle/internal/domain"
	"deckle/internal/eventbus"
	"deckle/internal/ui/services/modal"
)

// EventMsg wraps a domain event forwarded from the event bus into the
// Bubble Tea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// modalAdvanceMsg fires when a scheduled modal transition comes due
type modalAdvanceMsg struct {
	tr modal.Transition
}

// documentLoadedMsg carries the result of an async document (re)load
type documentLoadedMsg struct {
	doc *domain.Document
	err error
}

// relayoutMsg asks for a debounced re-layout after a resize burst settles
type relayoutMsg struct{}
