package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentLoaded  EventType = "DocumentLoaded"
	EventDocumentChanged EventType = "DocumentChanged"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentLoadedEvent is emitted when the document has been parsed into fragments
type DocumentLoadedEvent struct {
	Path     string
	Document *Document
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// DocumentChangedEvent is emitted when the watcher sees the file change on disk
type DocumentChangedEvent struct {
	Path string
}

func (e DocumentChangedEvent) Type() EventType { return EventDocumentChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted after the configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
