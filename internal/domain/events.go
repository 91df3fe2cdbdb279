package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocDiscovered   EventType = "DocDiscovered"
	EventDocumentLoaded  EventType = "DocumentLoaded"
	EventContentChanged  EventType = "ContentChanged"
	EventError           EventType = "Error"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventScanRequested   EventType = "ScanRequested"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchNavigated EventType = "SearchNavigated"
	EventSearchCleared   EventType = "SearchCleared"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocDiscoveredEvent is emitted when a viewable document is found
type DocDiscoveredEvent struct {
	Doc DocInfo
}

func (e DocDiscoveredEvent) Type() EventType { return EventDocDiscovered }

// DocumentLoadedEvent is emitted when a document has been loaded and laid out
type DocumentLoadedEvent struct {
	Path  string
	Lines int
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// ContentChangedEvent is emitted when the open document changes on disk
type ContentChangedEvent struct {
	Path string
}

func (e ContentChangedEvent) Type() EventType { return EventContentChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when directory scanning begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when directory scanning completes
type ScanCompletedEvent struct {
	DocsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Root string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// SearchStartedEvent is emitted when a new query is applied
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted after the match list has been recomputed
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstLine  int // rendered line of the first match (-1 if none)
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchNavigatedEvent is emitted when the active match changes
type SearchNavigatedEvent struct {
	OldIndex int
	NewIndex int
}

func (e SearchNavigatedEvent) Type() EventType { return EventSearchNavigated }

// SearchClearedEvent is emitted when the query is cleared
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct{}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
