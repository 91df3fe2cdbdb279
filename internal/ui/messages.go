package ui

import (
	"lasso/internal/content"
	"lasso/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// docLoadedMsg contains a freshly loaded document
type docLoadedMsg struct {
	doc *content.Document
}

// docErrMsg contains a document load failure
type docErrMsg struct {
	path string
	err  error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
