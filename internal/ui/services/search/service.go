package search

import (
	"fmt"
	"strings"

	"lasso/internal/eventbus"
	coresearch "lasso/internal/search"
)

// Service handles search functionality: it owns the query, the match list,
// and the active match index. Matching and scrolling are injected so the
// service stays independent of the document and viewport types.
type Service struct {
	state     *State
	bus       eventbus.EventBus
	matcherFn func(string) []coresearch.Match // Function to find matches
	scrollFn  func(coresearch.Match)          // Function to bring a match into view
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Query:   "",
			Matches: nil,
			Active:  -1,
		},
		bus: bus,
	}
}

// SetMatcherFunction sets the function to find matches
func (s *Service) SetMatcherFunction(fn func(string) []coresearch.Match) {
	s.matcherFn = fn
}

// SetScrollFunction sets the function that brings a match into view
func (s *Service) SetScrollFunction(fn func(coresearch.Match)) {
	s.scrollFn = fn
}

// SetQuery applies a new query, recomputing the match list and resetting the
// active match. It never scrolls; only navigation scrolls.
func (s *Service) SetQuery(query string) {
	if query == s.state.Query {
		return
	}

	s.state.Query = query

	if strings.TrimSpace(query) == "" {
		s.clear(query)
		return
	}

	s.bus.Publish(eventbus.SearchStartedEvent{Query: query})
	s.recompute(true)
}

// Refresh recomputes the match list against changed content, keeping the
// active index when the match list is unchanged and clamping it otherwise.
func (s *Service) Refresh() {
	if strings.TrimSpace(s.state.Query) == "" {
		return
	}
	s.recompute(false)
}

// Clear resets the search to the idle state
func (s *Service) Clear() {
	s.clear("")
}

// Next advances the active match, wrapping past the end, and scrolls to it
func (s *Service) Next() {
	n := len(s.state.Matches)
	if n == 0 {
		return
	}

	old := s.state.Active
	s.state.Active = (s.state.Active + 1) % n

	s.scrollToActive()
	s.bus.Publish(eventbus.SearchNavigatedEvent{OldIndex: old, NewIndex: s.state.Active})
}

// Previous retreats the active match, wrapping before the start, and scrolls
// to it
func (s *Service) Previous() {
	n := len(s.state.Matches)
	if n == 0 {
		return
	}

	old := s.state.Active
	s.state.Active = (s.state.Active - 1 + n) % n

	s.scrollToActive()
	s.bus.Publish(eventbus.SearchNavigatedEvent{OldIndex: old, NewIndex: s.state.Active})
}

// Query returns the current search query
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of matches
func (s *Service) MatchCount() int {
	return len(s.state.Matches)
}

// Matches returns the current ordered match list
func (s *Service) Matches() []coresearch.Match {
	return s.state.Matches
}

// ActiveIndex returns the active match index, -1 when there is none
func (s *Service) ActiveIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Active
}

// ActiveMatch returns the active match, if any
func (s *Service) ActiveMatch() (coresearch.Match, bool) {
	if s.state.Active < 0 || s.state.Active >= len(s.state.Matches) {
		return coresearch.Match{}, false
	}
	return s.state.Matches[s.state.Active], true
}

// NavEnabled reports whether next/previous navigation is possible
func (s *Service) NavEnabled() bool {
	return len(s.state.Matches) > 0
}

// CounterText returns the "i/N" counter, or "" when the query is empty or
// has no matches. The numerator is capped at the total so a transient
// recomputation never shows an out-of-range position.
func (s *Service) CounterText() string {
	if strings.TrimSpace(s.state.Query) == "" {
		return ""
	}
	total := len(s.state.Matches)
	if total == 0 {
		return ""
	}
	current := s.state.Active + 1
	if current > total {
		current = total
	}
	return fmt.Sprintf("%d/%d", current, total)
}

// Internal methods

func (s *Service) recompute(reset bool) {
	if s.matcherFn == nil {
		return
	}

	old := s.state.Matches
	s.state.Matches = s.matcherFn(s.state.Query)

	changed := len(old) != len(s.state.Matches)
	if !changed {
		for i, m := range old {
			if m != s.state.Matches[i] {
				changed = true
				break
			}
		}
	}

	switch {
	case len(s.state.Matches) == 0:
		s.state.Active = -1
	case reset || changed || s.state.Active < 0 || s.state.Active >= len(s.state.Matches):
		s.state.Active = 0
	}

	firstLine := -1
	if len(s.state.Matches) > 0 {
		firstLine = s.state.Matches[0].Line
	}

	s.bus.Publish(eventbus.SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(s.state.Matches),
		FirstLine:  firstLine,
	})
}

func (s *Service) clear(query string) {
	s.state.Query = query
	s.state.Matches = nil
	s.state.Active = -1

	s.bus.Publish(eventbus.SearchClearedEvent{})
}

func (s *Service) scrollToActive() {
	if s.scrollFn == nil {
		return
	}
	if m, ok := s.ActiveMatch(); ok {
		s.scrollFn(m)
	}
}
