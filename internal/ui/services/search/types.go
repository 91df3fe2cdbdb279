package search

import (
	coresearch "lasso/internal/search"
)

// State holds search state
type State struct {
	Query   string
	Matches []coresearch.Match
	Active  int // index into Matches, -1 when there is no active match
}
