package domain

import (
	"path/filepath"
	"strings"
)

// DocKind identifies how a document's source is parsed and rendered
type DocKind int

const (
	DocPlain DocKind = iota
	DocMarkdown
	DocHTML
)

// String returns a short name for the kind
func (k DocKind) String() string {
	switch k {
	case DocMarkdown:
		return "markdown"
	case DocHTML:
		return "html"
	default:
		return "plain"
	}
}

// DocInfo describes a viewable document found on disk
type DocInfo struct {
	Path string // absolute path
	Name string // display name, base name of the file
	Kind DocKind
	Size int64
}

// KindForPath determines the document kind from the file extension
func KindForPath(path string) DocKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return DocMarkdown
	case ".html", ".htm", ".xhtml":
		return DocHTML
	default:
		return DocPlain
	}
}

// IsViewable reports whether the file extension is one lasso can open
func IsViewable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".html", ".htm", ".xhtml", ".txt", ".text", ".log":
		return true
	default:
		return false
	}
}
