package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"lasso/internal/domain"
)

const minWrapWidth = 20

// Load reads the file at path and lays it out at the given wrap width.
// The kind is chosen from the file extension.
func Load(path string, width int) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Layout(path, domain.KindForPath(path), string(data), width)
}

// Layout lays raw source out as rendered lines for the given kind and width.
func Layout(path string, kind domain.DocKind, src string, width int) (*Document, error) {
	if width < minWrapWidth {
		width = minWrapWidth
	}

	var lines []string
	switch kind {
	case domain.DocHTML:
		blocks, err := extractHTMLBlocks(src)
		if err != nil {
			return nil, err
		}
		lines = wrapBlocks(blocks, width)
	case domain.DocMarkdown:
		rendered, err := renderMarkdown(src, width)
		if err != nil {
			return nil, err
		}
		lines = splitLines(rendered)
	default:
		lines = wrapLines(splitLines(src), width)
	}

	return NewDocument(path, kind, width, lines), nil
}

// wrapBlocks word-wraps each block to width, separating blocks with a blank
// line.
func wrapBlocks(blocks []string, width int) []string {
	var lines []string
	for i, block := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		if strings.TrimSpace(block) == "" {
			continue
		}
		wrapped := ansi.Wordwrap(block, width, "")
		lines = append(lines, splitLines(wrapped)...)
	}
	return lines
}

// wrapLines word-wraps each line to width, keeping blank lines as-is
func wrapLines(src []string, width int) []string {
	var lines []string
	for _, line := range src {
		if strings.TrimSpace(line) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, splitLines(ansi.Wordwrap(line, width, ""))...)
	}
	return lines
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
