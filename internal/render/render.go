// Package render draws frame.Labeled tables for terminal output.
//
// Every renderer binds a lipgloss.Renderer to its destination writer, so
// output to a pipe, file or buffer carries no ANSI escape sequences while
// output to a color terminal may be styled.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"tabledemo/internal/frame"
)

// Style names a table layout.
type Style string

const (
	// StylePlain lays the table out like a dataframe printout: labels and
	// right-aligned cells separated by two spaces, no borders.
	StylePlain Style = "plain"
	// StyleBorder draws a boxed table with rounded corners.
	StyleBorder Style = "border"
)

// ValidStyles lists every supported style.
var ValidStyles = []Style{StylePlain, StyleBorder}

// ErrUnknownStyle is returned for a style name that is not in ValidStyles.
var ErrUnknownStyle = errors.New("unknown table style")

// Renderer writes a labeled table to w.
type Renderer interface {
	Render(w io.Writer, t *frame.Labeled) error
}

// ParseStyle normalizes a style name. The empty string selects StylePlain.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return StylePlain, nil
	}
	for _, v := range ValidStyles {
		if s == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownStyle, name, ValidStyles)
}

// New returns the Renderer for the given style.
func New(style Style) (Renderer, error) {
	switch style {
	case StylePlain, "":
		return Plain{}, nil
	case StyleBorder:
		return Border{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownStyle, string(style), ValidStyles)
	}
}
