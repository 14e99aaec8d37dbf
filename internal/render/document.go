package render

import (
	"strings"
)

// Style describes how a line is drawn
type Style int

const (
	StylePlain Style = iota
	StyleCentered
	StyleLink
)

// String returns a readable style name
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleCentered:
		return "centered"
	case StyleLink:
		return "link"
	default:
		return "unknown"
	}
}

// Kind tells what a Document represents
type Kind int

const (
	KindEmpty Kind = iota
	KindRecipe
	KindMessage
)

// NoLink marks a line that carries no link
const NoLink = -1

// Line is one displayed line
type Line struct {
	Text  string
	Style Style
	Link  int // index into Document.Links, NoLink if none
}

// Link is an activatable URL and the line that displays it
type Link struct {
	URL  string
	Line int
}

// Document is the displayable form of a recipe or message
type Document struct {
	Kind  Kind
	Lines []Line
	Links []Link
}

// Text returns the document as plain text, every line terminated by "\n"
func (d Document) Text() string {
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// IsEmpty reports whether there is nothing to display
func (d Document) IsEmpty() bool {
	return len(d.Lines) == 0
}

// LinkAt returns the link with the given index
func (d Document) LinkAt(index int) (Link, bool) {
	if index < 0 || index >= len(d.Links) {
		return Link{}, false
	}
	return d.Links[index], true
}

// LinkOnLine returns the link displayed on line, if any
func (d Document) LinkOnLine(line int) (Link, bool) {
	if line < 0 || line >= len(d.Lines) {
		return Link{}, false
	}
	return d.LinkAt(d.Lines[line].Link)
}

// LineAt maps a character offset in Text() to its line index
func (d Document) LineAt(offset int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	pos := 0
	for i, line := range d.Lines {
		end := pos + len(line.Text) // the terminating "\n" belongs to the line
		if offset <= end {
			return i, true
		}
		pos = end + 1
	}
	return 0, false
}

// addLine appends a line and returns its index
func (d *Document) addLine(text string, style Style) int {
	d.Lines = append(d.Lines, Line{Text: text, Style: style, Link: NoLink})
	return len(d.Lines) - 1
}

// addLink appends a link line
func (d *Document) addLink(url string) {
	line := d.addLine(url, StyleLink)
	d.Links = append(d.Links, Link{URL: url, Line: line})
	d.Lines[line].Link = len(d.Links) - 1
}
