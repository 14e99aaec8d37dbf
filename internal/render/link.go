package render

import (
	"strings"
)

// FindLinkAfter scans text forward from offset for LinkMarker and returns the
// link that follows it. The link is the rest of the marker line or, when that
// is blank, the whole next line; it ends at the next line break. It reports
// false when the marker, the link or its terminating line break is missing.
func FindLinkAfter(text string, offset int) (string, bool) {
	if offset < 0 || offset > len(text) {
		return "", false
	}

	idx := strings.Index(text[offset:], LinkMarker)
	if idx < 0 {
		return "", false
	}
	start := offset + idx + len(LinkMarker)

	// The marker sits on its own line; the link is on the next one
	start = skipBlanks(text, start)
	if strings.HasPrefix(text[start:], "\r\n") {
		start += 2
	} else if strings.HasPrefix(text[start:], "\n") {
		start++
	}

	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		return "", false
	}

	link := strings.TrimSpace(text[start : start+end])
	if link == "" {
		return "", false
	}
	return link, true
}

// skipBlanks advances pos past spaces and tabs
func skipBlanks(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos
}
