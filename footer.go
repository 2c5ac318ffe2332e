package lawwatch

import "strings"

// footerMarkers identify trailing attribution and navigation content on
// chapter pages. A block containing any of these, at any position, ends
// the usable content.
var footerMarkers = []string{
	"updated as at",
	"by:",
	"disclaimer:",
	"@singaporelawwatch.sg",
	"email protected",
	"the writers wish to acknowledge",
}

// TruncateFooter returns the prefix of blocks that precedes the first
// footer block. Footer detection combines fixed text markers with
// positional heuristics that only apply past block index 10, so page
// chrome near the end of a chapter (navigation strips, print buttons,
// page-count artifacts, reference sections) is cut off together with
// everything after it. If no footer is found the input is returned
// unchanged.
func TruncateFooter(blocks []ContentBlock) []ContentBlock {
	for i, b := range blocks {
		if isFooterBlock(i, b) {
			return blocks[:i]
		}
	}
	return blocks
}

func isFooterBlock(i int, b ContentBlock) bool {
	text := strings.ToLower(strings.TrimSpace(b.Text))

	for _, marker := range footerMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	// A leading heading like "Ch. 02 Contract Law" is the chapter
	// title, not the chapter navigation strip.
	if i == 0 && b.Kind == BlockHeading && strings.HasPrefix(text, "ch. ") {
		return false
	}

	// Positional heuristics only fire deep into the page.
	if i <= 10 {
		return false
	}
	switch {
	case strings.Count(text, "ch. ") >= 2 && len(text) < 100:
		// Navigation strip like "Ch. 01 The Legal SystemCh. 03 Mediation".
		return true
	case text == "print" || strings.HasPrefix(text, "tags:"):
		return true
	case len(text) > 3 && isAllDigits(text):
		// Standalone page counts or record IDs, not section numbers.
		return true
	case strings.HasPrefix(text, "references"):
		return true
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
