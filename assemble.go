package lawwatch

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// numberedParagraphRe matches the three-level dotted numeral that
// anchors a fragment, e.g. "1.1.1" or "2.10.15".
var numberedParagraphRe = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// minBlockLength is the minimum trimmed text length for a block to be
// considered at all; shorter blocks are invisible to every rule.
const minBlockLength = 5

// AssembleFragments consumes a cleaned block sequence and produces the
// ordered list of fragments for one chapter.
//
// Each fragment opens at a numbered paragraph. Headings are
// forward-referencing: they accumulate in a pending buffer and attach to
// the next numbered paragraph (or to the last fragment if none ever
// follows). Tables, lists, and indented paragraphs are
// backward-referencing: they append to the most recently created
// fragment. A non-indented paragraph that immediately follows a table or
// list also attaches backward, since it usually explains that table or
// list. Everything else defers forward as a pending header.
//
// A sequence with no numbered paragraph produces no fragments; any
// accumulated headers are discarded, since fragments are meaningless
// without their anchor.
func AssembleFragments(chapterID string, blocks []ContentBlock) []*Fragment {
	var fragments []*Fragment
	var pendingHeaders []string
	fragmentIndex := 0
	var lastKind BlockKind

	for _, block := range blocks {
		text := strings.TrimSpace(block.Text)
		if len(text) < minBlockLength {
			continue
		}

		switch {
		case block.Kind == BlockParagraph && numberedParagraphRe.MatchString(text):
			// Open a new fragment from the pending headers plus this
			// numbered paragraph.
			parts := make([]string, 0, len(pendingHeaders)+1)
			parts = append(parts, pendingHeaders...)
			parts = append(parts, text)
			content := strings.Join(parts, "\n\n")

			sectionNum := numberedParagraphRe.FindString(text)
			if sectionNum == "" {
				// Unreachable given the gate above; kept as a guard.
				sectionNum = fmt.Sprintf("f%03d", fragmentIndex)
			}

			fragments = append(fragments, &Fragment{
				ID:        chapterID + "_" + sectionNum,
				ChapterID: chapterID,
				Order:     fragmentIndex,
				Content:   content,
				CharCount: utf8.RuneCountInString(content),
			})
			pendingHeaders = nil
			fragmentIndex++

		case block.Kind == BlockHeading:
			pendingHeaders = append(pendingHeaders, text)

		case block.Kind == BlockTable || block.Kind == BlockList:
			if len(fragments) > 0 {
				appendToFragment(fragments[len(fragments)-1], text)
			} else {
				// No fragment to attach to yet; defer forward.
				pendingHeaders = append(pendingHeaders, text)
			}

		default:
			continuation := IsContinuationParagraph(block.Raw)
			switch {
			case continuation && len(fragments) > 0:
				appendToFragment(fragments[len(fragments)-1], text)
			case !continuation && (lastKind == BlockTable || lastKind == BlockList) && len(fragments) > 0:
				// Explanatory text after a table or list belongs with it.
				appendToFragment(fragments[len(fragments)-1], text)
			default:
				pendingHeaders = append(pendingHeaders, text)
			}
		}

		lastKind = block.Kind
	}

	// Flush trailing headers into the last fragment, if any.
	if len(pendingHeaders) > 0 && len(fragments) > 0 {
		appendToFragment(fragments[len(fragments)-1], strings.Join(pendingHeaders, "\n\n"))
	}

	return fragments
}

// appendToFragment attaches text to an existing fragment and keeps
// CharCount in sync with the content.
func appendToFragment(f *Fragment, text string) {
	f.Content += "\n\n" + text
	f.CharCount = utf8.RuneCountInString(f.Content)
}
