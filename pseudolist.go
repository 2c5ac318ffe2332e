package lawwatch

import "strings"

// legalActionPhrases are phrases common in legal enumerations. A plain
// paragraph mentioning one of these is a candidate unmarked list item.
var legalActionPhrases = []string{
	"veto against",
	"appointment of",
	"concurrence with",
	"withholding of",
	"exercise of",
	"approval of",
	"consent to",
	"power to",
	"authority to",
	"right to",
	"duty to",
	"responsibility for",
}

// IsLikelyListItem reports whether a paragraph's text reads like an
// unmarked list item: it starts with "the " (case-insensitive), is
// longer than 20 characters, and contains a legal-action phrase.
//
// The check is purely lexical; false positives and negatives are
// accepted as heuristic noise.
func IsLikelyListItem(text string) bool {
	stripped := strings.TrimSpace(text)
	if len(stripped) <= 20 {
		return false
	}
	lower := strings.ToLower(stripped)
	if !strings.HasPrefix(lower, "the ") {
		return false
	}
	for _, phrase := range legalActionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// GroupPseudoListItems collapses runs of two or more consecutive
// paragraphs that look like unmarked list items into a single synthetic
// list block. The list text is each item prefixed with a bullet and
// joined by newlines; the raw markup is the space-joined concatenation
// of the originals. Runs of one are left untouched, and non-paragraph
// blocks pass through unchanged, resetting the lookahead.
func GroupPseudoListItems(blocks []ContentBlock) []ContentBlock {
	if len(blocks) == 0 {
		return blocks
	}

	result := make([]ContentBlock, 0, len(blocks))
	i := 0
	for i < len(blocks) {
		if blocks[i].Kind != BlockParagraph {
			result = append(result, blocks[i])
			i++
			continue
		}

		// Collect consecutive list-like paragraphs.
		j := i
		for j < len(blocks) && blocks[j].Kind == BlockParagraph && IsLikelyListItem(blocks[j].Text) {
			j++
		}

		if j-i < 2 {
			result = append(result, blocks[i])
			i++
			continue
		}

		items := make([]string, 0, j-i)
		raws := make([]string, 0, j-i)
		for _, b := range blocks[i:j] {
			items = append(items, "• "+b.Text)
			raws = append(raws, b.Raw)
		}
		result = append(result, ContentBlock{
			Text: strings.Join(items, "\n"),
			Kind: BlockList,
			Raw:  strings.Join(raws, " "),
		})
		i = j
	}

	return result
}
