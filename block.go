package lawwatch

// BlockKind identifies the type of an extracted content block.
type BlockKind string

// Content block kinds produced by chapter extraction.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockTable     BlockKind = "table"
	BlockList      BlockKind = "list"
)

// ContentBlock is one unit of extracted chapter content, in document
// reading order. Text is the normalized, whitespace-trimmed display
// text. Raw preserves the original markup (including leading whitespace)
// and is only inspected for paragraph blocks, where indentation decides
// whether a paragraph continues the previous fragment.
//
// Blocks are immutable once produced by a ChapterExtractor; the engine
// pre-passes return new slices rather than mutating their input blocks.
type ContentBlock struct {
	Text string
	Kind BlockKind
	Raw  string
}

// ChapterExtractor turns a chapter page's HTML into an ordered sequence
// of typed content blocks. Implementations must preserve raw markup for
// paragraph blocks so indentation detection remains possible.
type ChapterExtractor interface {
	ExtractBlocks(html string) ([]ContentBlock, error)
}
