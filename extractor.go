package lawwatch

// ExtractResult holds the extracted content from an article page.
type ExtractResult struct {
	// Title is the article title extracted from metadata.
	Title string

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from article HTML, removing
// boilerplate. Used to prepare news article text for summarization.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}
