package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/lawwatch"
	"github.com/fwojciec/lawwatch/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements lawwatch.Extractor at compile time.
var _ lawwatch.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Court of Appeal clarifies penalty rule - The Straits Times</title>
<meta property="og:title" content="Court of Appeal clarifies penalty rule">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Court of Appeal clarifies penalty rule</h1>
<p>The apex court handed down a significant judgment on liquidated damages clauses in commercial contracts.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/headlines">Headlines</a></nav>
<article>
<h1>New arbitration bill tabled in Parliament</h1>
<p>The bill introduces significant reforms to the conduct of international arbitration proceedings seated in Singapore.</p>
<p>Practitioners expect the changes to take effect early next year.</p>
</article>
<aside>Related stories</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "significant reforms")
		assert.Contains(t, result.ContentHTML, "early next year")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/headlines">Headlines</a></li>
<li><a href="/commentaries">Commentaries</a></li>
</ul>
</nav>
<main>
<h1>Tribunal upholds dismissal</h1>
<p>This paragraph contains the actual article text we want to keep.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual article text we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Judgment summary</h1>
<p>The court held that the restraint of trade clause was unenforceable for want of a legitimate proprietary interest.</p>
</article>
<footer>
<p>Copyright 2026 Example News Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "restraint of trade")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026 Example News Corp")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
