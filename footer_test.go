package lawwatch_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/lawwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contentRun builds n plain paragraphs long enough to pass the skip rule.
func contentRun(n int) []lawwatch.ContentBlock {
	blocks := make([]lawwatch.ContentBlock, 0, n)
	for i := 0; i < n; i++ {
		blocks = append(blocks, para(fmt.Sprintf("Paragraph %d with ordinary chapter content.", i)))
	}
	return blocks
}

func TestTruncateFooter(t *testing.T) {
	t.Parallel()

	t.Run("cuts at the first marker and drops everything after", func(t *testing.T) {
		t.Parallel()

		blocks := append(contentRun(3),
			para("Updated as at 15 March 2024"),
			para("More content that should be dropped."),
		)

		got := lawwatch.TruncateFooter(blocks)

		assert.Len(t, got, 3)
	})

	t.Run("markers match anywhere regardless of position", func(t *testing.T) {
		t.Parallel()

		markers := []string{
			"By: Professor Tan Lee Meng",
			"Disclaimer: The information provided here is general.",
			"Contact us at info@singaporelawwatch.sg for details",
			"[email protected]",
			"The writers wish to acknowledge the assistance of the editors.",
		}
		for _, marker := range markers {
			blocks := []lawwatch.ContentBlock{
				para("Ordinary first paragraph of the chapter."),
				para(marker),
				para("Trailing content after the marker."),
			}

			got := lawwatch.TruncateFooter(blocks)

			assert.Len(t, got, 1, "marker %q", marker)
		}
	})

	t.Run("navigation strip past index 10 truncates", func(t *testing.T) {
		t.Parallel()

		blocks := append(contentRun(12),
			para("Ch. 01 The Singapore Legal SystemCh. 03 Mediation"),
			para("Dropped navigation tail."),
			para("Also dropped."),
		)
		require.Len(t, blocks, 15)

		got := lawwatch.TruncateFooter(blocks)

		assert.Len(t, got, 12)
		assert.Equal(t, blocks[:12], got)
	})

	t.Run("navigation-like text early in the page survives", func(t *testing.T) {
		t.Parallel()

		blocks := []lawwatch.ContentBlock{
			para("Ch. 01 OverviewCh. 02 Contract Law"),
			para("Ordinary content after the early navigation-like text."),
		}

		got := lawwatch.TruncateFooter(blocks)

		assert.Len(t, got, 2)
	})

	t.Run("chapter title heading at index zero survives", func(t *testing.T) {
		t.Parallel()

		blocks := append(
			[]lawwatch.ContentBlock{heading("Ch. 02 Contract Law")},
			contentRun(3)...,
		)

		got := lawwatch.TruncateFooter(blocks)

		assert.Len(t, got, 4)
	})

	t.Run("print and tags chrome past index 10 truncates", func(t *testing.T) {
		t.Parallel()

		for _, chrome := range []string{"Print", "Tags: contract, tort"} {
			blocks := append(contentRun(11), para(chrome), para("Dropped."))

			got := lawwatch.TruncateFooter(blocks)

			assert.Len(t, got, 11, "chrome %q", chrome)
		}
	})

	t.Run("standalone long number past index 10 truncates", func(t *testing.T) {
		t.Parallel()

		blocks := append(contentRun(11), para("48213"), para("Dropped."))

		got := lawwatch.TruncateFooter(blocks)

		assert.Len(t, got, 11)
	})

	t.Run("references section past index 10 truncates", func(t *testing.T) {
		t.Parallel()

		blocks := append(contentRun(11),
			para("References and further reading"),
			para("Dropped bibliography entry."),
		)

		got := lawwatch.TruncateFooter(blocks)

		assert.Len(t, got, 11)
	})

	t.Run("passes clean sequences through unchanged", func(t *testing.T) {
		t.Parallel()

		blocks := contentRun(14)

		got := lawwatch.TruncateFooter(blocks)

		assert.Equal(t, blocks, got)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lawwatch.TruncateFooter(nil))
	})
}
