package lawwatch

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IsContinuationParagraph reports whether a paragraph's raw markup marks
// it as a continuation of the preceding fragment rather than the start
// of a new one. A continuation is signalled either by an inline style
// with a left margin or padding declaration, or by exactly four leading
// whitespace characters in the rendered text. The four-space rule is an
// exact match: two or eight spaces do not qualify.
func IsContinuationParagraph(raw string) bool {
	if strings.Contains(raw, "style=") &&
		(strings.Contains(raw, "margin-left") || strings.Contains(raw, "padding-left")) {
		return true
	}

	text := renderedText(raw)
	leading := len(text) - len(strings.TrimLeft(text, " \t\n\r"))
	return leading == 4
}

// renderedText strips markup from an HTML fragment, concatenating its
// text nodes without trimming whitespace. Raw without markup is used as
// is. Fragments are parsed in a body context: a full-document parse
// discards whitespace tokens ahead of the first element, which would
// erase the indentation the caller is counting.
func renderedText(raw string) string {
	if !strings.Contains(raw, "<") {
		return raw
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return raw
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	return sb.String()
}
