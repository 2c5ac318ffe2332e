// Package goquery provides HTML parsing implementations for chapter
// extraction and chapter link discovery on the Singapore Law Watch site.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lawwatch"
)

// Selectors for the DNN-based article markup on chapter pages.
const (
	articleSelector = ".edn_article"
	contentSelector = "p, table, ul, ol, div, h1, h2, h3, h4, h5, h6"
)

// Ensure Extractor implements lawwatch.ChapterExtractor at compile time.
var _ lawwatch.ChapterExtractor = (*Extractor)(nil)

// Extractor turns chapter page HTML into ordered content blocks.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBlocks parses a chapter page and returns its content blocks in
// document order. Elements nested inside tables or lists are skipped
// since their content is already captured by the enclosing block.
// Paragraph blocks keep their outer HTML as raw markup so indentation
// detection remains possible downstream.
func (e *Extractor) ExtractBlocks(html string) ([]lawwatch.ContentBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, lawwatch.Errorf(lawwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	article := doc.Find(articleSelector).First()
	if article.Length() == 0 {
		return nil, lawwatch.Errorf(lawwatch.ENOTFOUND, "no article content found")
	}

	var blocks []lawwatch.ContentBlock
	article.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("table").Length() > 0 {
			return
		}
		if sel.ParentsFiltered("ul, ol").Length() > 0 {
			return
		}

		switch goquery.NodeName(sel) {
		case "table":
			text := tableText(sel)
			if strings.TrimSpace(text) == "" {
				return
			}
			blocks = append(blocks, lawwatch.ContentBlock{
				Text: text,
				Kind: lawwatch.BlockTable,
				Raw:  strings.TrimSpace(sel.Text()),
			})
		case "ul", "ol":
			text := listText(sel)
			if strings.TrimSpace(text) == "" {
				return
			}
			blocks = append(blocks, lawwatch.ContentBlock{
				Text: text,
				Kind: lawwatch.BlockList,
				Raw:  strings.TrimSpace(sel.Text()),
			})
		case "h1", "h2", "h3", "h4", "h5", "h6":
			text := strings.TrimSpace(sel.Text())
			if text == "" {
				return
			}
			blocks = append(blocks, lawwatch.ContentBlock{
				Text: text,
				Kind: lawwatch.BlockHeading,
				Raw:  text,
			})
		case "p", "div":
			text := strings.TrimSpace(sel.Text())
			if text == "" {
				return
			}
			raw, err := goquery.OuterHtml(sel)
			if err != nil {
				raw = text
			}
			blocks = append(blocks, lawwatch.ContentBlock{
				Text: text,
				Kind: lawwatch.BlockParagraph,
				Raw:  raw,
			})
		}
	})

	return blocks, nil
}

// tableText flattens a table into one line per row with cells separated
// by " | ".
func tableText(table *goquery.Selection) string {
	var rows []string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, strings.Join(cells, " | "))
		}
	})
	return strings.Join(rows, "\n")
}

// listText flattens a list into one prefixed line per direct item.
// Unordered lists use "- ", ordered lists "• ".
func listText(list *goquery.Selection) string {
	prefix := "- "
	if goquery.NodeName(list) == "ol" {
		prefix = "• "
	}

	var items []string
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if text != "" {
			items = append(items, prefix+text)
		}
	})
	return strings.Join(items, "\n")
}
