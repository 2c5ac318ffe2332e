package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lawwatch"
)

// Selectors and link filters for section home pages.
const (
	mainWrapperSelector = ".edn_mainWrapper"
	chapterPathToken    = "About-Singapore-Law"
	minLinkTitleLength  = 5
)

// Ensure Discoverer implements lawwatch.LinkDiscoverer at compile time.
var _ lawwatch.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer finds chapter links on section home pages.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// DiscoverChapterLinks parses a section page and returns links to the
// chapters it lists. Only anchors inside the first main content wrapper
// qualify, and only when they lead deeper into the legal-reference
// section, differ from the section page itself, and carry a meaningful
// title. Links are returned in document order.
func (d *Discoverer) DiscoverChapterLinks(html, baseURL, section string) ([]lawwatch.ChapterLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, lawwatch.Errorf(lawwatch.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, lawwatch.Errorf(lawwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	wrapper := doc.Find(mainWrapperSelector).First()
	if wrapper.Length() == 0 {
		return nil, lawwatch.Errorf(lawwatch.ENOTFOUND, "no main content wrapper found")
	}

	var links []lawwatch.ChapterLink
	wrapper.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if !strings.Contains(href, chapterPathToken) {
			return
		}

		title := strings.TrimSpace(sel.Text())
		if len(title) <= minLinkTitleLength {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || resolved == baseURL {
			return
		}

		links = append(links, lawwatch.ChapterLink{
			URL:     resolved,
			Title:   title,
			Section: section,
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL. Returns empty
// string if the href cannot be parsed or if the resolved URL is
// self-referential. Fragments are stripped for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}
