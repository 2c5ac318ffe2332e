package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatChars formats a character count in human-readable form.
func FormatChars(chars int) string {
	if chars < 1000 {
		return fmt.Sprintf("%d chars", chars)
	}
	return fmt.Sprintf("%dk chars", (chars+500)/1000)
}
