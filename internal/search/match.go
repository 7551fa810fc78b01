package search

import (
	"regexp"
	"strings"
)

// MinQueryLen is the trimmed length below which a query is treated as
// "not yet a search" and yields no results.
const MinQueryLen = 2

// Search returns the entries whose title+content contains the query,
// case-insensitively. The result preserves index order (stable filter, no
// ranking). Queries shorter than MinQueryLen after trimming return nil.
func Search(index []Entry, query string) []Entry {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinQueryLen {
		return nil
	}
	q = strings.ToLower(q)

	var matches []Entry
	for _, e := range index {
		haystack := strings.ToLower(e.Title + " " + e.Content)
		if strings.Contains(haystack, q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Highlight wraps every case-insensitive occurrence of query in text with
// mark. Regex metacharacters in query are quoted first, so any literal
// input is safe. An empty query returns text unchanged.
func Highlight(text, query string, mark func(string) string) string {
	if query == "" {
		return text
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		// QuoteMeta makes this unreachable; keep the text intact anyway
		return text
	}
	return re.ReplaceAllStringFunc(text, mark)
}
