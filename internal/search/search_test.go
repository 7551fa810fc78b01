package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckle/internal/domain"
)

func testFragments() []domain.Fragment {
	return []domain.Fragment{
		{ID: "intro", Type: domain.FragmentSection, Title: "Intro", Body: "welcome"},
		{ID: "dan-shipper", Type: domain.FragmentSpeaker, Title: "Dan Shipper", Body: "CEO of Every", Parent: "speakers"},
		{ID: "tina-he", Type: domain.FragmentSpeaker, Title: "Tina He", Body: "Product lead", Parent: "speakers"},
		{ID: "vibe-coding", Type: domain.FragmentConcept, Title: "Vibe Coding", Body: "Letting the model drive", Parent: "concepts"},
	}
}

func TestBuildIndexesOnlySpeakersAndConcepts(t *testing.T) {
	index := Build(testFragments())
	require.Len(t, index, 3)
	for _, e := range index {
		assert.NotEqual(t, domain.FragmentSection, e.Type)
	}
	// Index preserves document order
	assert.Equal(t, "dan-shipper", index[0].ID)
	assert.Equal(t, "tina-he", index[1].ID)
	assert.Equal(t, "vibe-coding", index[2].ID)
}

func TestBuildEmptyFields(t *testing.T) {
	index := Build([]domain.Fragment{{ID: "x", Type: domain.FragmentConcept}})
	require.Len(t, index, 1)
	assert.Equal(t, "", index[0].Title)
	assert.Equal(t, "", index[0].Content)
}

func TestSearchShortQueriesReturnNothing(t *testing.T) {
	index := Build(testFragments())
	for _, q := range []string{"", "v", " v ", "  ", "\t x \n"} {
		assert.Empty(t, Search(index, q), "query %q", q)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	index := Build(testFragments())

	// Scenario from the original page: "vi" hits only the Vibe Coding concept
	matches := Search(index, "vi")
	require.Len(t, matches, 1)
	assert.Equal(t, "vibe-coding", matches[0].ID)
	assert.Equal(t, domain.FragmentConcept, matches[0].Type)

	matches = Search(index, "SHIPPER")
	require.Len(t, matches, 1)
	assert.Equal(t, "dan-shipper", matches[0].ID)

	// Matches against body content too
	matches = Search(index, "product")
	require.Len(t, matches, 1)
	assert.Equal(t, "tina-he", matches[0].ID)
}

func TestSearchPreservesIndexOrder(t *testing.T) {
	index := []Entry{
		{ID: "c", Title: "cc", Content: "shared term"},
		{ID: "a", Title: "aa", Content: "shared term"},
		{ID: "b", Title: "bb", Content: "shared term"},
	}
	matches := Search(index, "shared")
	require.Len(t, matches, 3)
	assert.Equal(t, "c", matches[0].ID)
	assert.Equal(t, "a", matches[1].ID)
	assert.Equal(t, "b", matches[2].ID)

	for _, m := range matches {
		assert.Contains(t, strings.ToLower(m.Title+" "+m.Content), "shared")
	}
}

func TestSearchNoMatches(t *testing.T) {
	index := Build(testFragments())
	assert.Empty(t, Search(index, "zzzzzz"))
}

func TestHighlightEmptyQueryIsIdentity(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }
	assert.Equal(t, "hello world", Highlight("hello world", "", mark))
}

func TestHighlightWrapsMatches(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }
	assert.Equal(t, "[Vibe] coding is a [vibe]", Highlight("Vibe coding is a vibe", "vibe", mark))
}

func TestHighlightRegexMetacharactersAreLiteral(t *testing.T) {
	mark := func(s string) string { return "<" + s + ">" }
	metas := []string{".", "*", "+", "?", "^", "$", "{", "}", "(", ")", "|", "[", "]", "\\", "a.b", "(x)"}
	for _, q := range metas {
		assert.NotPanics(t, func() {
			Highlight("sample (x) a.b [text]", q, mark)
		}, "query %q", q)
	}
	// The dot matches only a literal dot, not any character
	assert.Equal(t, "a<.>b acb", Highlight("a.b acb", ".", mark))
}
