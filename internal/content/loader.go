// Package content is the document side of the viewer: it parses a markdown
// talk page into the read-only fragment tree the UI navigates, and watches
// the file so edits show up without restarting.
package content

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"deckle/internal/domain"
)

// Heading levels that become fragments: level 2 opens a section, level 3
// inside a card section opens a speaker/concept card.
const (
	sectionLevel = 2
	cardLevel    = 3
)

// Section slugs whose level-3 headings become typed cards
var cardSections = map[string]domain.FragmentType{
	"speakers": domain.FragmentSpeaker,
	"concepts": domain.FragmentConcept,
	"glossary": domain.FragmentConcept,
}

// Load reads and parses the document at path
func Load(path string) (*domain.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(src)
}

// Parse turns markdown source into a Document: YAML frontmatter into Meta,
// level-2 headings into sections, level-3 headings under the speakers and
// concepts sections into cards, and everything else into the body text of
// whatever fragment is open. Fragment IDs are heading slugs, deduplicated
// so the index invariant (unique IDs) holds even for repeated headings.
func Parse(src []byte) (*domain.Document, error) {
	doc := &domain.Document{}

	body, err := splitFrontmatter(src, &doc.Meta)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(body))

	seen := make(map[string]int)
	var frags []*domain.Fragment // appended at open time to keep document order
	var section *domain.Fragment // last opened section
	var card *domain.Fragment    // last opened card within section

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, isHeading := n.(*ast.Heading)
		switch {
		case isHeading && h.Level <= sectionLevel:
			card = nil
			section = nil
			if h.Level == sectionLevel {
				title := nodeText(h, body)
				section = &domain.Fragment{
					ID:    uniqueSlug(title, seen),
					Type:  domain.FragmentSection,
					Title: title,
				}
				frags = append(frags, section)
			}
			// A level-1 heading is the document title; frontmatter wins
			// when both are present
			if h.Level == 1 && doc.Meta.Title == "" {
				doc.Meta.Title = nodeText(h, body)
			}

		case isHeading && h.Level == cardLevel && section != nil:
			card = nil
			if kind, ok := cardSections[section.ID]; ok {
				title := nodeText(h, body)
				card = &domain.Fragment{
					ID:     uniqueSlug(title, seen),
					Type:   kind,
					Title:  title,
					Parent: section.ID,
				}
				frags = append(frags, card)
			} else {
				// Plain subheading: part of the section text
				appendBody(section, nodeText(h, body))
			}

		default:
			txt := blockText(n, body)
			if txt == "" {
				continue
			}
			if card != nil {
				appendBody(card, txt)
			} else if section != nil {
				appendBody(section, txt)
			}
		}
	}

	for _, f := range frags {
		f.Body = strings.TrimSpace(f.Body)
		doc.Fragments = append(doc.Fragments, *f)
	}

	return doc, nil
}

// splitFrontmatter peels an optional leading "---" YAML block off src and
// decodes it into meta, returning the markdown remainder
func splitFrontmatter(src []byte, meta *domain.Meta) ([]byte, error) {
	delim := []byte("---")
	if !bytes.HasPrefix(src, delim) {
		return src, nil
	}
	rest := src[len(delim):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return src, nil
	}
	rest = rest[1:]

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return src, nil
	}
	block := rest[:end]
	if err := yaml.Unmarshal(block, meta); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body := rest[end+len("\n---"):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return body, nil
}

func appendBody(f *domain.Fragment, txt string) {
	if f.Body != "" {
		f.Body += "\n\n"
	}
	f.Body += txt
}

// blockText extracts the plain text of one top-level block node
func blockText(n ast.Node, src []byte) string {
	if cb, ok := n.(*ast.FencedCodeBlock); ok {
		var b strings.Builder
		for i := 0; i < cb.Lines().Len(); i++ {
			seg := cb.Lines().At(i)
			b.Write(seg.Value(src))
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return strings.TrimSpace(nodeText(n, src))
}

// nodeText collects the text segments beneath a node, flattening soft
// line breaks to spaces
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// uniqueSlug turns a heading title into a stable fragment ID, suffixing
// repeats so IDs stay unique across the document
func uniqueSlug(title string, seen map[string]int) string {
	slug := Slugify(title)
	seen[slug]++
	if seen[slug] > 1 {
		return fmt.Sprintf("%s-%d", slug, seen[slug])
	}
	return slug
}

// Slugify lowercases a title and collapses runs of non-alphanumerics to
// single dashes
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
