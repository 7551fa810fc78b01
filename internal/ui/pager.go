package ui

import (
	"strings"

	"github.com/noborus/ov/oviewer"

	"deckle/internal/domain"
	"deckle/internal/ui/views"
)

// pagerWidth is the layout width used when the document is piped through
// the pager instead of the interactive viewer
const pagerWidth = 100

// ShowInPager renders the document and hands it to the ov pager. This is
// the non-interactive reading mode: no search, no slideshow, just the
// styled document in a scrollable view.
func ShowInPager(doc *domain.Document) error {
	renderer := views.NewRenderer()
	lines, _ := renderer.Document().Layout(doc, pagerWidth)
	reader := strings.NewReader(strings.Join(lines, "\n"))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't replay the document onto the shell on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if doc.Meta.Title != "" {
		root.Doc.Caption = doc.Meta.Title
	}

	return root.Run()
}
