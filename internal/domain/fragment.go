package domain

// FragmentType tags an addressable piece of the document
type FragmentType string

const (
	FragmentSection FragmentType = "section"
	FragmentSpeaker FragmentType = "speaker"
	FragmentConcept FragmentType = "concept"
)

// Fragment is an addressable node of the rendered document. Fragments are
// produced by the content layer and treated as read-only everywhere else.
type Fragment struct {
	ID    string       // stable identifier (heading slug)
	Type  FragmentType
	Title string
	Body  string
	// Parent is the ID of the enclosing section for speaker/concept
	// fragments, empty for sections themselves.
	Parent string
}

// IsSection reports whether the fragment is a top-level document section
func (f Fragment) IsSection() bool {
	return f.Type == FragmentSection
}

// Document is the parsed document: frontmatter metadata plus the ordered
// fragment list.
type Document struct {
	Meta      Meta
	Fragments []Fragment
}

// Meta holds the YAML frontmatter fields of a document
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// Sections returns the section fragments in document order
func (d *Document) Sections() []Fragment {
	var out []Fragment
	for _, f := range d.Fragments {
		if f.IsSection() {
			out = append(out, f)
		}
	}
	return out
}

// FragmentByID resolves an ID against the current fragment list. The bool
// result is false when the fragment is gone (re-rendered content); callers
// treat that as a silent no-op.
func (d *Document) FragmentByID(id string) (Fragment, bool) {
	for _, f := range d.Fragments {
		if f.ID == id {
			return f, true
		}
	}
	return Fragment{}, false
}
