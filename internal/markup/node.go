// Package markup converts between the structured-text dialect used for
// stored blog bodies and a typed node tree suitable for editing. Both
// directions are best-effort: round-tripping may normalize formatting
// (list numbering, blank-line runs) but never drops content.
package markup

// Node is the sealed interface implemented by every markup tree variant.
// Conversion code switches exhaustively over these types; adding a
// variant means updating Parse, Render, and ToHTML.
type Node interface {
	node()
}

// Text is a literal text run.
type Text struct {
	Value string
}

// Heading is a level 1-6 heading.
type Heading struct {
	Level    int
	Children []Node
}

// Paragraph is a line of body text.
type Paragraph struct {
	Children []Node
}

// Strong is bold text (double-asterisk delimited).
type Strong struct {
	Children []Node
}

// Emphasis is italic text (single-asterisk delimited).
type Emphasis struct {
	Children []Node
}

// Strikethrough is struck text (double-tilde delimited).
type Strikethrough struct {
	Children []Node
}

// Code is an inline code span. Content is literal: no nested markup.
type Code struct {
	Value string
}

// Link is a hyperlink with an inline label.
type Link struct {
	Href     string
	Children []Node
}

// Image is an embedded image reference.
type Image struct {
	Src string
	Alt string
}

// List is an ordered or unordered list of items.
type List struct {
	Ordered bool
	Items   []ListItem
}

// ListItem is a single list entry.
type ListItem struct {
	Children []Node
}

// Blockquote is one quoted line. Consecutive quoted lines parse to
// consecutive Blockquote nodes.
type Blockquote struct {
	Children []Node
}

// Rule is a horizontal rule (a line of exactly three hyphens).
type Rule struct{}

// Break is a blank line between blocks.
type Break struct{}

func (Text) node()          {}
func (Heading) node()       {}
func (Paragraph) node()     {}
func (Strong) node()        {}
func (Emphasis) node()      {}
func (Strikethrough) node() {}
func (Code) node()          {}
func (Link) node()          {}
func (Image) node()         {}
func (List) node()          {}
func (ListItem) node()      {}
func (Blockquote) node()    {}
func (Rule) node()          {}
func (Break) node()         {}
