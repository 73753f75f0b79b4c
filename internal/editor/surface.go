package editor

import (
	"fmt"
	"strconv"

	"github.com/i-asim/my-portfolio/internal/markup"
)

// BlockSurface is the default Surface implementation: an in-memory
// markup tree with a current-block cursor. Formatting commands act on
// the focused block, the headless analog of the browser's caret block.
// Undo and redo are snapshot stacks, cleared on Load.
type BlockSurface struct {
	nodes []markup.Node
	focus int
	undo  []string
	redo  []string
}

// NewBlockSurface returns an empty surface.
func NewBlockSurface() *BlockSurface {
	return &BlockSurface{}
}

// Load replaces the content and resets cursor and history.
func (s *BlockSurface) Load(html string) {
	s.nodes = markup.FromHTML(html)
	s.focus = 0
	s.undo = nil
	s.redo = nil
}

// HTML returns the current content as an HTML fragment.
func (s *BlockSurface) HTML() string {
	return markup.ToHTML(s.nodes)
}

// Focus moves the block cursor. Out-of-range indexes clamp.
func (s *BlockSurface) Focus(i int) {
	if i < 0 {
		i = 0
	}
	if n := len(s.nodes); i >= n && n > 0 {
		i = n - 1
	}
	s.focus = i
}

// InsertText appends a paragraph after the focused block and moves the
// cursor to it, emulating typing a new line.
func (s *BlockSurface) InsertText(text string) {
	s.snapshot()
	var node markup.Node = markup.Paragraph{}
	if parsed := markup.Parse(text); len(parsed) > 0 {
		node = parsed[0]
	}
	if len(s.nodes) == 0 {
		s.nodes = []markup.Node{node}
		s.focus = 0
		return
	}
	at := s.focus + 1
	s.nodes = append(s.nodes[:at:at], append([]markup.Node{node}, s.nodes[at:]...)...)
	s.focus = at
}

// Exec applies a formatting command to the focused block.
func (s *BlockSurface) Exec(cmd Command, value string) error {
	switch cmd {
	case CmdUndo:
		if len(s.undo) == 0 {
			return nil
		}
		s.redo = append(s.redo, s.serialize())
		s.restore(s.undo[len(s.undo)-1])
		s.undo = s.undo[:len(s.undo)-1]
		return nil
	case CmdRedo:
		if len(s.redo) == 0 {
			return nil
		}
		s.undo = append(s.undo, s.serialize())
		s.restore(s.redo[len(s.redo)-1])
		s.redo = s.redo[:len(s.redo)-1]
		return nil
	}

	if len(s.nodes) == 0 {
		s.nodes = []markup.Node{markup.Paragraph{}}
		s.focus = 0
	}
	s.snapshot()
	s.redo = nil

	block := s.nodes[s.focus]
	switch cmd {
	case CmdBold:
		s.nodes[s.focus] = wrapInline(block, func(c []markup.Node) markup.Node { return markup.Strong{Children: c} })
	case CmdItalic:
		s.nodes[s.focus] = wrapInline(block, func(c []markup.Node) markup.Node { return markup.Emphasis{Children: c} })
	case CmdStrikethrough:
		s.nodes[s.focus] = wrapInline(block, func(c []markup.Node) markup.Node { return markup.Strikethrough{Children: c} })
	case CmdHeading:
		level, err := strconv.Atoi(value)
		if err != nil || level < 1 || level > 6 {
			return fmt.Errorf("editor: invalid heading level %q", value)
		}
		s.nodes[s.focus] = markup.Heading{Level: level, Children: inlineOf(block)}
	case CmdUnorderedList:
		s.nodes[s.focus] = toggleList(block, false)
	case CmdOrderedList:
		s.nodes[s.focus] = toggleList(block, true)
	case CmdBlockquote:
		if _, ok := block.(markup.Blockquote); ok {
			s.nodes[s.focus] = markup.Paragraph{Children: inlineOf(block)}
		} else {
			s.nodes[s.focus] = markup.Blockquote{Children: inlineOf(block)}
		}
	case CmdInsertLink:
		children := append(inlineOf(block), markup.Link{Href: value, Children: []markup.Node{markup.Text{Value: value}}})
		s.nodes[s.focus] = rebuild(block, children)
	case CmdInsertImage:
		children := append(inlineOf(block), markup.Image{Src: value})
		s.nodes[s.focus] = rebuild(block, children)
	default:
		return fmt.Errorf("editor: unknown command %q", cmd)
	}
	return nil
}

func (s *BlockSurface) snapshot() {
	s.undo = append(s.undo, s.serialize())
}

func (s *BlockSurface) serialize() string {
	return markup.Render(s.nodes)
}

func (s *BlockSurface) restore(structured string) {
	s.nodes = markup.Parse(structured)
	if s.focus >= len(s.nodes) {
		s.focus = 0
	}
}

// inlineOf flattens a block to its inline children.
func inlineOf(block markup.Node) []markup.Node {
	switch v := block.(type) {
	case markup.Paragraph:
		return v.Children
	case markup.Heading:
		return v.Children
	case markup.Blockquote:
		return v.Children
	case markup.List:
		var out []markup.Node
		for _, item := range v.Items {
			out = append(out, item.Children...)
		}
		return out
	default:
		return []markup.Node{block}
	}
}

// wrapInline wraps the block's inline content in a span constructor, or
// unwraps when the content is already a single span of that shape.
func wrapInline(block markup.Node, wrap func([]markup.Node) markup.Node) markup.Node {
	children := inlineOf(block)
	if len(children) == 1 {
		switch wrap(nil).(type) {
		case markup.Strong:
			if v, ok := children[0].(markup.Strong); ok {
				return rebuild(block, v.Children)
			}
		case markup.Emphasis:
			if v, ok := children[0].(markup.Emphasis); ok {
				return rebuild(block, v.Children)
			}
		case markup.Strikethrough:
			if v, ok := children[0].(markup.Strikethrough); ok {
				return rebuild(block, v.Children)
			}
		}
	}
	return rebuild(block, []markup.Node{wrap(children)})
}

// rebuild keeps the block's shape but replaces its inline content.
func rebuild(block markup.Node, children []markup.Node) markup.Node {
	switch v := block.(type) {
	case markup.Heading:
		return markup.Heading{Level: v.Level, Children: children}
	case markup.Blockquote:
		return markup.Blockquote{Children: children}
	default:
		return markup.Paragraph{Children: children}
	}
}

// toggleList converts the block to a one-item list of the requested
// kind, switches kind in place, or unwraps back to a paragraph.
func toggleList(block markup.Node, ordered bool) markup.Node {
	if list, ok := block.(markup.List); ok {
		if list.Ordered == ordered {
			return markup.Paragraph{Children: inlineOf(list)}
		}
		return markup.List{Ordered: ordered, Items: list.Items}
	}
	return markup.List{Ordered: ordered, Items: []markup.ListItem{{Children: inlineOf(block)}}}
}
