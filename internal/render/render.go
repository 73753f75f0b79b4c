// Package render turns structured text into a styled, read-only
// presentation tree: stable heading identifiers, a static block-to-tag
// style table, and substitution of embedded gallery declarations with
// the interactive gallery component.
package render

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/i-asim/my-portfolio/internal/gallery"
	"github.com/i-asim/my-portfolio/internal/markup"
)

// BlockKind discriminates the presentation block variants.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockImage
	BlockList
	BlockBlockquote
	BlockRule
	BlockGallery
	BlockLiteral
)

// Block is one node of the presentation tree. Which fields are
// populated depends on Kind.
type Block struct {
	Kind BlockKind

	Level  int           // BlockHeading
	ID     string        // BlockHeading: deep-link anchor
	Inline []markup.Node // heading, paragraph, blockquote content

	Ordered bool            // BlockList
	Items   [][]markup.Node // BlockList

	Image *markup.Image // BlockImage

	Gallery *gallery.Gallery // BlockGallery

	Literal string // BlockLiteral: malformed input shown verbatim
}

// Document is the rendered presentation of one structured-text body.
type Document struct {
	Blocks []Block
}

// Render converts structured text to its presentation tree. It never
// fails: malformed component declarations degrade to literal
// paragraphs and unrecognized input renders as plain text.
func Render(text string) *Document {
	doc := &Document{}
	for _, seg := range splitSegments(text) {
		if seg.component {
			g, err := parseGalleryDecl(seg.text)
			if err != nil {
				doc.Blocks = append(doc.Blocks, Block{Kind: BlockLiteral, Literal: seg.text})
				continue
			}
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockGallery, Gallery: g})
			continue
		}
		for _, node := range markup.Parse(seg.text) {
			if blk, ok := blockFor(node); ok {
				doc.Blocks = append(doc.Blocks, blk)
			}
		}
	}
	return doc
}

// blockFor maps a parsed markup node to its presentation block. Break
// nodes carry no content; block spacing comes from the style table.
func blockFor(node markup.Node) (Block, bool) {
	switch n := node.(type) {
	case markup.Heading:
		return Block{
			Kind:   BlockHeading,
			Level:  n.Level,
			ID:     Slugify(markup.PlainText(n.Children)),
			Inline: n.Children,
		}, true
	case markup.Paragraph:
		if img, ok := soleImage(n.Children); ok {
			return Block{Kind: BlockImage, Image: &img}, true
		}
		return Block{Kind: BlockParagraph, Inline: n.Children}, true
	case markup.List:
		items := make([][]markup.Node, len(n.Items))
		for i, item := range n.Items {
			items[i] = item.Children
		}
		return Block{Kind: BlockList, Ordered: n.Ordered, Items: items}, true
	case markup.Blockquote:
		return Block{Kind: BlockBlockquote, Inline: n.Children}, true
	case markup.Rule:
		return Block{Kind: BlockRule}, true
	case markup.Break:
		return Block{}, false
	default:
		return Block{Kind: BlockLiteral, Literal: markup.Render([]markup.Node{node})}, true
	}
}

// soleImage reports whether a paragraph consists of exactly one image,
// which renders as a standalone figure instead of inline content.
func soleImage(inline []markup.Node) (markup.Image, bool) {
	if len(inline) != 1 {
		return markup.Image{}, false
	}
	img, ok := inline[0].(markup.Image)
	return img, ok
}

type segment struct {
	text      string
	component bool
}

const galleryOpen = "<Gallery"

// splitSegments separates gallery component declarations from the
// surrounding structured text. A declaration starts on a line opening
// with the component tag and runs to the line containing its
// self-closing terminator; one left unterminated is passed through as
// plain text.
func splitSegments(text string) []segment {
	lines := strings.Split(text, "\n")
	var segs []segment
	var plain []string

	flush := func() {
		if len(plain) > 0 {
			segs = append(segs, segment{text: strings.Join(plain, "\n")})
			plain = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, galleryOpen) {
			plain = append(plain, lines[i])
			continue
		}
		end, ok := findTerminator(lines, i)
		if !ok {
			plain = append(plain, lines[i])
			continue
		}
		flush()
		segs = append(segs, segment{
			text:      strings.Join(lines[i:end+1], "\n"),
			component: true,
		})
		i = end
	}
	flush()
	return segs
}

func findTerminator(lines []string, start int) (int, bool) {
	for i := start; i < len(lines); i++ {
		if strings.Contains(lines[i], "/>") {
			return i, true
		}
	}
	return 0, false
}

var errMissingItems = errors.New("gallery declaration missing items attribute")

var (
	columnsAttrRe = regexp.MustCompile(`columns=\{(\d+)\}`)
	gapAttrRe     = regexp.MustCompile(`gap="([^"]*)"`)
	boolAttrRe    = regexp.MustCompile(`(showTitles|showDescriptions|enableLightbox)(?:=\{(true|false)\})?`)
)

// parseGalleryDecl parses one component declaration into a validated
// gallery. The item list is JSON and is passed through unmodified; any
// syntax or validation failure surfaces as an error so the caller can
// degrade to literal text.
func parseGalleryDecl(decl string) (*gallery.Gallery, error) {
	itemsJSON, err := extractItemsAttr(decl)
	if err != nil {
		return nil, err
	}
	var items []gallery.Item
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, err
	}

	cfg := gallery.DefaultConfig()
	if m := columnsAttrRe.FindStringSubmatch(decl); m != nil {
		cfg.Columns, _ = strconv.Atoi(m[1])
	}
	if m := gapAttrRe.FindStringSubmatch(decl); m != nil {
		cfg.Gap = m[1]
	}
	for _, m := range boolAttrRe.FindAllStringSubmatch(decl, -1) {
		value := m[2] != "false"
		switch m[1] {
		case "showTitles":
			cfg.ShowTitles = value
		case "showDescriptions":
			cfg.ShowDescriptions = value
		case "enableLightbox":
			cfg.EnableLightbox = value
		}
	}
	return gallery.New(items, cfg)
}

// extractItemsAttr pulls the JSON array out of the items={...}
// attribute by scanning to the bracket-balanced end, since the array
// nests objects freely.
func extractItemsAttr(decl string) (string, error) {
	const marker = "items={"
	start := strings.Index(decl, marker)
	if start < 0 {
		return "", errMissingItems
	}
	rest := decl[start+len(marker):]
	depth := 0
	inString := false
	for i, r := range rest {
		switch {
		case inString:
			if r == '"' && (i == 0 || rest[i-1] != '\\') {
				inString = false
			}
		case r == '"':
			inString = true
		case r == '{' || r == '[':
			depth++
		case r == ']' || r == '}':
			if depth == 0 {
				return rest[:i], nil
			}
			depth--
		}
	}
	return "", errMissingItems
}
