package markup

import (
	"fmt"
	"strings"
)

// Render serializes a markup tree back to structured text. Ordered lists
// are renumbered from 1, blockquote markers are re-applied to every
// non-empty quoted line, runs of blank lines collapse to one, and the
// whole document is trimmed.
func Render(nodes []Node) string {
	var lines []string

	for _, n := range nodes {
		switch v := n.(type) {
		case Break:
			lines = append(lines, "")
		case Rule:
			lines = append(lines, "---")
		case Heading:
			lines = append(lines, strings.Repeat("#", v.Level)+" "+renderInline(v.Children))
		case Paragraph:
			lines = append(lines, renderInline(v.Children))
		case Blockquote:
			for _, line := range strings.Split(renderInline(v.Children), "\n") {
				if strings.TrimSpace(line) == "" {
					lines = append(lines, "")
				} else {
					lines = append(lines, "> "+line)
				}
			}
		case List:
			for i, item := range v.Items {
				if v.Ordered {
					lines = append(lines, fmt.Sprintf("%d. %s", i+1, renderInline(item.Children)))
				} else {
					lines = append(lines, "- "+renderInline(item.Children))
				}
			}
		case ListItem:
			lines = append(lines, "- "+renderInline(v.Children))
		default:
			// Inline node at top level; keep its text.
			lines = append(lines, renderInline([]Node{n}))
		}
	}

	return collapseBlankLines(lines)
}

func renderInline(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case Text:
			b.WriteString(v.Value)
		case Strong:
			b.WriteString("**" + renderInline(v.Children) + "**")
		case Emphasis:
			b.WriteString("*" + renderInline(v.Children) + "*")
		case Strikethrough:
			b.WriteString("~~" + renderInline(v.Children) + "~~")
		case Code:
			b.WriteString("`" + v.Value + "`")
		case Link:
			b.WriteString("[" + renderInline(v.Children) + "](" + v.Href + ")")
		case Image:
			b.WriteString("![" + v.Alt + "](" + v.Src + ")")
		default:
			// Block node inside an inline context; degrade to its text.
			b.WriteString(PlainText([]Node{n}))
		}
	}
	return b.String()
}

// collapseBlankLines joins lines, squeezing every blank run down to a
// single blank line and trimming the document edges.
func collapseBlankLines(lines []string) string {
	var out []string
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// PlainText extracts the unformatted text content of a tree, used for
// deriving heading identifiers.
func PlainText(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case Text:
			b.WriteString(v.Value)
		case Code:
			b.WriteString(v.Value)
		case Image:
			b.WriteString(v.Alt)
		case Heading:
			b.WriteString(PlainText(v.Children))
		case Paragraph:
			b.WriteString(PlainText(v.Children))
		case Strong:
			b.WriteString(PlainText(v.Children))
		case Emphasis:
			b.WriteString(PlainText(v.Children))
		case Strikethrough:
			b.WriteString(PlainText(v.Children))
		case Link:
			b.WriteString(PlainText(v.Children))
		case Blockquote:
			b.WriteString(PlainText(v.Children))
		case ListItem:
			b.WriteString(PlainText(v.Children))
		case List:
			for _, item := range v.Items {
				b.WriteString(PlainText(item.Children))
			}
		}
	}
	return b.String()
}
