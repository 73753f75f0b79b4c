package markup

import (
	"regexp"
	"strings"
)

var orderedItemRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Parse converts structured text into a markup tree. Block-level markers
// (headings, rules, list markers, blockquotes) are evaluated per line
// before inline span substitution. Malformed or unterminated inline
// markup is kept as literal text.
func Parse(text string) []Node {
	var nodes []Node

	flushList := func(list *List) {
		if list != nil && len(list.Items) > 0 {
			nodes = append(nodes, *list)
		}
	}

	var list *List
	for _, line := range strings.Split(text, "\n") {
		if item, ordered, ok := listItem(line); ok {
			if list == nil || list.Ordered != ordered {
				flushList(list)
				list = &List{Ordered: ordered}
			}
			list.Items = append(list.Items, ListItem{Children: parseInline(item)})
			continue
		}
		flushList(list)
		list = nil

		switch {
		case strings.TrimSpace(line) == "":
			nodes = append(nodes, Break{})
		case line == "---":
			nodes = append(nodes, Rule{})
		default:
			if level, rest, ok := headingLine(line); ok {
				nodes = append(nodes, Heading{Level: level, Children: parseInline(rest)})
			} else if quoted, ok := strings.CutPrefix(line, ">"); ok {
				nodes = append(nodes, Blockquote{Children: parseInline(strings.TrimPrefix(quoted, " "))})
			} else {
				nodes = append(nodes, Paragraph{Children: parseInline(line)})
			}
		}
	}
	flushList(list)

	return nodes
}

// headingLine matches a leading run of 1-6 hashes followed by a space.
func headingLine(line string) (level int, rest string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, line[n+1:], true
}

// listItem matches unordered ("- ", "* ") and ordered ("1. ") markers.
func listItem(line string) (text string, ordered bool, ok bool) {
	if rest, found := strings.CutPrefix(line, "- "); found {
		return rest, false, true
	}
	if rest, found := strings.CutPrefix(line, "* "); found {
		return rest, false, true
	}
	if m := orderedItemRe.FindStringSubmatch(line); m != nil {
		return m[2], true, true
	}
	return "", false, false
}

// inline span delimiters, in precedence order. Bold is matched before
// italic so that ** is never read as two empty emphasis markers.
func parseInline(s string) []Node {
	var nodes []Node
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Text{Value: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		if node, width := matchInline(s[i:]); node != nil {
			flushText()
			nodes = append(nodes, node)
			i += width
			continue
		}
		text.WriteByte(s[i])
		i++
	}
	flushText()
	return nodes
}

// matchInline attempts to read one inline span at the start of s. It
// returns the node and consumed width, or (nil, 0) when s does not start
// a well-formed span.
func matchInline(s string) (Node, int) {
	switch {
	case strings.HasPrefix(s, "!["):
		if alt, src, width, ok := bracketPair(s[1:]); ok {
			return Image{Src: src, Alt: alt}, width + 1
		}
	case s[0] == '[':
		if label, href, width, ok := bracketPair(s); ok {
			return Link{Href: href, Children: parseInline(label)}, width
		}
	case strings.HasPrefix(s, "**"):
		if inner, width, ok := delimited(s, "**"); ok {
			return Strong{Children: parseInline(inner)}, width
		}
	case strings.HasPrefix(s, "~~"):
		if inner, width, ok := delimited(s, "~~"); ok {
			return Strikethrough{Children: parseInline(inner)}, width
		}
	case s[0] == '*':
		if inner, width, ok := delimited(s, "*"); ok {
			return Emphasis{Children: parseInline(inner)}, width
		}
	case s[0] == '`':
		if inner, width, ok := delimited(s, "`"); ok {
			return Code{Value: inner}, width
		}
	}
	return nil, 0
}

// delimited reads a non-empty span enclosed by delim at the start of s.
func delimited(s, delim string) (inner string, width int, ok bool) {
	rest := s[len(delim):]
	end := strings.Index(rest, delim)
	if end <= 0 {
		return "", 0, false
	}
	return rest[:end], len(delim)*2 + end, true
}

// bracketPair reads "[first](second)" at the start of s.
func bracketPair(s string) (first, second string, width int, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", "", 0, false
	}
	close := strings.Index(s, "]")
	if close < 0 || close+1 >= len(s) || s[close+1] != '(' {
		return "", "", 0, false
	}
	end := strings.Index(s[close+2:], ")")
	if end < 0 {
		return "", "", 0, false
	}
	return s[1:close], s[close+2 : close+2+end], close + 2 + end + 1, true
}
