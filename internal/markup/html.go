package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// ToHTML serializes a markup tree to the HTML fragment loaded into the
// rich-text edit surface. This is the editable representation, not the
// styled view: tags are bare so the host's native edit commands can
// manipulate them.
func ToHTML(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case Break:
			b.WriteString("<br>")
		case Rule:
			b.WriteString("<hr>")
		case Heading:
			fmt.Fprintf(&b, "<h%d>%s</h%d>", v.Level, inlineHTML(v.Children), v.Level)
		case Paragraph:
			b.WriteString("<p>" + inlineHTML(v.Children) + "</p>")
		case Blockquote:
			b.WriteString("<blockquote>" + inlineHTML(v.Children) + "</blockquote>")
		case List:
			tag := "ul"
			if v.Ordered {
				tag = "ol"
			}
			b.WriteString("<" + tag + ">")
			for _, item := range v.Items {
				b.WriteString("<li>" + inlineHTML(item.Children) + "</li>")
			}
			b.WriteString("</" + tag + ">")
		default:
			b.WriteString(inlineHTML([]Node{n}))
		}
	}
	return b.String()
}

func inlineHTML(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case Text:
			b.WriteString(v.Value)
		case Strong:
			b.WriteString("<strong>" + inlineHTML(v.Children) + "</strong>")
		case Emphasis:
			b.WriteString("<em>" + inlineHTML(v.Children) + "</em>")
		case Strikethrough:
			b.WriteString("<s>" + inlineHTML(v.Children) + "</s>")
		case Code:
			b.WriteString("<code>" + v.Value + "</code>")
		case Link:
			b.WriteString(`<a href="` + v.Href + `">` + inlineHTML(v.Children) + "</a>")
		case Image:
			b.WriteString(`<img src="` + v.Src + `" alt="` + v.Alt + `">`)
		default:
			b.WriteString(PlainText([]Node{n}))
		}
	}
	return b.String()
}

// FromHTML converts an edited HTML fragment back into a markup tree via
// the structured-text form.
func FromHTML(html string) []Node {
	return Parse(StructuredFromHTML(html))
}

// Regex-based HTML conversion. Deliberately a flat substitution pass, not
// a tree walk: nested or overlapping tags beyond the supported set are
// stripped rather than preserved. Unsupported rich formatting degrades by
// dropping attributes, never by corrupting the document.
var (
	hTagRe          [7]*regexp.Regexp
	strongRe        = regexp.MustCompile(`(?is)<(?:strong|b)[^>]*>(.*?)</(?:strong|b)>`)
	emRe            = regexp.MustCompile(`(?is)<(?:em|i)[^>]*>(.*?)</(?:em|i)>`)
	strikeRe        = regexp.MustCompile(`(?is)<s[^>]*>(.*?)</s>`)
	codeRe          = regexp.MustCompile(`(?is)<code[^>]*>(.*?)</code>`)
	paraRe          = regexp.MustCompile(`(?is)<(?:p|div)[^>]*>(.*?)</(?:p|div)>`)
	brRe            = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockquoteRe    = regexp.MustCompile(`(?is)<blockquote[^>]*>(.*?)</blockquote>`)
	ulRe            = regexp.MustCompile(`(?is)<ul[^>]*>(.*?)</ul>`)
	olRe            = regexp.MustCompile(`(?is)<ol[^>]*>(.*?)</ol>`)
	liRe            = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	anchorRe        = regexp.MustCompile(`(?is)<a[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	imgAltRe        = regexp.MustCompile(`(?i)<img[^>]*src="([^"]*)"[^>]*alt="([^"]*)"[^>]*/?>`)
	imgRe           = regexp.MustCompile(`(?i)<img[^>]*src="([^"]*)"[^>]*/?>`)
	anyTagRe        = regexp.MustCompile(`<[^>]*>`)
	excessNewlineRe = regexp.MustCompile(`\n\s*\n\s*\n`)
)

func init() {
	for level := 1; level <= 6; level++ {
		hTagRe[level] = regexp.MustCompile(fmt.Sprintf(`(?is)<h%d[^>]*>(.*?)</h%d>`, level, level))
	}
}

// StructuredFromHTML converts an HTML fragment to structured text using a
// best-effort regular-expression pass.
func StructuredFromHTML(html string) string {
	s := html

	for level := 1; level <= 6; level++ {
		s = hTagRe[level].ReplaceAllString(s, "\n"+strings.Repeat("#", level)+" $1\n")
	}

	s = strongRe.ReplaceAllString(s, "**$1**")
	s = emRe.ReplaceAllString(s, "*$1*")
	s = strikeRe.ReplaceAllString(s, "~~$1~~")
	s = codeRe.ReplaceAllString(s, "`$1`")

	s = blockquoteRe.ReplaceAllStringFunc(s, func(m string) string {
		content := blockquoteRe.FindStringSubmatch(m)[1]
		var out []string
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) != "" {
				out = append(out, "> "+strings.TrimSpace(line))
			}
		}
		return "\n" + strings.Join(out, "\n") + "\n"
	})

	s = ulRe.ReplaceAllStringFunc(s, func(m string) string {
		return "\n" + replaceItems(ulRe.FindStringSubmatch(m)[1], false) + "\n"
	})
	s = olRe.ReplaceAllStringFunc(s, func(m string) string {
		return "\n" + replaceItems(olRe.FindStringSubmatch(m)[1], true) + "\n"
	})

	s = paraRe.ReplaceAllString(s, "\n$1\n")
	s = brRe.ReplaceAllString(s, "\n")

	s = anchorRe.ReplaceAllString(s, "[$2]($1)")
	s = imgAltRe.ReplaceAllString(s, "![$2]($1)")
	s = imgRe.ReplaceAllString(s, "![]($1)")

	s = anyTagRe.ReplaceAllString(s, "")
	s = excessNewlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func replaceItems(content string, ordered bool) string {
	var out []string
	for i, m := range liRe.FindAllStringSubmatch(content, -1) {
		text := strings.TrimSpace(m[1])
		if ordered {
			out = append(out, fmt.Sprintf("%d. %s", i+1, text))
		} else {
			out = append(out, "- "+text)
		}
	}
	return strings.Join(out, "\n")
}
