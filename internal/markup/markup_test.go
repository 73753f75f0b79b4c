package markup

import (
	"strings"
	"testing"
)

func TestParse_Headings(t *testing.T) {
	nodes := Parse("# One\n### Three\n###### Six\n####### Seven hashes")
	if len(nodes) != 4 {
		t.Fatalf("len(nodes) = %d, want 4", len(nodes))
	}
	h1, ok := nodes[0].(Heading)
	if !ok || h1.Level != 1 {
		t.Errorf("nodes[0] = %#v, want level-1 heading", nodes[0])
	}
	h3, ok := nodes[1].(Heading)
	if !ok || h3.Level != 3 {
		t.Errorf("nodes[1] = %#v, want level-3 heading", nodes[1])
	}
	h6, ok := nodes[2].(Heading)
	if !ok || h6.Level != 6 {
		t.Errorf("nodes[2] = %#v, want level-6 heading", nodes[2])
	}
	// Seven hashes is not a heading.
	if _, ok := nodes[3].(Paragraph); !ok {
		t.Errorf("nodes[3] = %#v, want paragraph", nodes[3])
	}
}

func TestParse_Rule(t *testing.T) {
	nodes := Parse("---")
	if len(nodes) != 1 {
		t.Fatalf("len = %d", len(nodes))
	}
	if _, ok := nodes[0].(Rule); !ok {
		t.Errorf("nodes[0] = %#v, want rule", nodes[0])
	}
	// Four hyphens is plain text.
	nodes = Parse("----")
	if _, ok := nodes[0].(Paragraph); !ok {
		t.Errorf("'----' parsed as %#v, want paragraph", nodes[0])
	}
}

func TestParse_InlineSpans(t *testing.T) {
	nodes := Parse("Some **bold** and *italic* and ~~struck~~ and `code`.")
	p, ok := nodes[0].(Paragraph)
	if !ok {
		t.Fatalf("nodes[0] = %#v", nodes[0])
	}
	var kinds []string
	for _, c := range p.Children {
		switch c.(type) {
		case Strong:
			kinds = append(kinds, "strong")
		case Emphasis:
			kinds = append(kinds, "em")
		case Strikethrough:
			kinds = append(kinds, "strike")
		case Code:
			kinds = append(kinds, "code")
		}
	}
	want := []string{"strong", "em", "strike", "code"}
	if len(kinds) != len(want) {
		t.Fatalf("span kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestParse_BoldBeforeItalic(t *testing.T) {
	nodes := Parse("**bold** then *it*")
	p := nodes[0].(Paragraph)
	if _, ok := p.Children[0].(Strong); !ok {
		t.Errorf("first span = %#v, want Strong", p.Children[0])
	}
}

func TestParse_NestedInline(t *testing.T) {
	nodes := Parse("**bold with *italic* inside**")
	p := nodes[0].(Paragraph)
	strong, ok := p.Children[0].(Strong)
	if !ok {
		t.Fatalf("children[0] = %#v", p.Children[0])
	}
	foundEm := false
	for _, c := range strong.Children {
		if _, ok := c.(Emphasis); ok {
			foundEm = true
		}
	}
	if !foundEm {
		t.Error("nested emphasis not parsed inside bold")
	}
}

func TestParse_LinksAndImages(t *testing.T) {
	nodes := Parse("See [docs](https://example.com) and ![alt text](/img.png).")
	p := nodes[0].(Paragraph)
	var link *Link
	var img *Image
	for _, c := range p.Children {
		switch v := c.(type) {
		case Link:
			link = &v
		case Image:
			img = &v
		}
	}
	if link == nil || link.Href != "https://example.com" {
		t.Errorf("link = %#v", link)
	}
	if img == nil || img.Src != "/img.png" || img.Alt != "alt text" {
		t.Errorf("image = %#v", img)
	}
}

func TestParse_UnterminatedStaysLiteral(t *testing.T) {
	for _, input := range []string{
		"unterminated **bold here",
		"dangling [label](no close",
		"lonely `backtick",
	} {
		nodes := Parse(input)
		p, ok := nodes[0].(Paragraph)
		if !ok {
			t.Fatalf("%q parsed as %#v", input, nodes[0])
		}
		if got := renderInline(p.Children); got != input {
			t.Errorf("literal mismatch: got %q, want %q", got, input)
		}
	}
}

func TestParse_Lists(t *testing.T) {
	nodes := Parse("- one\n- two\n* three\n\n1. first\n7. second")
	// Unordered items group into one list despite mixed -/* markers.
	ul, ok := nodes[0].(List)
	if !ok || ul.Ordered {
		t.Fatalf("nodes[0] = %#v, want unordered list", nodes[0])
	}
	if len(ul.Items) != 3 {
		t.Errorf("unordered items = %d, want 3", len(ul.Items))
	}
	var ol List
	for _, n := range nodes[1:] {
		if l, ok := n.(List); ok && l.Ordered {
			ol = l
		}
	}
	if len(ol.Items) != 2 {
		t.Errorf("ordered items = %d, want 2", len(ol.Items))
	}
}

func TestParse_Blockquote(t *testing.T) {
	nodes := Parse("> quoted line\n>bare marker")
	if len(nodes) != 2 {
		t.Fatalf("len = %d", len(nodes))
	}
	for i, n := range nodes {
		if _, ok := n.(Blockquote); !ok {
			t.Errorf("nodes[%d] = %#v, want blockquote", i, n)
		}
	}
	bq := nodes[0].(Blockquote)
	if PlainText(bq.Children) != "quoted line" {
		t.Errorf("quoted text = %q", PlainText(bq.Children))
	}
}

func TestRender_OrderedListRenumbers(t *testing.T) {
	list := List{Ordered: true, Items: []ListItem{
		{Children: []Node{Text{Value: "a"}}},
		{Children: []Node{Text{Value: "b"}}},
		{Children: []Node{Text{Value: "c"}}},
	}}
	got := Render([]Node{list})
	want := "1. a\n2. b\n3. c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_StaleNumberingNormalized(t *testing.T) {
	got := Render(Parse("3. x\n9. y\n1. z"))
	want := "1. x\n2. y\n3. z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_BlockquoteMultiline(t *testing.T) {
	bq := Blockquote{Children: []Node{Text{Value: "first\nsecond"}}}
	got := Render([]Node{bq})
	want := "> first\n> second"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_CollapsesBlankRuns(t *testing.T) {
	got := Render(Parse("a\n\n\n\n\nb"))
	want := "a\n\nb"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_TrimsDocumentEdges(t *testing.T) {
	got := Render(Parse("\n\ntext\n\n"))
	if got != "text" {
		t.Errorf("got %q, want %q", got, "text")
	}
}

func TestRoundTrip_SupportedConstructs(t *testing.T) {
	docs := []string{
		"# Title\n\nSome **bold** text.",
		"## Sub *heading*\n\n- one\n- two\n\n1. first\n2. second",
		"> quote line one\n> quote line two\n\nPlain text with `code` and ~~strike~~.",
		"[link](https://x.dev) and ![pic](/p.jpg)\n\n---\n\n###### deep",
	}
	for _, doc := range docs {
		got := Render(Parse(doc))
		if got != doc {
			t.Errorf("round trip changed document:\ngot  %q\nwant %q", got, doc)
		}
	}
}

func TestToHTML(t *testing.T) {
	html := ToHTML(Parse("# Hi\n\nSome **bold** and [a](https://x.dev)."))
	for _, want := range []string{
		"<h1>Hi</h1>",
		"<strong>bold</strong>",
		`<a href="https://x.dev">a</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html %q missing %q", html, want)
		}
	}
}

func TestStructuredFromHTML(t *testing.T) {
	html := `<h2>Title</h2><p>Some <strong>bold</strong> and <em>italic</em>.</p>` +
		`<ul><li>one</li><li>two</li></ul>` +
		`<ol><li>a</li><li>b</li></ol>` +
		`<blockquote>first line
second line</blockquote>` +
		`<p><a href="https://x.dev">link</a> <img src="/i.png" alt="pic"></p>`
	got := StructuredFromHTML(html)
	for _, want := range []string{
		"## Title",
		"**bold**",
		"*italic*",
		"- one\n- two",
		"1. a\n2. b",
		"> first line\n> second line",
		"[link](https://x.dev)",
		"![pic](/i.png)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("structured text %q missing %q", got, want)
		}
	}
}

func TestFromHTML_RoundTripThroughEditSurface(t *testing.T) {
	doc := "# Post\n\nSome **bold** text.\n\n- one\n- two"
	got := Render(FromHTML(ToHTML(Parse(doc))))
	if got != doc {
		t.Errorf("edit-surface round trip changed document:\ngot  %q\nwant %q", got, doc)
	}
}

func TestStructuredFromHTML_UnknownTagsDropped(t *testing.T) {
	got := StructuredFromHTML(`<section><p>kept <span data-x="1">text</span></p></section>`)
	if got != "kept text" {
		t.Errorf("got %q, want %q", got, "kept text")
	}
}

