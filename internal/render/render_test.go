package render

import (
	"strings"
	"testing"

	"github.com/i-asim/my-portfolio/internal/markup"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Title", "title"},
		{"Getting Started", "getting-started"},
		{"Hello, World!", "hello-world"},
		{"  Trim   Me  ", "trim-me"},
		{"Already-Hyphenated -- Twice", "already-hyphenated-twice"},
		{"Rockets 🚀 Launch", "rockets-launch"},
		{"Caf\u00e9 au lait", "caf-au-lait"},
		{"Ship &amp; Deliver", "ship-deliver"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"100% Coverage", "100-coverage"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		if got := Slugify("My Heading"); got != "my-heading" {
			t.Fatalf("Slugify not stable: %q", got)
		}
	}
}

func TestSlugifyEmptyFallsBackToRandom(t *testing.T) {
	a := Slugify("🎉🎉🎉")
	b := Slugify("!!!")
	if !strings.HasPrefix(a, "heading-") || len(a) <= len("heading-") {
		t.Errorf("fallback slug %q lacks heading- prefix", a)
	}
	if a == b {
		t.Errorf("fallback slugs collided: %q", a)
	}
}

func TestRenderHeadingAndBoldParagraph(t *testing.T) {
	doc := Render("# Title\n\nSome **bold** text.")
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}

	h := doc.Blocks[0]
	if h.Kind != BlockHeading || h.Level != 1 {
		t.Fatalf("first block = %+v, want level-1 heading", h)
	}
	if h.ID != "title" {
		t.Errorf("heading id = %q, want %q", h.ID, "title")
	}

	p := doc.Blocks[1]
	if p.Kind != BlockParagraph {
		t.Fatalf("second block kind = %v, want paragraph", p.Kind)
	}
	var bold *markup.Strong
	for _, n := range p.Inline {
		if s, ok := n.(markup.Strong); ok {
			bold = &s
		}
	}
	if bold == nil {
		t.Fatal("paragraph has no bold span")
	}
	if got := markup.PlainText(bold.Children); got != "bold" {
		t.Errorf("bold span text = %q, want %q", got, "bold")
	}
}

func TestRenderStandaloneImage(t *testing.T) {
	doc := Render("![sunset](/img/sunset.jpg)")
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockImage {
		t.Fatalf("blocks = %+v, want one image block", doc.Blocks)
	}
	if doc.Blocks[0].Image.Src != "/img/sunset.jpg" {
		t.Errorf("src = %q", doc.Blocks[0].Image.Src)
	}
}

func TestRenderListAndRule(t *testing.T) {
	doc := Render("1. first\n2. second\n\n---")
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}
	if !doc.Blocks[0].Ordered || len(doc.Blocks[0].Items) != 2 {
		t.Errorf("list block = %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Kind != BlockRule {
		t.Errorf("second block kind = %v, want rule", doc.Blocks[1].Kind)
	}
}

const galleryDoc = `# Trip

<Gallery items={[{"id":"1","type":"image","src":"/a.jpg","title":"A"},{"id":"2","type":"video","src":"/b.mp4","thumbnail":"/b.jpg"}]} columns={2} gap="lg" showTitles />

The end.`

func TestRenderGalleryDeclaration(t *testing.T) {
	doc := Render(galleryDoc)
	if len(doc.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(doc.Blocks))
	}
	g := doc.Blocks[1]
	if g.Kind != BlockGallery {
		t.Fatalf("middle block kind = %v, want gallery", g.Kind)
	}
	if len(g.Gallery.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(g.Gallery.Items))
	}
	if g.Gallery.Items[1].Kind != "video" || g.Gallery.Items[1].Thumbnail != "/b.jpg" {
		t.Errorf("second item = %+v", g.Gallery.Items[1])
	}
	cfg := g.Gallery.Config
	if cfg.Columns != 2 || cfg.Gap != "lg" || !cfg.ShowTitles || !cfg.EnableLightbox {
		t.Errorf("config = %+v", cfg)
	}
}

func TestRenderGalleryLightboxDisabled(t *testing.T) {
	doc := Render(`<Gallery items={[{"id":"1","type":"image","src":"/a.jpg"}]} enableLightbox={false} />`)
	if doc.Blocks[0].Kind != BlockGallery {
		t.Fatalf("block kind = %v, want gallery", doc.Blocks[0].Kind)
	}
	if doc.Blocks[0].Gallery.Config.EnableLightbox {
		t.Error("enableLightbox={false} ignored")
	}
}

func TestRenderMalformedGalleryDegradesToLiteral(t *testing.T) {
	cases := []string{
		`<Gallery items={[not json]} />`,
		`<Gallery columns={3} />`,
		`<Gallery items={[{"id":"1","type":"image","src":"/a.jpg"}]} columns={9} />`,
		`<Gallery items={[{"id":"1","type":"audio","src":"/a.ogg"}]} />`,
	}
	for _, in := range cases {
		doc := Render(in)
		if len(doc.Blocks) != 1 {
			t.Fatalf("%q: got %d blocks, want 1", in, len(doc.Blocks))
		}
		blk := doc.Blocks[0]
		if blk.Kind != BlockLiteral {
			t.Errorf("%q: kind = %v, want literal", in, blk.Kind)
			continue
		}
		if blk.Literal != in {
			t.Errorf("%q: literal = %q, want original text", in, blk.Literal)
		}
	}
}

func TestRenderMultilineGalleryDeclaration(t *testing.T) {
	in := "<Gallery\n  items={[{\"id\":\"1\",\"type\":\"image\",\"src\":\"/a.jpg\"}]}\n  columns={1}\n/>"
	doc := Render(in)
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockGallery {
		t.Fatalf("blocks = %+v, want one gallery", doc.Blocks)
	}
	if doc.Blocks[0].Gallery.Config.Columns != 1 {
		t.Errorf("columns = %d, want 1", doc.Blocks[0].Gallery.Config.Columns)
	}
}

func TestRenderNeverPanicsOnOddInput(t *testing.T) {
	inputs := []string{
		"",
		"<Gallery",
		"<Gallery items={",
		"####### seven hashes",
		"> quote\n<Gallery items={[]} />\n> more",
	}
	for _, in := range inputs {
		_ = Render(in)
	}
}

func TestWriteHTMLHeadingAnchorAndStyles(t *testing.T) {
	out := WriteHTML(Render("## Getting Started\n\nRead [docs](https://docs.dev) or `go run`."))
	for _, want := range []string{
		`<h2 id="getting-started"`,
		styleClass["h2"],
		`target="_blank"`,
		`<code class=`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteHTMLEscapesText(t *testing.T) {
	out := WriteHTML(Render("# A <b> tag & more"))
	if strings.Contains(out, "<b>") {
		t.Errorf("raw tag leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("text not escaped:\n%s", out)
	}
}

func TestWriteHTMLGalleryGrid(t *testing.T) {
	out := WriteHTML(Render(galleryDoc))
	for _, want := range []string{
		"grid-cols-2",
		"gap-6",
		`<video src="/b.mp4" poster="/b.jpg"`,
		"<figcaption",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
