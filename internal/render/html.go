package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/i-asim/my-portfolio/internal/gallery"
	"github.com/i-asim/my-portfolio/internal/markup"
)

// Fixed presentation classes per element. The table is static: callers
// cannot restyle individual blocks.
var styleClass = map[string]string{
	"h1":         "mt-12 mb-6 scroll-mt-24 text-4xl font-bold text-foreground",
	"h2":         "mt-10 mb-5 scroll-mt-24 text-3xl font-semibold text-foreground",
	"h3":         "mt-8 mb-4 scroll-mt-24 text-2xl font-semibold text-foreground",
	"h4":         "mt-6 mb-3 scroll-mt-24 text-xl font-medium text-foreground",
	"h5":         "mt-6 mb-3 scroll-mt-24 text-lg font-medium text-foreground",
	"h6":         "mt-6 mb-3 scroll-mt-24 text-base font-medium text-foreground",
	"p":          "mb-6 leading-relaxed text-muted-foreground",
	"ul":         "mb-6 ml-6 list-disc space-y-2 text-muted-foreground",
	"ol":         "mb-6 ml-6 list-decimal space-y-2 text-muted-foreground",
	"li":         "leading-relaxed",
	"blockquote": "mb-6 border-l-4 border-primary pl-4 italic text-muted-foreground",
	"a":          "font-medium text-primary underline underline-offset-4 hover:text-primary/80",
	"strong":     "font-semibold text-foreground",
	"em":         "italic",
	"s":          "line-through",
	"code":       "rounded bg-muted px-1.5 py-0.5 font-mono text-sm",
	"img":        "my-8 w-full rounded-lg",
	"hr":         "my-12 border-border",
}

var gapClass = map[string]string{
	gallery.GapSmall:  "gap-2",
	gallery.GapMedium: "gap-4",
	gallery.GapLarge:  "gap-6",
}

// WriteHTML serializes a rendered document to styled HTML.
func WriteHTML(doc *Document) string {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		writeBlock(&b, blk)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, blk Block) {
	switch blk.Kind {
	case BlockHeading:
		tag := fmt.Sprintf("h%d", blk.Level)
		fmt.Fprintf(b, `<%s id=%q class=%q>`, tag, blk.ID, styleClass[tag])
		writeInline(b, blk.Inline)
		fmt.Fprintf(b, "</%s>\n", tag)
	case BlockParagraph:
		fmt.Fprintf(b, `<p class=%q>`, styleClass["p"])
		writeInline(b, blk.Inline)
		b.WriteString("</p>\n")
	case BlockImage:
		fmt.Fprintf(b, `<img src=%q alt=%q class=%q>`,
			blk.Image.Src, blk.Image.Alt, styleClass["img"])
		b.WriteString("\n")
	case BlockList:
		tag := "ul"
		if blk.Ordered {
			tag = "ol"
		}
		fmt.Fprintf(b, "<%s class=%q>\n", tag, styleClass[tag])
		for _, item := range blk.Items {
			fmt.Fprintf(b, `<li class=%q>`, styleClass["li"])
			writeInline(b, item)
			b.WriteString("</li>\n")
		}
		fmt.Fprintf(b, "</%s>\n", tag)
	case BlockBlockquote:
		fmt.Fprintf(b, `<blockquote class=%q>`, styleClass["blockquote"])
		writeInline(b, blk.Inline)
		b.WriteString("</blockquote>\n")
	case BlockRule:
		fmt.Fprintf(b, "<hr class=%q>\n", styleClass["hr"])
	case BlockGallery:
		writeGallery(b, blk.Gallery)
	case BlockLiteral:
		fmt.Fprintf(b, `<p class=%q>`, styleClass["p"])
		b.WriteString(html.EscapeString(blk.Literal))
		b.WriteString("</p>\n")
	}
}

func writeInline(b *strings.Builder, nodes []markup.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case markup.Text:
			b.WriteString(html.EscapeString(n.Value))
		case markup.Strong:
			fmt.Fprintf(b, `<strong class=%q>`, styleClass["strong"])
			writeInline(b, n.Children)
			b.WriteString("</strong>")
		case markup.Emphasis:
			fmt.Fprintf(b, `<em class=%q>`, styleClass["em"])
			writeInline(b, n.Children)
			b.WriteString("</em>")
		case markup.Strikethrough:
			fmt.Fprintf(b, `<s class=%q>`, styleClass["s"])
			writeInline(b, n.Children)
			b.WriteString("</s>")
		case markup.Code:
			fmt.Fprintf(b, `<code class=%q>`, styleClass["code"])
			b.WriteString(html.EscapeString(n.Value))
			b.WriteString("</code>")
		case markup.Link:
			fmt.Fprintf(b, `<a href=%q class=%q`, n.Href, styleClass["a"])
			if strings.HasPrefix(n.Href, "http://") || strings.HasPrefix(n.Href, "https://") {
				b.WriteString(` target="_blank" rel="noopener noreferrer"`)
			}
			b.WriteString(">")
			writeInline(b, n.Children)
			b.WriteString("</a>")
		case markup.Image:
			fmt.Fprintf(b, `<img src=%q alt=%q class=%q>`, n.Src, n.Alt, styleClass["img"])
		}
	}
}

// writeGallery emits the grid shell for an embedded gallery. The
// interactive behavior lives in the gallery package; this is the
// static server-rendered form.
func writeGallery(b *strings.Builder, g *gallery.Gallery) {
	fmt.Fprintf(b, `<div class="my-8 grid grid-cols-%d %s" data-component="gallery">`,
		g.Config.Columns, gapClass[g.Config.Gap])
	b.WriteString("\n")
	for _, item := range g.Items {
		b.WriteString(`<figure class="group relative overflow-hidden rounded-lg">`)
		if item.Kind == gallery.KindVideo {
			poster := ""
			if item.Thumbnail != "" {
				poster = fmt.Sprintf(" poster=%q", item.Thumbnail)
			}
			fmt.Fprintf(b, `<video src=%q%s controls class="h-full w-full object-cover"></video>`,
				item.Src, poster)
		} else {
			fmt.Fprintf(b, `<img src=%q alt=%q loading="lazy" class="h-full w-full object-cover">`,
				item.Src, item.Alt)
		}
		if g.Config.ShowTitles && item.Title != "" {
			fmt.Fprintf(b, `<figcaption class="mt-2 text-sm font-medium">%s</figcaption>`,
				html.EscapeString(item.Title))
		}
		if g.Config.ShowDescriptions && item.Description != "" {
			fmt.Fprintf(b, `<p class="text-sm text-muted-foreground">%s</p>`,
				html.EscapeString(item.Description))
		}
		b.WriteString("</figure>\n")
	}
	b.WriteString("</div>\n")
}
