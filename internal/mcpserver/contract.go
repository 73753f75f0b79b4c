package mcpserver

// PostFormatContract describes the canonical post format that LLM
// consumers should follow when creating or updating posts.
const PostFormatContract = `# Post Format Contract

Every post stored in the portfolio MUST follow this structure.

## Structure

` + "```" + `markdown
---
title: "Human-readable title"       # REQUIRED – used in lists, search, page header
description: "One-line summary"     # OPTIONAL – shown in list views and meta tags
date: "2026-01-15"                  # OPTIONAL – ISO-8601 date; controls list ordering
author: "Author Name"               # OPTIONAL
image: "/attachments/cover.jpg"     # OPTIONAL – cover image path
tags:                               # OPTIONAL – YAML list; used for filtering
  - tag-one
  - tag-two
---

# Post title

Body text with **bold**, *italic*, ~~strikethrough~~, ` + "`" + `inline code` + "`" + `,
[links](https://example.com) and ![images](/attachments/photo.jpg).
` + "```" + `

## Rules

1. **YAML front matter is mandatory.** The ` + "```" + `---` + "```" + ` fences must be the first
   thing in the file (no leading blank lines).
2. **` + "`" + `title` + "`" + ` field is required.** It is the primary display name everywhere.
3. **Tags** are lowercase, kebab-case (e.g. ` + "`" + `side-projects` + "`" + `, ` + "`" + `travel-notes` + "`" + `).
4. **File names** end with ` + "`" + `.mdx` + "`" + ` and use forward slashes.
5. **Headings** get stable anchor ids derived from their text; keep headings
   unique within a post so anchors stay unambiguous.
6. **Encoding** is UTF-8 with a trailing newline.

## Galleries

Embed an image or video gallery with a self-closing Gallery declaration on
its own block:

` + "```" + `markdown
<Gallery items={[
  {"id": "g1", "type": "image", "src": "/attachments/one.jpg", "alt": "First"},
  {"id": "g2", "type": "video", "src": "/attachments/clip.mp4", "thumbnail": "/attachments/clip.jpg"}
]} columns={2} gap="lg" showTitles />
` + "```" + `

- ` + "`" + `items` + "`" + ` is REQUIRED: a JSON array where each item has ` + "`" + `id` + "`" + `,
  ` + "`" + `type` + "`" + ` (` + "`" + `image` + "`" + ` or ` + "`" + `video` + "`" + `) and ` + "`" + `src` + "`" + `.
- ` + "`" + `columns` + "`" + ` is 1 to 4 (default 3); ` + "`" + `gap` + "`" + ` is ` + "`" + `sm` + "`" + `, ` + "`" + `md` + "`" + ` or ` + "`" + `lg` + "`" + ` (default ` + "`" + `md` + "`" + `).
- Boolean flags: ` + "`" + `showTitles` + "`" + `, ` + "`" + `showDescriptions` + "`" + `, ` + "`" + `enableLightbox` + "`" + ` (lightbox defaults to on).
- A malformed declaration is rendered as plain text, so double-check the JSON.

## Assets & Images

- Upload assets via the ` + "`" + `upload_asset` + "`" + ` tool. It returns a ` + "`" + `markdownImage` + "`" + ` field ready to paste into the post body.
- Assets are stored in the shared ` + "`" + `attachments/` + "`" + ` directory (flat, no sub-folders).
- Reference in posts using the absolute path: ` + "`" + `![description](/attachments/filename.png)` + "`" + `
- Supported formats: png, jpg, jpeg, gif, webp, svg, pdf, mp4, webm.
- Video uploads return a ` + "`" + `galleryItem` + "`" + ` field instead of ` + "`" + `markdownImage` + "`" + `: a ready-to-paste
  entry for a Gallery declaration's ` + "`" + `items` + "`" + ` array (add a ` + "`" + `thumbnail` + "`" + ` poster yourself).
- Do **not** use relative paths like ` + "`" + `./attachments/...` + "`" + ` — always use ` + "`" + `/attachments/filename` + "`" + `.

## Example

` + "```" + `markdown
---
title: "Weekend in Lisbon"
description: "Three days of tiles, trams and pastry"
date: "2026-03-08"
tags:
  - travel-notes
---

# Weekend in Lisbon

The funicular was out of service, so we walked.

![Alfama rooftops](/attachments/lisbon-rooftops.jpg)

## Day two

<Gallery items={[
  {"id": "l1", "type": "image", "src": "/attachments/tram-28.jpg", "alt": "Tram 28"},
  {"id": "l2", "type": "image", "src": "/attachments/belem.jpg", "alt": "Belem tower"}
]} columns={2} />
` + "```" + `
`
