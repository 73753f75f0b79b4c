// Package frontmatter splits and joins the YAML metadata block that
// prefixes stored blog documents.
package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the start and end of a metadata block.
const Delimiter = "---"

// Frontmatter is the parsed metadata block of a document. The original
// block text is kept verbatim so that Join reproduces the stored content
// byte for byte when the metadata was not modified.
type Frontmatter struct {
	raw    string // original YAML block text, without delimiter lines
	keys   []string
	values map[string]any
}

// Split separates the metadata block from the body. If the text does not
// start with the delimiter, or the block is unterminated or invalid YAML,
// the metadata is empty and the entire input is returned as body. Split
// never fails: a document must stay viewable even with broken metadata.
func Split(raw string) (Frontmatter, string) {
	if !strings.HasPrefix(raw, Delimiter+"\n") {
		return Frontmatter{}, raw
	}

	rest := strings.TrimPrefix(raw, Delimiter+"\n")
	idx := findClosing(rest)
	if idx < 0 {
		return Frontmatter{}, raw
	}

	block := rest[:idx]
	body := rest[idx:]
	// Drop the closing delimiter line itself.
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(block), &root); err != nil {
		return Frontmatter{}, raw
	}

	fm := Frontmatter{raw: block, values: map[string]any{}}
	if len(root.Content) > 0 && root.Content[0].Kind == yaml.MappingNode {
		m := root.Content[0]
		for i := 0; i+1 < len(m.Content); i += 2 {
			key := m.Content[i].Value
			var v any
			if err := m.Content[i+1].Decode(&v); err != nil {
				continue
			}
			fm.keys = append(fm.keys, key)
			fm.values[key] = v
		}
	} else if strings.TrimSpace(block) != "" {
		// Block is valid YAML but not a key-value mapping; treat as opaque.
		return Frontmatter{}, raw
	}

	return fm, body
}

// findClosing returns the offset of the closing delimiter line in rest,
// or -1 if the block is unterminated.
func findClosing(rest string) int {
	if strings.HasPrefix(rest, Delimiter) && lineIsDelimiter(rest) {
		return 0
	}
	for i := 0; ; {
		j := strings.Index(rest[i:], "\n"+Delimiter)
		if j < 0 {
			return -1
		}
		at := i + j + 1
		if lineIsDelimiter(rest[at:]) {
			return at
		}
		i = at
	}
}

// lineIsDelimiter reports whether s starts with a line that is exactly "---".
func lineIsDelimiter(s string) bool {
	line := s
	if nl := strings.Index(s, "\n"); nl >= 0 {
		line = s[:nl]
	}
	return strings.TrimRight(line, "\r") == Delimiter
}

// Join reassembles raw document text from metadata and body. An empty
// metadata block yields the body unchanged.
func (fm Frontmatter) Join(body string) string {
	if fm.IsZero() {
		return body
	}
	return Delimiter + "\n" + fm.raw + Delimiter + "\n" + body
}

// IsZero reports whether the document carried no metadata block.
func (fm Frontmatter) IsZero() bool {
	return fm.raw == "" && len(fm.keys) == 0
}

// Raw returns the original YAML block text, without delimiter lines.
func (fm Frontmatter) Raw() string { return fm.raw }

// Keys returns metadata keys in their original document order.
func (fm Frontmatter) Keys() []string { return fm.keys }

// Get returns the value for key, if present.
func (fm Frontmatter) Get(key string) (any, bool) {
	v, ok := fm.values[key]
	return v, ok
}

// Map returns the key-value mapping. Nil when no metadata is present, so
// that JSON responses omit the field entirely.
func (fm Frontmatter) Map() map[string]any {
	if len(fm.values) == 0 {
		return nil
	}
	return fm.values
}

func (fm Frontmatter) str(key string) string {
	if v, ok := fm.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Title returns the "title" field, or empty.
func (fm Frontmatter) Title() string { return fm.str("title") }

// Description returns the "description" field, or empty.
func (fm Frontmatter) Description() string { return fm.str("description") }

// Author returns the "author" field, or empty.
func (fm Frontmatter) Author() string { return fm.str("author") }

// Image returns the "image" field, or empty.
func (fm Frontmatter) Image() string { return fm.str("image") }

// DateString returns the "date" field as written.
func (fm Frontmatter) DateString() string {
	if v, ok := fm.values["date"]; ok {
		switch d := v.(type) {
		case string:
			return d
		case time.Time:
			return d.Format("2006-01-02")
		}
	}
	return ""
}

// Date parses the "date" field. The zero time is returned when the field
// is absent or unparseable.
func (fm Frontmatter) Date() time.Time {
	if v, ok := fm.values["date"]; ok {
		if d, ok := v.(time.Time); ok {
			return d
		}
	}
	s := fm.DateString()
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}

// Tags returns the "tags" field as a string list.
func (fm Frontmatter) Tags() []string {
	raw, ok := fm.values["tags"]
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// DefaultDocument builds the template used when creating a new post: a
// metadata block with today's date and a placeholder body.
func DefaultDocument(title string, now time.Time) string {
	if title == "" {
		title = "New Blog Post"
	}
	return fmt.Sprintf(`---
title: %q
date: %q
description: "A new blog post"
tags: []
author: "Me"
---

# %s

Start writing your content here...
`, title, now.Format("2006-01-02"), title)
}
