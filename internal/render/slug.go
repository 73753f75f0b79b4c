package render

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Named entities that survive copy-paste from rendered HTML into
// heading text. Decoded before slugging so "&amp;" does not leak an
// "amp" fragment into the identifier.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&copy;", "",
	"&reg;", "",
	"&trade;", "",
)

// Slugify derives a URL-safe heading identifier: entities decoded,
// lower-cased, emoji and pictograph code points stripped, whitespace
// runs become single hyphens, every other non-alphanumeric character
// removed, hyphen runs collapsed and trimmed. Text that reduces to
// nothing (emoji-only or punctuation-only headings) falls back to a
// random identifier.
func Slugify(text string) string {
	s := strings.ToLower(entityReplacer.Replace(text))

	var b strings.Builder
	hyphen := false
	for _, r := range s {
		switch {
		case isPictograph(r):
			// dropped
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			hyphen = true
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "heading-" + strings.ToLower(ulid.Make().String())
	}
	return b.String()
}

// isPictograph reports whether r falls in one of the emoji,
// pictograph, transport, flag, dingbat, or variation-selector blocks.
func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols and pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
		return true
	case r >= 0x1F1E0 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x2600 && r <= 0x26FF: // miscellaneous symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental pictographs
		return true
	}
	return false
}
