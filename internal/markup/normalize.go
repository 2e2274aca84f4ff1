package markup

import (
	"regexp"
	"strings"
)

var (
	betweenTags     = regexp.MustCompile(`>\s+<`)
	afterTagOpen    = regexp.MustCompile(`<\s+`)
	beforeTagClose  = regexp.MustCompile(`\s+>`)
	beforeTag       = regexp.MustCompile(`\s+<`)
	afterTag        = regexp.MustCompile(`>\s+`)
	unterminatedTag = regexp.MustCompile(`<([\w.]+)>([^<]+)`)
)

// Normalize turns an SGML-style OFX body into markup a strict XML parser
// accepts: whitespace between and just inside tags is dropped and every leaf
// element missing its end tag gets one.
//
//	<CODE>0<SEVERITY>INFO</STATUS>  ->  <CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>
//
// Aggregates are left alone since their start tag is directly followed by
// another tag. Leaf elements that already carry their end tag are not closed
// twice.
func Normalize(body string) string {
	body = betweenTags.ReplaceAllString(body, "><")
	body = afterTagOpen.ReplaceAllString(body, "<")
	body = beforeTagClose.ReplaceAllString(body, ">")
	body = beforeTag.ReplaceAllString(body, "<")
	body = afterTag.ReplaceAllString(body, ">")
	return closeLeaves(body)
}

func closeLeaves(body string) string {
	matches := unterminatedTag.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body) + len(matches)*8)
	last := 0
	for _, m := range matches {
		end := m[1]
		name := body[m[2]:m[3]]
		closing := "</" + name + ">"

		sb.WriteString(body[last:end])
		if !strings.HasPrefix(body[end:], closing) {
			sb.WriteString(closing)
		}
		last = end
	}
	sb.WriteString(body[last:])
	return sb.String()
}
