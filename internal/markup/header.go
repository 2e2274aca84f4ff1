package markup

import (
	"regexp"
	"strings"

	"github.com/cleared-dev/ofxparse/internal/model"
)

var (
	headerBreak = regexp.MustCompile(`(?:\r?\n){2,}|:?<OFX>`)
	lineBreak   = regexp.MustCompile(`\r?\n`)
)

// SplitHeader separates the header block from the markup body at the first
// blank line or <OFX> tag, whichever comes first. The <OFX> tag itself stays
// with the body. Leading blank lines are dropped first, and text with
// neither separator is treated as all header.
func SplitHeader(doc string) (header, body string) {
	doc = strings.TrimLeft(doc, "\r\n")
	loc := headerBreak.FindStringIndex(doc)
	if loc == nil {
		return doc, ""
	}
	header = doc[:loc[0]]
	body = doc[loc[1]:]
	if strings.HasSuffix(doc[loc[0]:loc[1]], "<OFX>") {
		body = "<OFX>" + body
	}
	return header, body
}

// ParseHeader reads "KEY:VALUE" lines. Blank lines are skipped, a line
// without a colon becomes a key with no value, and it never fails.
func ParseHeader(header string) model.Header {
	var fields []model.HeaderField
	for _, line := range lineBreak.Split(header, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		f := model.HeaderField{Key: strings.TrimSpace(key), HasValue: found}
		if found {
			f.Value = strings.TrimSpace(value)
		}
		fields = append(fields, f)
	}
	return model.NewHeader(fields...)
}

// PreProcess splits doc into its parsed header and normalized body.
func PreProcess(doc string) (model.Header, string) {
	header, body := SplitHeader(doc)
	return ParseHeader(header), Normalize(body)
}
