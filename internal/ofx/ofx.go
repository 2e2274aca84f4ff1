// Package ofx turns OFX 1.x (SGML) documents into a typed model.Document.
//
// Parsing is a pure function of its input: nothing is cached between calls
// and concurrent calls share no state.
package ofx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/ofxparse/internal/markup"
	"github.com/cleared-dev/ofxparse/internal/model"
	"github.com/cleared-dev/ofxparse/internal/money"
	"github.com/cleared-dev/ofxparse/internal/ofxtime"
	"github.com/cleared-dev/ofxparse/internal/tree"
)

// ErrMalformedDocument is returned when the document body cannot be parsed
// at all. Errors wrapping it also match tree.ErrMalformed.
var ErrMalformedDocument = errors.New("malformed OFX document")

// Parse builds a Document from the full text of an OFX file, header
// included. Empty input yields an empty Document. Missing sections and
// unreadable fields leave the corresponding values empty; only a body that
// cannot be parsed as markup is an error.
func Parse(doc string) (*model.Document, error) {
	if doc == "" {
		return &model.Document{}, nil
	}

	header, body := PreProcess(doc)
	if strings.TrimSpace(body) == "" {
		return &model.Document{Header: header}, nil
	}

	root, err := tree.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	out := build(root)
	out.Header = header
	return out, nil
}

// PreProcess splits doc into its header fields and a body normalized for
// strict parsing.
func PreProcess(doc string) (model.Header, string) {
	return markup.PreProcess(doc)
}

// ParseDateTime parses an OFX datetime such as 20070622190000.200[-5:CDT].
func ParseDateTime(s string) (time.Time, bool) {
	return ofxtime.Parse(s)
}

// PenniesFor converts an OFX amount such as -11.11 to cents.
func PenniesFor(amount string) (int64, bool) {
	return money.PenniesFor(amount)
}
