// Package tree parses normalized OFX markup into a navigable node tree and
// answers tag-path queries against it.
package tree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// ErrMalformed is returned when markup cannot be parsed into a tree.
var ErrMalformed = errors.New("malformed markup")

// Banks routinely emit "AT&T" unescaped; any & that does not start an entity
// is escaped before parsing so the text round-trips unchanged.
var entityOrBareAmp = regexp.MustCompile(`&(?:#[0-9]+;|#[xX][0-9a-fA-F]+;|[A-Za-z][A-Za-z0-9]*;)?`)

// Node is an element (or the document root) of a parsed tree. A nil *Node is
// valid and behaves as an empty result.
type Node struct {
	n *xmlquery.Node
}

// Parse builds a tree from well-formed markup. Multiple top-level elements
// are allowed; mismatched or unclosed tags are not.
func Parse(markup string) (*Node, error) {
	doc, err := xmlquery.ParseWithOptions(strings.NewReader(escapeAmpersands(markup)), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict: true,
			Entity: xml.HTMLEntity,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &Node{n: doc}, nil
}

func escapeAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityOrBareAmp.ReplaceAllStringFunc(s, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})
}

// Find returns the nodes matching a slash-separated tag path anywhere below
// n, in document order. The first segment may match at any depth; later
// segments match direct children, so "STMTRS/BANKACCTFROM/ACCTID" finds every
// ACCTID under a BANKACCTFROM under some STMTRS.
func (n *Node) Find(path string) []*Node {
	return n.query(".//" + path)
}

// Children is like Find but the first segment must be a direct child of n.
func (n *Node) Children(path string) []*Node {
	return n.query("./" + path)
}

// First returns the first match of Find, or nil.
func (n *Node) First(path string) *Node {
	found := n.Find(path)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Has reports whether path matches anything below n.
func (n *Node) Has(path string) bool {
	return n.First(path) != nil
}

// Text concatenates the text content of every match of Find.
func (n *Node) Text(path string) string {
	return joinText(n.Find(path))
}

// ChildText concatenates the text content of every match of Children.
func (n *Node) ChildText(path string) string {
	return joinText(n.Children(path))
}

// InnerText returns the text content of n without markup.
func (n *Node) InnerText() string {
	if n == nil || n.n == nil {
		return ""
	}
	return n.n.InnerText()
}

// Name returns the tag name of n; the document root has none.
func (n *Node) Name() string {
	if n == nil || n.n == nil || n.n.Type != xmlquery.ElementNode {
		return ""
	}
	return n.n.Data
}

func (n *Node) query(expr string) []*Node {
	if n == nil || n.n == nil {
		return nil
	}
	// Compiled per call: the package keeps no shared selector cache.
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil
	}
	matches := xmlquery.QuerySelectorAll(n.n, compiled)
	if len(matches) == 0 {
		return nil
	}
	out := make([]*Node, len(matches))
	for i, m := range matches {
		out[i] = &Node{n: m}
	}
	return out
}

func joinText(nodes []*Node) string {
	switch len(nodes) {
	case 0:
		return ""
	case 1:
		return nodes[0].InnerText()
	}
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(node.InnerText())
	}
	return sb.String()
}
