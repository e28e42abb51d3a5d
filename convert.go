package telegraph

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLToNodes converts an HTML fragment into Telegraph's node tree.
// Top-level nodes come back in document order, with each element's
// descendants converted recursively.
//
// Only the href and src attributes survive; everything else is
// outside the Telegraph schema and is dropped silently. Comments and
// doctypes produce no node. Text is preserved verbatim, including
// whitespace-only nodes between elements. Malformed markup is
// repaired by the parser per standard HTML error recovery rather
// than rejected, so ErrParse only surfaces when reading the input
// fails outright.
func HTMLToNodes(fragment string) ([]Node, error) {
	if fragment == "" {
		return nil, nil
	}

	// Parse with a body context so the fragment is not wrapped in
	// <html><head><body> scaffolding.
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var nodes []Node
	for _, n := range parsed {
		if converted, ok := convertNode(n); ok {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

// convertNode maps one DOM node onto the Telegraph schema. The second
// return is false for nodes with no representation there, i.e.
// comments and doctypes.
func convertNode(n *html.Node) (Node, bool) {
	switch n.Type {
	case html.TextNode:
		return Node{Text: n.Data}, true

	case html.ElementNode:
		elem := &NodeElement{Tag: strings.ToLower(n.Data)}
		for _, attr := range n.Attr {
			key := strings.ToLower(attr.Key)
			if key != "href" && key != "src" {
				continue
			}
			if elem.Attrs == nil {
				elem.Attrs = make(map[string]string, 1)
			}
			elem.Attrs[key] = attr.Val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child, ok := convertNode(c); ok {
				elem.Children = append(elem.Children, child)
			}
		}
		return Node{Element: elem}, true

	default:
		return Node{}, false
	}
}

// NodesToHTML renders a node tree back to an HTML fragment. Text is
// escaped by the renderer, so round-tripping page content through
// HTMLToNodes and back is safe.
func NodesToHTML(nodes []Node) (string, error) {
	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, toDOMNode(n)); err != nil {
			return "", fmt.Errorf("rendering node: %w", err)
		}
	}
	return buf.String(), nil
}

// toDOMNode builds an x/net/html node from a Telegraph node. Attrs
// are emitted in a fixed href-then-src order so rendering is
// deterministic.
func toDOMNode(n Node) *html.Node {
	if n.Element == nil {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	elem := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Element.Tag,
		DataAtom: atom.Lookup([]byte(n.Element.Tag)),
	}
	for _, key := range [...]string{"href", "src"} {
		if val, ok := n.Element.Attrs[key]; ok {
			elem.Attr = append(elem.Attr, html.Attribute{Key: key, Val: val})
		}
	}
	for _, child := range n.Element.Children {
		elem.AppendChild(toDOMNode(child))
	}
	return elem
}
