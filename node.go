package telegraph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is one piece of page content: either a plain text leaf or an
// element. Exactly one of Text and Element is set. On the wire a text
// node is a bare JSON string and an element node is an object, so
// Node carries custom marshaling for both directions.
//
// A node tree is built once, serialized, and discarded; nothing in
// the library mutates it after construction.
type Node struct {
	Text    string
	Element *NodeElement
}

// NodeElement is the element variant of Node. Attrs only ever holds
// the href and src keys; everything else is outside the Telegraph
// schema and is dropped during conversion.
type NodeElement struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// Text returns a text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Elem returns an element node with the given tag and children.
func Elem(tag string, children ...Node) Node {
	return Node{Element: &NodeElement{Tag: tag, Children: children}}
}

// Link returns an anchor element pointing at href.
func Link(href string, children ...Node) Node {
	return Node{Element: &NodeElement{
		Tag:      "a",
		Attrs:    map[string]string{"href": href},
		Children: children,
	}}
}

// Image returns an img element for the given source URL or path.
func Image(src string) Node {
	return Node{Element: &NodeElement{
		Tag:   "img",
		Attrs: map[string]string{"src": src},
	}}
}

// MarshalJSON encodes the text case as a bare string and the element
// case as an object.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.Element != nil {
		return json.Marshal(n.Element)
	}
	return json.Marshal(n.Text)
}

// UnmarshalJSON decodes either wire shape, dispatching on the first
// byte of the value.
func (n *Node) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty node value", ErrParse)
	}

	switch data[0] {
	case '"':
		n.Element = nil
		return json.Unmarshal(data, &n.Text)
	case '{':
		n.Text = ""
		n.Element = new(NodeElement)
		return json.Unmarshal(data, n.Element)
	case 'n': // null
		*n = Node{}
		return nil
	default:
		return fmt.Errorf("%w: node must be a string or an object, got %q", ErrParse, data[0])
	}
}
