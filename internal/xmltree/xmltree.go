// Package xmltree converts well-formed XML into a generic element tree.
// It has no schema knowledge; the TCX and GPX extractors walk the tree
// through the typed accessors below and apply their own field paths.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed marks documents the XML decoder could not parse. The wrapped
// error carries the decoder's diagnostic.
var ErrMalformed = errors.New("malformed document")

// Node is one parsed element. Repeated sibling elements with the same name
// collect into an ordered sequence, in document order. Namespace prefixes
// are stripped; lookups use local names only.
type Node struct {
	name     string
	attrs    map[string]string
	children map[string][]*Node
	order    []*Node
	text     strings.Builder
}

// Parse decodes an XML document into its root node.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			node := &Node{
				name:     tok.Name.Local,
				attrs:    make(map[string]string, len(tok.Attr)),
				children: make(map[string][]*Node),
			}
			for _, attr := range tok.Attr {
				node.attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformed)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children[node.name] = append(parent.children[node.name], node)
				parent.order = append(parent.order, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected closing tag </%s>", ErrMalformed, tok.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(tok)
			}
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed element <%s>", ErrMalformed, stack[len(stack)-1].name)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return root, nil
}

// Name returns the element's local name.
func (n *Node) Name() string {
	return n.name
}

// Child returns the first child element with the given local name.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	nodes := n.children[name]
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// Children returns all child elements with the given local name, in
// document order.
func (n *Node) Children(name string) []*Node {
	if n == nil {
		return nil
	}
	return n.children[name]
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	value, ok := n.attrs[name]
	return value, ok
}

// Text returns the element's own character data, trimmed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.text.String())
}

// ChildText returns the trimmed text of the first child with the given
// name. Missing children yield ("", false).
func (n *Node) ChildText(name string) (string, bool) {
	child, ok := n.Child(name)
	if !ok {
		return "", false
	}
	return child.Text(), true
}

// ChildFloat parses the text of the named child as a float. Missing or
// unparsable values yield (0, false); callers supply their own defaults.
func (n *Node) ChildFloat(name string) (float64, bool) {
	text, ok := n.ChildText(name)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ChildInt parses the text of the named child as an integer.
func (n *Node) ChildInt(name string) (int, bool) {
	value, ok := n.ChildFloat(name)
	if !ok {
		return 0, false
	}
	return int(value), true
}
