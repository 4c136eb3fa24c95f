package xmltree

import (
	"bytes"

	"github.com/beevik/etree"
)

// Decode parses data and returns the root element of the document
func Decode(data []byte) (*etree.Element, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewParsingError("HTTP response is empty", nil, nil)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, NewParsingError("HTTP XML response is not parsable", data, err)
	}

	if !singleRoot(doc) {
		return nil, NewParsingError("HTTP XML response is not parsable", data, nil)
	}

	root := doc.Root()
	if root == nil {
		return nil, NewParsingError("HTTP XML response has no root element", data, nil)
	}
	return root, nil
}

// singleRoot reports whether the document has at most one top-level element and
// no text outside it other than whitespace
func singleRoot(doc *etree.Document) bool {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
		case *etree.CharData:
			if !t.IsWhitespace() {
				return false
			}
		}
	}
	return elements <= 1
}

// ToValue converts a decoded element's content back into a Value, so a record read
// from the service can be modified and written again. Repeated child tags become a
// List; attributes are kept on the element they belong to.
func ToValue(el *etree.Element) Value {
	if el == nil {
		return Null()
	}

	attrs := attrsOf(el)
	children := el.ChildElements()

	if len(children) == 0 {
		text := Scalar(el.Text())
		if len(attrs) == 0 {
			return text
		}
		return Attributed{Attrs: attrs, Value: text}
	}

	node := &Node{Attrs: attrs}
	index := make(map[string]int, len(children))
	for _, child := range children {
		tag := child.FullTag()
		v := ToValue(child)

		i, seen := index[tag]
		if !seen {
			index[tag] = len(node.Fields)
			node.Fields = append(node.Fields, Field{Name: tag, Value: v})
			continue
		}

		if list, isList := node.Fields[i].Value.(List); isList {
			node.Fields[i].Value = append(list, v)
		} else {
			node.Fields[i].Value = List{node.Fields[i].Value, v}
		}
	}
	return node
}

// ToDocument wraps the element and its content into a single-root Node suitable for Encode
func ToDocument(el *etree.Element) *Node {
	if el == nil {
		return nil
	}
	return NewNode(F(el.FullTag(), ToValue(el)))
}

func attrsOf(el *etree.Element) []Attr {
	if len(el.Attr) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrs = append(attrs, Attr{Name: a.FullKey(), Value: a.Value})
	}
	return attrs
}
