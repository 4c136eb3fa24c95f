package xmltree

import (
	"fmt"

	"github.com/beevik/etree"
)

// DefaultEncoding is declared in the XML header when no other encoding is requested
const DefaultEncoding = "UTF-8"

// Encode renders doc, which must hold exactly one field, as an XML document
func Encode(doc *Node) (string, error) {
	return EncodeWithEncoding(doc, DefaultEncoding)
}

// EncodeWithEncoding is Encode with a custom encoding in the XML declaration
func EncodeWithEncoding(doc *Node, encoding string) (string, error) {
	if doc == nil || len(doc.Fields) != 1 {
		count := 0
		if doc != nil {
			count = len(doc.Fields)
		}
		return "", &EncodingError{Reason: fmt.Sprintf("only one root node allowed, got %d", count)}
	}

	root := doc.Fields[0]
	if _, ok := root.Value.(List); ok {
		return "", &EncodingError{Reason: fmt.Sprintf("root node %q cannot be a list", root.Name)}
	}

	out := etree.NewDocument()
	out.WriteSettings.CanonicalEndTags = true
	out.CreateProcInst("xml", fmt.Sprintf(`version="1.0" encoding="%s"`, encoding))

	if err := appendField(&out.Element, root.Name, root.Value); err != nil {
		return "", err
	}

	return out.WriteToString()
}

// appendField adds the element(s) for one named value under parent
func appendField(parent *etree.Element, name string, v Value) error {
	if name == "" {
		return &EncodingError{Reason: "element name is empty"}
	}

	if list, ok := v.(List); ok {
		for _, item := range list {
			if err := appendField(parent, name, stripAttrs(item)); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := appendElement(parent, name, v)
	return err
}

func appendElement(parent *etree.Element, name string, v Value) (*etree.Element, error) {
	switch t := v.(type) {
	case nil:
		el := parent.CreateElement(name)
		el.SetText("")
		return el, nil

	case Scalar:
		el := parent.CreateElement(name)
		el.SetText(string(t))
		return el, nil

	case Attributed:
		if _, ok := t.Value.(List); ok {
			return nil, &EncodingError{Reason: fmt.Sprintf("attributes on %q cannot decorate a list", name)}
		}
		el, err := appendElement(parent, name, t.Value)
		if err != nil {
			return nil, err
		}
		setAttrs(el, t.Attrs)
		return el, nil

	case *Node:
		el := parent.CreateElement(name)
		if t == nil {
			el.SetText("")
			return el, nil
		}
		setAttrs(el, t.Attrs)
		for _, f := range t.Fields {
			if err := appendField(el, f.Name, f.Value); err != nil {
				return nil, err
			}
		}
		return el, nil

	default:
		return nil, &EncodingError{Reason: fmt.Sprintf("unsupported value type %T for %q", v, name)}
	}
}

// stripAttrs drops attributes from a list item. Attributes of the item's own
// children are kept.
func stripAttrs(v Value) Value {
	for {
		a, ok := v.(Attributed)
		if !ok {
			break
		}
		v = a.Value
	}

	if n, ok := v.(*Node); ok && n != nil && len(n.Attrs) > 0 {
		return &Node{Fields: n.Fields}
	}
	return v
}

func setAttrs(el *etree.Element, attrs []Attr) {
	for _, a := range attrs {
		el.CreateAttr(a.Name, a.Value)
	}
}
