package xmltree

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is one of Scalar, List, Attributed or *Node
type Value interface {
	isValue()
}

// Scalar is the text content of a leaf element
type Scalar string

// List renders as repeated sibling elements sharing the enclosing tag name.
// Attributes on individual items are dropped.
type List []Value

// Attributed decorates the element built from Value with XML attributes
type Attributed struct {
	Attrs []Attr
	Value Value
}

// Node is an element with ordered children. Attrs are set on the node's own element.
type Node struct {
	Attrs  []Attr
	Fields []Field
}

// Field is a named child of a Node
type Field struct {
	Name  string
	Value Value
}

// Attr is a single XML attribute. Namespace is informational; the attribute is
// written under Name, which may carry a prefix such as "xlink:href".
type Attr struct {
	Name      string
	Namespace string
	Value     string
}

func (Scalar) isValue()     {}
func (List) isValue()       {}
func (Attributed) isValue() {}
func (*Node) isValue()      {}

// Text returns a scalar holding s
func Text(s string) Scalar {
	return Scalar(s)
}

// Int returns a scalar holding the decimal representation of i
func Int(i int64) Scalar {
	return Scalar(strconv.FormatInt(i, 10))
}

// Float returns a scalar holding f. Integral values keep a trailing ".0" so that
// 3.0 is sent as "3.0", the form PrestaShop decimal fields expect.
func Float(f float64) Scalar {
	return Scalar(formatFloat(f))
}

// Bool returns "1" or "0", the boolean form used by PrestaShop fields
func Bool(b bool) Scalar {
	if b {
		return "1"
	}
	return "0"
}

// Null returns an empty scalar
func Null() Scalar {
	return ""
}

// NewNode returns a node holding fields in order
func NewNode(fields ...Field) *Node {
	return &Node{Fields: fields}
}

// F is shorthand for a Field literal
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// WithAttrs returns v decorated with the given name/value attribute pairs
func WithAttrs(v Value, pairs ...string) Attributed {
	attrs := make([]Attr, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs = append(attrs, Attr{Name: pairs[i], Value: pairs[i+1]})
	}
	return Attributed{Attrs: attrs, Value: v}
}

// Get returns the value of the first field called name
func (n *Node) Get(name string) (Value, bool) {
	if n == nil {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the first field called name, or appends it
func (n *Node) Set(name string, v Value) *Node {
	for i, f := range n.Fields {
		if f.Name == name {
			n.Fields[i].Value = v
			return n
		}
	}
	n.Fields = append(n.Fields, Field{Name: name, Value: v})
	return n
}

// Delete removes every field called name
func (n *Node) Delete(name string) *Node {
	kept := n.Fields[:0]
	for _, f := range n.Fields {
		if f.Name != name {
			kept = append(kept, f)
		}
	}
	n.Fields = kept
	return n
}

// FromAny converts dynamic data, such as a decoded JSON record, into a Value.
//
// Maps follow the legacy shape conventions: a map holding only "value" is unwrapped,
// a map holding exactly "attrs" and "value" becomes Attributed, and an "attrs" key
// next to other keys becomes the attributes of the enclosing element. Map keys are
// emitted in sorted order.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Scalar(strconv.FormatUint(uint64(t), 10)), nil
	case uint8:
		return Scalar(strconv.FormatUint(uint64(t), 10)), nil
	case uint16:
		return Scalar(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return Scalar(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return Scalar(strconv.FormatUint(t, 10)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return Scalar(t.String()), nil
	case []string:
		list := make(List, 0, len(t))
		for _, s := range t {
			list = append(list, Text(s))
		}
		return list, nil
	case []any:
		list := make(List, 0, len(t))
		for i, item := range t {
			iv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			list = append(list, iv)
		}
		return list, nil
	case map[string]any:
		return fromMap(t)
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		return fromMap(m)
	default:
		return nil, &EncodingError{Reason: fmt.Sprintf("unsupported value type %T", v)}
	}
}

func fromMap(m map[string]any) (Value, error) {
	_, hasValue := m["value"]
	_, hasAttrs := m["attrs"]

	if hasValue && len(m) == 1 {
		return FromAny(m["value"])
	}

	if hasValue && hasAttrs && len(m) == 2 {
		attrs, err := attrsFromAny(m["attrs"])
		if err != nil {
			return nil, err
		}
		inner, err := FromAny(m["value"])
		if err != nil {
			return nil, err
		}
		return Attributed{Attrs: attrs, Value: inner}, nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &Node{}
	for _, k := range keys {
		if k == "attrs" {
			attrs, err := attrsFromAny(m[k])
			if err != nil {
				return nil, err
			}
			node.Attrs = attrs
			continue
		}
		child, err := FromAny(m[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		node.Fields = append(node.Fields, Field{Name: k, Value: child})
	}
	return node, nil
}

func attrsFromAny(v any) ([]Attr, error) {
	m, ok := v.(map[string]any)
	if !ok {
		if sm, isStrings := v.(map[string]string); isStrings {
			m = make(map[string]any, len(sm))
			for k, s := range sm {
				m[k] = s
			}
		} else {
			return nil, &EncodingError{Reason: fmt.Sprintf("attrs must be a map, got %T", v)}
		}
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]Attr, 0, len(names))
	for _, name := range names {
		attr := Attr{Name: name}
		raw := m[name]
		if ns, isNS := raw.(map[string]any); isNS {
			attr.Namespace, _ = ns["xmlns"].(string)
			raw = ns["value"]
		}
		text, err := scalarText(raw)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		attr.Value = text
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func scalarText(v any) (string, error) {
	val, err := FromAny(v)
	if err != nil {
		return "", err
	}
	s, ok := val.(Scalar)
	if !ok {
		return "", &EncodingError{Reason: fmt.Sprintf("expected a scalar, got %T", v)}
	}
	return string(s), nil
}

// formatFloat renders f in shortest form, switching to exponent notation for very
// large or very small magnitudes and keeping ".0" on integral values.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
