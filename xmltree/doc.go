// Package xmltree converts between nested record data and the XML dialect spoken by
// the PrestaShop webservice.
//
// Records are described with a small tagged union instead of untyped maps:
//
//   - Scalar: a leaf element with text content
//   - List: repeated sibling elements sharing one tag name
//   - Attributed: an element decorated with XML attributes
//   - Node: an element with ordered child elements (and optional attributes)
//
// # Usage
//
//	doc := xmltree.NewNode(
//		xmltree.F("prestashop", xmltree.NewNode(
//			xmltree.F("tax", xmltree.NewNode(
//				xmltree.F("id", xmltree.Text("1")),
//				xmltree.F("rate", xmltree.Float(3.0)),
//			)),
//		)),
//	)
//	body, err := xmltree.Encode(doc)
//
// Responses are parsed with Decode, which returns the root element of a
// github.com/beevik/etree tree:
//
//	root, err := xmltree.Decode(data)
//	if err != nil {
//		return err
//	}
//	code := root.FindElement("errors/error/code")
//
// # Error Handling
//
//   - EncodingError: the payload does not describe exactly one root element
//   - ParsingError: the input is empty or is not well-formed XML
//
// The encoding rules are deliberately narrow. This is not a general purpose XML
// mapping library.
package xmltree
