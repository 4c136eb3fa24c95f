package prestashop

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/beevik/etree"

	"github.com/s0up4200/prestashop/xmltree"
)

// Format selects the payload format of a client session
type Format int

const (
	// FormatJSON asks the webservice for JSON responses
	FormatJSON Format = iota + 1
	// FormatXML uses the webservice's native XML responses
	FormatXML
)

// String returns the string representation of a Format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses "json" or "xml", case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%w: unknown format %q (must be 'json' or 'xml')", ErrInvalidConfig, s)
	}
}

// Response is the result of a webservice call.
//
// Exactly one of NoContent, JSON and XML is meaningful: NoContent is set when the
// service answered 200 with an empty body (deletes do this), JSON holds the decoded
// payload in JSON mode and XML the document root in XML mode.
type Response struct {
	StatusCode int
	NoContent  bool
	Body       []byte
	JSON       any
	XML        *etree.Element
}

// OK reports whether the call succeeded with 200 or 201
func (r *Response) OK() bool {
	return r != nil && (r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated)
}

// Object returns the JSON payload as a map, or nil if it is not an object
func (r *Response) Object() map[string]any {
	if r == nil {
		return nil
	}
	m, _ := r.JSON.(map[string]any)
	return m
}

// Value returns the XML payload converted to an xmltree.Value
func (r *Response) Value() xmltree.Value {
	if r == nil || r.XML == nil {
		return nil
	}
	return xmltree.ToValue(r.XML)
}

// Unmarshal decodes the raw body into v using the format the response arrived in
func (r *Response) Unmarshal(v any) error {
	switch {
	case r == nil || r.NoContent:
		return fmt.Errorf("response has no content")
	case r.XML != nil:
		return xml.Unmarshal(r.Body, v)
	default:
		return json.Unmarshal(r.Body, v)
	}
}

// File is one part of a multipart upload
type File struct {
	// Field is the form field name, e.g. "image"
	Field   string
	Name    string
	Content []byte
}

// query holds the list parameters accepted by read endpoints
type query struct {
	display string
	filter  string
	sort    string
	limit   string
}

// QueryOption configures the list parameters of Search and Read
type QueryOption func(*query)

// Display sets the display parameter: "full" or a bracketed field list such as "[id,name]"
func Display(fields string) QueryOption {
	return func(q *query) {
		q.display = fields
	}
}

// NoDisplay drops the display parameter
func NoDisplay() QueryOption {
	return func(q *query) {
		q.display = ""
	}
}

// Filter sets a filter in "[field]=value" form, e.g. "[name]=%5%" or "[id]=[1|5]"
func Filter(expr string) QueryOption {
	return func(q *query) {
		q.filter = expr
	}
}

// Sort sets the sort parameter, e.g. "[lastname_ASC,id_DESC]"
func Sort(expr string) QueryOption {
	return func(q *query) {
		q.sort = expr
	}
}

// Limit sets the limit parameter: "n" or "offset,n"
func Limit(expr string) QueryOption {
	return func(q *query) {
		q.limit = expr
	}
}

func newQuery(opts []QueryOption) query {
	q := query{display: "full"}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}
