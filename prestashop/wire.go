package prestashop

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/s0up4200/prestashop/xmltree"
)

// wireCodec holds everything that differs between JSON and XML format modes.
// One implementation is selected when the client is built.
type wireCodec interface {
	contentType() string
	formatParams(params url.Values)
	decodeBody(status int, body []byte) (*Response, error)
	extractError(body []byte) (int, string, error)
}

func wireFor(f Format) wireCodec {
	if f == FormatXML {
		return xmlWire{}
	}
	return jsonWire{}
}

type jsonWire struct{}

func (jsonWire) contentType() string {
	return "application/json"
}

func (jsonWire) formatParams(params url.Values) {
	params.Set("io_format", "JSON")
	params.Set("output_format", "JSON")
}

func (jsonWire) decodeBody(status int, body []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, xmltree.NewParsingError("HTTP JSON response is not parsable", body, err)
	}

	return &Response{
		StatusCode: status,
		Body:       body,
		JSON:       payload,
	}, nil
}

type jsonErrorEnvelope struct {
	Errors []struct {
		// Code arrives as a number or a numeric string depending on the shop version
		Code    json.Number `json:"code"`
		Message string      `json:"message"`
	} `json:"errors"`
}

func (jsonWire) extractError(body []byte) (int, string, error) {
	var envelope jsonErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, "", xmltree.NewParsingError("HTTP JSON error response is not parsable", body, err)
	}
	if len(envelope.Errors) == 0 {
		return 0, "", xmltree.NewParsingError("HTTP JSON error response has no errors entry", body, nil)
	}

	first := envelope.Errors[0]
	var code int
	if first.Code != "" {
		n, err := first.Code.Int64()
		if err != nil {
			return 0, "", xmltree.NewParsingError("HTTP JSON error code is not an integer", body, err)
		}
		code = int(n)
	}
	return code, first.Message, nil
}

type xmlWire struct{}

func (xmlWire) contentType() string {
	return "text/xml"
}

func (xmlWire) formatParams(url.Values) {}

func (xmlWire) decodeBody(status int, body []byte) (*Response, error) {
	root, err := xmltree.Decode(body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: status,
		Body:       body,
		XML:        root,
	}, nil
}

func (xmlWire) extractError(body []byte) (int, string, error) {
	root, err := xmltree.Decode(body)
	if err != nil {
		return 0, "", err
	}

	errEl := root.FindElement("errors/error")
	if errEl == nil {
		return 0, "", xmltree.NewParsingError("HTTP XML error response has no errors/error element", body, nil)
	}

	var code int
	if codeEl := errEl.FindElement("code"); codeEl != nil {
		code, err = strconv.Atoi(strings.TrimSpace(codeEl.Text()))
		if err != nil {
			return 0, "", xmltree.NewParsingError("HTTP XML error code is not numeric", body, err)
		}
	}

	var msg string
	if msgEl := errEl.FindElement("message"); msgEl != nil {
		msg = msgEl.Text()
	}
	return code, msg, nil
}
