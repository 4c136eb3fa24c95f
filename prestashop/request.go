package prestashop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// request describes one webservice call
type request struct {
	method   string
	resource string
	id       int
	// ids is the bracketed id list of a bulk delete
	ids     string
	body    []byte
	headers map[string]string
	query   query
}

// execute runs the full request pipeline: parameters, URL, transport,
// classification and decoding
func (c *Client) execute(ctx context.Context, req request) (*Response, error) {
	params, err := c.queryParams(req)
	if err != nil {
		return nil, err
	}

	target := c.resourceURL(req.resource, req.id, params)

	headers := map[string]string{"Content-Type": c.wire.contentType()}
	for k, v := range req.headers {
		headers[k] = v
	}

	resp, err := c.do(ctx, req.method, target, req.body, headers)
	if err != nil {
		return nil, err
	}

	status := resp.StatusCode()
	body := resp.Body()
	if len(body) == 0 && status == http.StatusOK {
		return &Response{StatusCode: status, NoContent: true}, nil
	}

	if err := classify(status, bodyExtractor(c.wire, body)); err != nil {
		return nil, err
	}

	return c.wire.decodeBody(status, body)
}

// queryParams assembles the query string parameters of a request
func (c *Client) queryParams(req request) (url.Values, error) {
	params := url.Values{}

	if c.language != "" {
		params.Set("language", c.language)
	}

	c.wire.formatParams(params)

	q := req.query
	if q.display != "" {
		params.Set("display", q.display)
	}

	if q.filter != "" {
		field, value, ok := strings.Cut(q.filter, "=")
		if !ok {
			return nil, &InputError{Reason: fmt.Sprintf("filter %q must have the form [field]=value", q.filter)}
		}
		params.Set("filter"+field, value)
	}

	if q.sort != "" {
		params.Set("sort", q.sort)
	}
	if q.limit != "" {
		params.Set("limit", q.limit)
	}
	if req.ids != "" {
		params.Set("id", req.ids)
	}

	return params, nil
}

// resourceURL joins the base URL, resource and optional id, merging params into
// any query already present on the base URL
func (c *Client) resourceURL(resource string, id int, params url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + strings.TrimLeft(resource, "/")
	if id != 0 {
		u.Path += "/" + strconv.Itoa(id)
	}

	q := u.Query()
	for k, values := range params {
		for _, v := range values {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// do performs a single HTTP call. Transport failures are returned wrapped and
// are never classified.
func (c *Client) do(ctx context.Context, method, target string, body []byte, headers map[string]string) (*resty.Response, error) {
	r := c.http.R().SetContext(ctx)
	if len(headers) > 0 {
		r.SetHeaders(headers)
	}
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, target)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("PrestaShop API request")

	return resp, nil
}
