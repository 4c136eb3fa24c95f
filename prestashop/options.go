package prestashop

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout applies to HTTP clients created by NewClient
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	format        Format
	language      string
	debug         bool
	restyClient   *resty.Client
	httpClient    *http.Client
	timeout       time.Duration
	detectVersion bool
}

func defaultOptions() clientOptions {
	return clientOptions{
		format: FormatJSON,
	}
}

// WithFormat selects JSON or XML for the whole session.
func WithFormat(f Format) Option {
	return func(o *clientOptions) {
		o.format = f
	}
}

// WithLanguage adds a language parameter with the given id to every call.
func WithLanguage(id string) Option {
	return func(o *clientOptions) {
		o.language = id
	}
}

// WithDebug turns on the wire log of the underlying HTTP client. Once enabled it
// stays on for that HTTP client, including when it is shared with other code.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// WithRestyClient reuses a pre-configured resty client. Its timeout, transport
// and credentials are left as they are.
func WithRestyClient(c *resty.Client) Option {
	return func(o *clientOptions) {
		o.restyClient = c
	}
}

// WithHTTPClient builds the transport on top of an existing http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithVersionDetection probes the server version while the client is built and
// adapts requests to older servers.
func WithVersionDetection() Option {
	return func(o *clientOptions) {
		o.detectVersion = true
	}
}
