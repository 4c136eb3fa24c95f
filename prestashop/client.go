package prestashop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/s0up4200/prestashop/config"
	"github.com/s0up4200/prestashop/xmltree"
)

// rootElement wraps every write and create payload
const rootElement = "prestashop"

// Client represents a PrestaShop webservice client
type Client struct {
	baseURL  *url.URL
	apiKey   string
	format   Format
	wire     wireCodec
	language string
	http     *resty.Client
	logger   zerolog.Logger

	// serverVersion is only known after version detection
	serverVersion string
	// legacyDisplay is set for servers that ignore display on single record reads
	legacyDisplay bool
}

// NewClient creates a new PrestaShop client for the shop at baseURL
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("%w: prestashop URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: prestashop API key is required", ErrInvalidConfig)
	}

	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.format != FormatJSON && o.format != FormatXML {
		return nil, fmt.Errorf("%w: unsupported format %d", ErrInvalidConfig, o.format)
	}

	rc := o.restyClient
	if rc == nil {
		if o.httpClient != nil {
			rc = resty.NewWithClient(o.httpClient)
		} else {
			rc = resty.New().SetTimeout(DefaultTimeout)
		}
		rc.SetLogger(newRestyLogger(logger))
	}
	if o.timeout > 0 {
		rc.SetTimeout(o.timeout)
	}
	if rc.UserInfo == nil {
		rc.SetBasicAuth(apiKey, "")
	}

	client := &Client{
		baseURL:  base,
		apiKey:   apiKey,
		format:   o.format,
		wire:     wireFor(o.format),
		language: o.language,
		http:     rc,
		logger:   logger,
	}

	if o.debug {
		client.enableDebug()
	}

	if o.detectVersion {
		if err := client.detectVersion(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to detect PrestaShop version: %w", err)
		}
	}

	return client, nil
}

// NewClientFromConfig creates a client from the shop section of the configuration
func NewClientFromConfig(cfg config.ShopConfig, logger zerolog.Logger) (*Client, error) {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithFormat(format),
		WithDebug(cfg.Debug),
	}
	if cfg.Language != "" {
		opts = append(opts, WithLanguage(cfg.Language))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout))
	}
	if cfg.DetectVersion {
		opts = append(opts, WithVersionDetection())
	}

	return NewClient(cfg.URL, cfg.APIKey, logger, opts...)
}

// normalizeBaseURL makes sure the path ends in /api/ and keeps any query string
func normalizeBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid prestashop URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: prestashop URL must be absolute: %s", ErrInvalidConfig, raw)
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if !strings.HasSuffix(u.Path, "/api/") {
		u.Path += "api/"
	}
	u.RawPath = ""
	return u, nil
}

// BaseURL returns the normalized webservice URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Format returns the session format
func (c *Client) Format() Format {
	return c.format
}

// ServerVersion returns the version reported by the server, if it was detected
func (c *Client) ServerVersion() string {
	return c.serverVersion
}

// enableDebug switches on resty's request/response dump for the rest of the
// HTTP client's life
func (c *Client) enableDebug() {
	c.http.SetDebug(true)
	c.logger.Info().Msg("PrestaShop wire logging enabled")
}

// Ping checks that the webservice answers on the base URL
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodHead, c.BaseURL(), nil, nil)
	if err != nil {
		return err
	}
	return classify(resp.StatusCode(), staticExtractor(0, "Ping not working"))
}

// Search lists records of a resource. Display defaults to "full".
func (c *Client) Search(ctx context.Context, resource string, opts ...QueryOption) (*Response, error) {
	return c.execute(ctx, request{
		method:   http.MethodGet,
		resource: resource,
		query:    newQuery(opts),
	})
}

// Read fetches one record, or the whole collection when id is 0
func (c *Client) Read(ctx context.Context, resource string, id int, opts ...QueryOption) (*Response, error) {
	q := newQuery(opts)
	if id != 0 && c.legacyDisplay {
		q.display = ""
	}

	return c.execute(ctx, request{
		method:   http.MethodGet,
		resource: resource,
		id:       id,
		query:    q,
	})
}

// Write updates a record. data holds the record under its resource tag, e.g.
// a "tax" field whose node carries the id. The body is always sent as XML.
func (c *Client) Write(ctx context.Context, resource string, data *xmltree.Node) (*Response, error) {
	body, err := envelope(data)
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, request{
		method:   http.MethodPut,
		resource: resource,
		body:     body,
	})
}

// Create adds a record from data, or uploads files when any are given
func (c *Client) Create(ctx context.Context, resource string, data *xmltree.Node, files ...File) (*Response, error) {
	if len(files) > 0 {
		headers, body := encodeMultipart(files)
		return c.execute(ctx, request{
			method:   http.MethodPost,
			resource: resource,
			body:     body,
			headers:  headers,
		})
	}

	body, err := envelope(data)
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, request{
		method:   http.MethodPost,
		resource: resource,
		body:     body,
	})
}

// Unlink deletes a single record
func (c *Client) Unlink(ctx context.Context, resource string, id int) (*Response, error) {
	if id == 0 {
		return nil, &InputError{Reason: "record id is required"}
	}

	return c.execute(ctx, request{
		method:   http.MethodDelete,
		resource: resource,
		id:       id,
	})
}

// UnlinkMany deletes several records with one request
func (c *Client) UnlinkMany(ctx context.Context, resource string, ids []int) (*Response, error) {
	if len(ids) == 0 {
		return nil, &InputError{Reason: "at least one record id is required"}
	}

	return c.execute(ctx, request{
		method:   http.MethodDelete,
		resource: resource,
		ids:      bracketIDs(ids),
	})
}

// Localized builds the language node used by multilingual fields, tagged with
// the client's default language
func (c *Client) Localized(value string) *xmltree.Node {
	var lang xmltree.Value = xmltree.Text(value)
	if c.language != "" {
		lang = xmltree.WithAttrs(lang, "id", c.language)
	}
	return xmltree.NewNode(xmltree.F("language", lang))
}

// envelope wraps data under the prestashop root element and encodes it
func envelope(data *xmltree.Node) ([]byte, error) {
	if data == nil {
		return nil, &InputError{Reason: "data or files must be provided", Err: ErrUndefinedData}
	}

	body, err := xmltree.Encode(xmltree.NewNode(xmltree.F(rootElement, data)))
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func bracketIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
