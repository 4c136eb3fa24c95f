package prestashop

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBinaryType is the multipart field name used when none is given
const DefaultBinaryType = "image"

// CreateBinary uploads a file to resource, e.g. "images/products/12".
//
// source is either the path of an existing file or base64 encoded content; in
// the latter case the content is written to a temporary file whose extension is
// taken from fileName. typ is the multipart field name and defaults to "image".
//
// A response other than 200 is reported as false without an error. Errors are
// only returned for local I/O, decoding and transport failures.
func (c *Client) CreateBinary(ctx context.Context, resource, source, typ, fileName string) (bool, error) {
	if strings.TrimSpace(source) == "" {
		return false, &InputError{Reason: "source must be a file path or base64 content"}
	}
	if typ == "" {
		typ = DefaultBinaryType
	}

	path := source
	name := filepath.Base(source)
	if !isRegularFile(source) {
		tmp, err := base64ToTempFile(source, fileName)
		if err != nil {
			return false, err
		}
		defer os.Remove(tmp)

		path = tmp
		name = filepath.Base(tmp)
		if fileName != "" {
			name = filepath.Base(fileName)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read upload: %w", err)
	}

	params, err := c.queryParams(request{})
	if err != nil {
		return false, err
	}
	target := c.resourceURL(resource, 0, params)

	headers, body := encodeMultipart([]File{{Field: typ, Name: name, Content: content}})
	resp, err := c.do(ctx, http.MethodPost, target, body, headers)
	if err != nil {
		return false, err
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn().
			Str("resource", resource).
			Int("status", resp.StatusCode()).
			Msg("Binary upload was not accepted")
		return false, nil
	}
	return true, nil
}

// GetImageProduct downloads the raw bytes of a product image
func (c *Client) GetImageProduct(ctx context.Context, productID, imageID int) ([]byte, error) {
	params := url.Values{}
	c.wire.formatParams(params)

	resource := fmt.Sprintf("images/products/%d/%d", productID, imageID)
	resp, err := c.do(ctx, http.MethodGet, c.resourceURL(resource, 0, params), nil, nil)
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	if err := classify(resp.StatusCode(), bodyExtractor(c.wire, body)); err != nil {
		return nil, err
	}
	return body, nil
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// base64ToTempFile decodes content into a new temporary file and returns its path
func base64ToTempFile(content, fileName string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
	if err != nil {
		return "", &InputError{Reason: "source is neither an existing file nor base64 content", Err: err}
	}

	tmp, err := os.CreateTemp("", "prestashop-*"+filepath.Ext(fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	return tmp.Name(), nil
}
