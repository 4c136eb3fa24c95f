package prestashop

import (
	"context"
	"net/http"
	"strings"

	"github.com/hashicorp/go-version"
)

// versionHeader carries the webservice version on every response
const versionHeader = "PSWS-Version"

// singleReadDisplayMin is the first version honouring display on single record reads
var singleReadDisplayMin = version.Must(version.NewVersion("1.7.6.8"))

// detectVersion probes the base URL once and records what the server supports
func (c *Client) detectVersion(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodHead, c.BaseURL(), nil, nil)
	if err != nil {
		return err
	}
	if err := classify(resp.StatusCode(), staticExtractor(0, "Ping not working")); err != nil {
		return err
	}

	raw := strings.TrimSpace(resp.Header().Get(versionHeader))
	if raw == "" {
		c.logger.Warn().Msg("PrestaShop did not report its version, assuming a current server")
		return nil
	}

	v, err := version.NewVersion(raw)
	if err != nil {
		c.logger.Warn().Err(err).Str("version", raw).Msg("Unparsable PrestaShop version, assuming a current server")
		return nil
	}

	c.serverVersion = v.Original()
	c.legacyDisplay = v.LessThan(singleReadDisplayMin)

	c.logger.Debug().
		Str("version", c.serverVersion).
		Bool("legacy_display", c.legacyDisplay).
		Msg("Detected PrestaShop version")
	return nil
}
