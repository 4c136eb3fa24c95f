package prestashop

import (
	"context"

	"github.com/s0up4200/prestashop/xmltree"
)

// API defines the interface for PrestaShop webservice operations
type API interface {
	// Ping verifies the webservice answers on the base URL
	Ping(ctx context.Context) error

	// Search lists records of a resource with optional display/filter/sort/limit
	Search(ctx context.Context, resource string, opts ...QueryOption) (*Response, error)

	// Read fetches a single record, or the collection when id is 0
	Read(ctx context.Context, resource string, id int, opts ...QueryOption) (*Response, error)

	// Write updates a record
	Write(ctx context.Context, resource string, data *xmltree.Node) (*Response, error)

	// Create adds a record, or uploads files
	Create(ctx context.Context, resource string, data *xmltree.Node, files ...File) (*Response, error)

	// Unlink deletes a record
	Unlink(ctx context.Context, resource string, id int) (*Response, error)

	// UnlinkMany deletes several records at once
	UnlinkMany(ctx context.Context, resource string, ids []int) (*Response, error)
}

// BinaryAPI covers the upload and download helpers
type BinaryAPI interface {
	CreateBinary(ctx context.Context, resource, source, typ, fileName string) (bool, error)
	GetImageProduct(ctx context.Context, productID, imageID int) ([]byte, error)
}

var (
	_ API       = (*Client)(nil)
	_ BinaryAPI = (*Client)(nil)
)
