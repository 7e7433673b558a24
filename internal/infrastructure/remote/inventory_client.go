package remote

import (
	"context"
	"fmt"
	"net/url"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// InventoryClient implements remote.InventoryAPI over the backend's
// /inventory endpoints.
type InventoryClient struct {
	c *Client
}

// NewInventoryClient creates an inventory client on the shared backend client.
func NewInventoryClient(c *Client) *InventoryClient {
	return &InventoryClient{c: c}
}

// GetItemByBarcode looks up items by barcode scan. The barcode endpoint is
// public on the backend.
func (ic *InventoryClient) GetItemByBarcode(ctx context.Context, barcode string, locationID int64) ([]entity.InventoryItem, error) {
	path := fmt.Sprintf("/inventory/getItem/%s/%d", url.PathEscape(barcode), locationID)
	env, err := ic.c.get(ctx, path, false)
	if err != nil {
		return nil, err
	}

	var items []entity.InventoryItem
	if err := decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemQuantity returns the stock on hand for a barcode at a location.
func (ic *InventoryClient) GetItemQuantity(ctx context.Context, barcode string, locationID int64) (int, error) {
	path := fmt.Sprintf("/inventory/getItemQTY/%s/%d", url.PathEscape(barcode), locationID)
	env, err := ic.c.get(ctx, path, false)
	if err != nil {
		return 0, err
	}

	var qty int
	if err := decodeData(env, &qty); err != nil {
		return 0, err
	}
	return qty, nil
}

// GetAll returns the full inventory for a location.
func (ic *InventoryClient) GetAll(ctx context.Context, locationID int64) ([]entity.InventoryItem, error) {
	env, err := ic.c.get(ctx, fmt.Sprintf("/inventory/getAll/%d", locationID), true)
	if err != nil {
		return nil, err
	}

	var items []entity.InventoryItem
	if err := decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchByName searches items by title for the given location.
func (ic *InventoryClient) SearchByName(ctx context.Context, name string, locationID int64) ([]entity.InventoryItem, error) {
	path := fmt.Sprintf("/inventory/searchByName/%s/%d", url.PathEscape(name), locationID)
	env, err := ic.c.get(ctx, path, true)
	if err != nil {
		return nil, err
	}

	var items []entity.InventoryItem
	if err := decodeData(env, &items); err != nil {
		return nil, err
	}
	return items, nil
}
