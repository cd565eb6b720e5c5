package jet

import (
	"context"
	"net/http"
	"net/url"
)

func skuPath(sku, resource string) string {
	return "/merchant-skus/" + url.PathEscape(sku) + "/" + resource
}

// GetInventory returns the per-node stock of sku.
func (c *Client) GetInventory(ctx context.Context, sku string) (*Inventory, error) {
	var inv Inventory
	if err := c.Do(ctx, http.MethodGet, skuPath(sku, "inventory"), &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInventory replaces the per-node stock of sku.
func (c *Client) UpdateInventory(ctx context.Context, sku string, inv *Inventory) error {
	return c.DoNoContent(ctx, http.MethodPut, skuPath(sku, "inventory"), WithJSONBody(inv))
}

// GetPrice returns the selling price of sku.
func (c *Client) GetPrice(ctx context.Context, sku string) (*Price, error) {
	var p Price
	if err := c.Do(ctx, http.MethodGet, skuPath(sku, "price"), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePrice sets the selling price of sku.
func (c *Client) UpdatePrice(ctx context.Context, sku string, price *Price) error {
	return c.DoNoContent(ctx, http.MethodPut, skuPath(sku, "price"), WithJSONBody(price))
}
