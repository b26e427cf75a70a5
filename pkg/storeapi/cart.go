package storeapi

import (
	"context"

	"github.com/savorworks/storefront-client/internal/models"
)

func (c *restClient) GetCart(ctx context.Context, userID int64) ([]models.CartItem, error) {
	var items []models.CartItem

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&items).
		Get(path(endpointCart, userID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *restClient) AddCartItem(ctx context.Context, userID int64, req *models.AddCartItemRequest) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		Post(path(endpointCart, userID))

	return c.check(resp, err)
}

// UpdateCartItem returns the backend's view of the updated line. The contract
// does not guarantee the quantity field is echoed; callers must be prepared
// for a zero Quantity in the response.
func (c *restClient) UpdateCartItem(ctx context.Context, userID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	var item models.CartItem

	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&item).
		Put(path(endpointCartItem, userID, itemID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *restClient) RemoveCartItem(ctx context.Context, userID, itemID int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(path(endpointCartItem, userID, itemID))

	return c.check(resp, err)
}

func (c *restClient) ClearCart(ctx context.Context, userID int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(path(endpointCart, userID))

	return c.check(resp, err)
}
