package storeapi

import (
	"context"

	"github.com/savorworks/storefront-client/internal/models"
)

// CreateOrder submits the checkout draft. The call is not idempotent; the
// caller must not retry automatically.
func (c *restClient) CreateOrder(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order

	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&order).
		Post(path(endpointCreateOrder, userID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *restClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&orders).
		Get(endpointOrders)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *restClient) ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&orders).
		Get(path(endpointUserOrders, userID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *restClient) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(&models.UpdateOrderStatusRequest{Status: status}).
		Put(path(endpointOrderStatus, orderID))

	return c.check(resp, err)
}

func (c *restClient) CancelOrder(ctx context.Context, orderID int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Put(path(endpointOrderCancel, orderID))

	return c.check(resp, err)
}
