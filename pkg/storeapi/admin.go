package storeapi

import (
	"context"

	"github.com/savorworks/storefront-client/internal/models"
)

func (c *restClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&products).
		Get(endpointAdminProducts)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *restClient) CreateFoodItem(ctx context.Context, req *models.CreateFoodItemRequest) (*models.FoodItem, error) {
	var item models.FoodItem

	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&item).
		Post(endpointAdminCreateFood)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *restClient) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	var product models.Product

	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&product).
		Post(endpointAdminCreateProduct)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *restClient) DeleteFoodItem(ctx context.Context, id int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(path(endpointAdminFoodItem, id))

	return c.check(resp, err)
}

func (c *restClient) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(path(endpointAdminProduct, id))

	return c.check(resp, err)
}
