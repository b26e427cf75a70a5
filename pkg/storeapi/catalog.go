package storeapi

import (
	"context"

	"github.com/savorworks/storefront-client/internal/models"
)

func (c *restClient) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&items).
		Get(endpointHome)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *restClient) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	var items []models.FoodItem

	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&items).
		Get(endpointSearch)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}

	return items, nil
}
