package models

// CartItem is one server-owned cart line. ID is assigned by the backend and
// is the only handle for later mutations. FoodItem is the embedded snapshot
// the backend denormalizes onto the line; older responses carried the price
// and name inline instead, so both shapes are tolerated.
type CartItem struct {
	ID         int64     `json:"id"`
	FoodItemID int64     `json:"foodItemId"`
	Quantity   int       `json:"quantity"`
	FoodItem   *FoodItem `json:"foodItem,omitempty"`
	Name       string    `json:"name,omitempty"`
	Price      float64   `json:"price,omitempty"`
}

// UnitPrice prefers the embedded snapshot and falls back to the inline price.
func (c *CartItem) UnitPrice() float64 {
	if c.FoodItem != nil {
		return c.FoodItem.Price
	}

	return c.Price
}

// DisplayName prefers the embedded snapshot and falls back to the inline name.
func (c *CartItem) DisplayName() string {
	if c.FoodItem != nil {
		return c.FoodItem.Name
	}

	return c.Name
}

// ItemFoodID resolves the referenced food item id; some responses only set it
// on the embedded snapshot.
func (c *CartItem) ItemFoodID() int64 {
	if c.FoodItemID != 0 {
		return c.FoodItemID
	}

	if c.FoodItem != nil {
		return c.FoodItem.ID
	}

	return 0
}

type AddCartItemRequest struct {
	FoodItemID int64 `json:"foodItemId" validate:"required"`
	Quantity   int   `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
