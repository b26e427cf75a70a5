package models

// FoodItem is a dish on the storefront. Search and the home listing both
// return this shape.
type FoodItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Product is a packaged good managed through the admin panel, distinct from
// prepared food items.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type CreateFoodItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
