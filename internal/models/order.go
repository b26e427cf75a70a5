package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentMethod string

// The storefront only ships cash on delivery; the field exists because the
// order contract reserves room for other methods.
const PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"

type OrderItem struct {
	FoodItemID int64   `json:"foodItemId" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
	Price      float64 `json:"price" validate:"gte=0"`
	Name       string  `json:"name"`
}

type Order struct {
	ID              int64         `json:"id"`
	OrderID         int64         `json:"orderId,omitempty"`
	Items           []OrderItem   `json:"orderItems,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	TotalAmount     float64       `json:"totalAmount"`
	TotalItems      int           `json:"totalItems"`
	PaymentMethod   PaymentMethod `json:"paymentMethod,omitempty"`
	PhoneNumber     string        `json:"phoneNumber,omitempty"`
	Status          OrderStatus   `json:"status,omitempty"`
	OrderDate       time.Time     `json:"orderDate,omitempty"`
}

// Ref returns the identifier the success step should display. The backend
// answers order creation with either `orderId` or `id` depending on version.
func (o *Order) Ref() int64 {
	if o.OrderID != 0 {
		return o.OrderID
	}

	return o.ID
}

type CreateOrderRequest struct {
	Items               []OrderItem   `json:"orderItems" validate:"required,min=1,dive"`
	DeliveryAddress     string        `json:"deliveryAddress" validate:"required"`
	SpecialInstructions string        `json:"specialInstructions"`
	TotalAmount         float64       `json:"totalAmount" validate:"gte=0"`
	TotalItems          int           `json:"totalItems" validate:"min=1"`
	PaymentMethod       PaymentMethod `json:"paymentMethod" validate:"required"`
	PhoneNumber         string        `json:"phoneNumber"`
	Status              OrderStatus   `json:"status"`
	OrderDate           time.Time     `json:"orderDate"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED DELIVERED CANCELLED"`
}
