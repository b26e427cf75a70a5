// Package checkout drives the address → payment → success progression. The
// draft lives only in memory for a single attempt; the session store owns the
// address data and the cart synchronizer owns the line items.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/savorworks/storefront-client/internal/cart"
	apperrors "github.com/savorworks/storefront-client/internal/errors"
	"github.com/savorworks/storefront-client/internal/models"
	"github.com/savorworks/storefront-client/internal/session"
	"github.com/savorworks/storefront-client/pkg/storeapi"
)

type Step string

const (
	StepAddress Step = "address"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

var (
	// ErrAddressRequired is the hard gate on the payment step; the flow moves
	// back to the address step when it fires.
	ErrAddressRequired = apperrors.PreconditionError("Delivery address is required. Please update your address.")

	// ErrEmptyCart blocks order submission for an empty cart.
	ErrEmptyCart = apperrors.PreconditionError("Your cart is empty. Please add items before proceeding.")

	// ErrLoginRequired blocks checkout entirely while logged out.
	ErrLoginRequired = apperrors.PreconditionError("You must be logged in to check out.")
)

// Flow is a single checkout attempt. It is not reusable after success; build
// a new one per checkout.
type Flow struct {
	mu       sync.Mutex
	api      storeapi.Client
	session  *session.Store
	cart     *cart.Synchronizer
	logger   *slog.Logger
	validate *validator.Validate
	step     Step
	orderID  int64
}

func NewFlow(api storeapi.Client, sessionStore *session.Store, synchronizer *cart.Synchronizer, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}

	return &Flow{
		api:      api,
		session:  sessionStore,
		cart:     synchronizer,
		logger:   logger,
		validate: validator.New(),
		step:     StepAddress,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.step
}

// OrderID is set once the success step is reached.
func (f *Flow) OrderID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.orderID
}

// AddressEditRequired reports whether the address step must open in edit
// mode, i.e. the session is missing any of address, phone or city.
func (f *Flow) AddressEditRequired() bool {
	sess, ok := f.session.Current()
	if !ok {
		return true
	}

	return !sess.HasDeliveryDetails()
}

// SubmitAddress validates the form, saves it to the backend, merges it into
// the session snapshot and only then advances to the payment step.
func (f *Flow) SubmitAddress(ctx context.Context, form *models.AddressForm) error {
	userID := f.session.UserID()
	if userID == 0 {
		return ErrLoginRequired
	}

	if err := f.validate.Struct(form); err != nil {
		return apperrors.ValidationError("Address, phone number and city are all required.").WithError(err)
	}

	if err := f.api.SaveUserData(ctx, userID, form); err != nil {
		return err
	}

	if err := f.session.Update(&models.ProfileUpdate{
		Address:  form.Address,
		PhNumber: form.PhNumber,
		City:     form.City,
	}); err != nil {
		return err
	}

	f.mu.Lock()
	f.step = StepPayment
	f.mu.Unlock()

	return nil
}

// Total computes the order total over the current cart: quantity times unit
// price per line.
func (f *Flow) Total() float64 {
	return f.cart.TotalPrice()
}

func (f *Flow) TotalItems() int {
	return f.cart.TotalItems()
}

// PlaceOrder re-checks the address gate, builds the order request from the
// session and cart, and submits it. On success the cart is cleared and the
// flow advances to the success step carrying the returned order id. On
// failure the draft is left intact for a user-triggered retry; nothing
// retries automatically — the call is not idempotent.
func (f *Flow) PlaceOrder(ctx context.Context) error {
	sess, ok := f.session.Current()
	if !ok {
		return ErrLoginRequired
	}

	// Hard gate, re-checked here even though SubmitAddress ran earlier: the
	// session may have changed underneath the flow.
	if !sess.HasDeliveryDetails() {
		f.mu.Lock()
		f.step = StepAddress
		f.mu.Unlock()

		return ErrAddressRequired
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return ErrEmptyCart
	}

	req := f.buildOrder(sess, items)

	if err := f.validate.Struct(req); err != nil {
		return apperrors.ValidationError("Invalid order data. Please check your cart items and delivery information.").WithError(err)
	}

	order, err := f.api.CreateOrder(ctx, sess.ID, req)
	if err != nil {
		return err
	}

	// The post-order cart clear is best effort; a failure does not undo the
	// placed order.
	if err := f.cart.Clear(ctx); err != nil {
		f.logger.Warn("cart clear after order failed", slog.String("error", err.Error()))
	}

	f.mu.Lock()
	f.orderID = order.Ref()
	f.step = StepSuccess
	f.mu.Unlock()

	f.logger.Info("order placed", slog.Int64("order_id", order.Ref()), slog.Int64("user_id", sess.ID))

	return nil
}

func (f *Flow) buildOrder(sess *models.Session, items []models.CartItem) *models.CreateOrderRequest {
	orderItems := make([]models.OrderItem, 0, len(items))
	totalItems := 0

	var totalAmount float64

	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			FoodItemID: item.ItemFoodID(),
			Quantity:   item.Quantity,
			Price:      item.UnitPrice(),
			Name:       item.DisplayName(),
		})

		totalItems += item.Quantity
		totalAmount += float64(item.Quantity) * item.UnitPrice()
	}

	return &models.CreateOrderRequest{
		Items:               orderItems,
		DeliveryAddress:     fmt.Sprintf("%s, %s", sess.Address, sess.City),
		SpecialInstructions: "",
		TotalAmount:         totalAmount,
		TotalItems:          totalItems,
		PaymentMethod:       models.PaymentMethodCashOnDelivery,
		PhoneNumber:         sess.PhNumber,
		Status:              models.OrderStatusPending,
		OrderDate:           time.Now().UTC(),
	}
}

// Reset abandons the draft, the navigate-away analogue.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.step = StepAddress
	f.orderID = 0
}
