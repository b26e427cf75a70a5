// Package storeapi wraps the storefront backend's REST surface behind a
// typed client. The backend owns all business state; every method here is a
// plain request/response round trip.
package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/savorworks/storefront-client/internal/config"
	apperrors "github.com/savorworks/storefront-client/internal/errors"
	"github.com/savorworks/storefront-client/internal/models"
)

// Endpoint paths as exposed by the backend. Consumer auth lives on a
// separate base URL from the rest.
const (
	endpointLogin    = "/consumer/login"
	endpointSignup   = "/consumer/sign-up"
	endpointProfile  = "/consumer/profile"
	endpointUserData = "/consumer/user-data/%d"

	endpointHome   = "/home"
	endpointSearch = "/search"

	endpointCart     = "/cart/%d"
	endpointCartItem = "/cart/%d/%d"

	endpointOrders      = "/orders"
	endpointCreateOrder = "/orders/%d"
	endpointUserOrders  = "/orders/user/%d"
	endpointOrderStatus = "/orders/%d/status"
	endpointOrderCancel = "/orders/%d/cancel"

	endpointAdminProducts      = "/admin/products"
	endpointAdminCreateFood    = "/admin/create/food-item"
	endpointAdminCreateProduct = "/admin/create/product"
	endpointAdminFoodItem      = "/admin/food-item/%d"
	endpointAdminProduct       = "/admin/product/%d"
)

// Client defines the backend operations the stores consume.
type Client interface {
	// Consumer auth & profile
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthUser, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthUser, error)
	UpdateProfile(ctx context.Context, req *models.ProfileUpdate) (*models.AuthUser, error)
	SaveUserData(ctx context.Context, userID int64, form *models.AddressForm) error

	// Catalog
	ListFoodItems(ctx context.Context) ([]models.FoodItem, error)
	Search(ctx context.Context, query string) ([]models.FoodItem, error)

	// Cart
	GetCart(ctx context.Context, userID int64) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, userID int64, req *models.AddCartItemRequest) error
	UpdateCartItem(ctx context.Context, userID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID int64) error
	ClearCart(ctx context.Context, userID int64) error

	// Orders
	CreateOrder(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error
	CancelOrder(ctx context.Context, orderID int64) error

	// Admin
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateFoodItem(ctx context.Context, req *models.CreateFoodItemRequest) (*models.FoodItem, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	DeleteFoodItem(ctx context.Context, id int64) error
	DeleteProduct(ctx context.Context, id int64) error
}

type restClient struct {
	api    *resty.Client
	auth   *resty.Client
	logger *slog.Logger
}

// New builds a Client from the API config. Both underlying resty clients
// share the timeout and tag every request with an X-Request-ID for log
// correlation.
func New(cfg *config.API, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &restClient{
		api:    newResty(cfg.BaseURL, cfg, logger),
		auth:   newResty(cfg.AuthBaseURL, cfg, logger),
		logger: logger,
	}

	return c
}

func newResty(baseURL string, cfg *config.API, logger *slog.Logger) *resty.Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		requestID := uuid.NewString()
		r.SetHeader("X-Request-ID", requestID)
		logger.Debug("api request", slog.String("method", r.Method), slog.String("url", r.URL), slog.String("request_id", requestID))

		return nil
	})

	return rc
}

// apiMessage is the backend's error envelope; message is optional.
type apiMessage struct {
	Message string `json:"message"`
}

const (
	msgTransport   = "Could not reach the server. Please check your connection and try again."
	msgServer      = "Server error. Please try again later."
	msgBadRequest  = "The request was rejected. Please review your input and try again."
	msgNotFound    = "The requested resource was not found."
	msgUnauth      = "Authentication failed. Please log in again."
	msgForbidden   = "You do not have permission to perform this action."
)

// check converts a resty outcome into the error taxonomy: transport failures
// become TRANSPORT_ERROR, 4xx carry the backend message when present, 5xx
// collapse to a generic retry-later message.
func (c *restClient) check(resp *resty.Response, err error) error {
	if err != nil {
		return apperrors.TransportError(msgTransport).WithError(err)
	}

	if !resp.IsError() {
		return nil
	}

	status := resp.StatusCode()

	var envelope apiMessage
	_ = json.Unmarshal(resp.Body(), &envelope)

	c.logger.Warn("api error response",
		slog.Int("status", status),
		slog.String("url", resp.Request.URL),
		slog.String("message", envelope.Message))

	if status >= http.StatusInternalServerError {
		// The backend message is kept as detail for logs but never shown.
		return apperrors.ServerError(msgServer).WithDetail(envelope.Message)
	}

	switch status {
	case http.StatusUnauthorized:
		return apperrors.UnauthorizedError(orDefault(envelope.Message, msgUnauth))
	case http.StatusForbidden:
		return apperrors.ForbiddenError(orDefault(envelope.Message, msgForbidden))
	case http.StatusNotFound:
		return apperrors.NotFoundError(orDefault(envelope.Message, msgNotFound))
	default:
		return apperrors.BadRequestError(orDefault(envelope.Message, msgBadRequest))
	}
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}

	return fallback
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
