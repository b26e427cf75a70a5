package storeapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/savorworks/storefront-client/internal/models"
)

// MockClient is a testify mock of Client for store tests.
type MockClient struct {
	mock.Mock
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthUser, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.AuthUser)

	return user, args.Error(1)
}

func (m *MockClient) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthUser, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.AuthUser)

	return user, args.Error(1)
}

func (m *MockClient) UpdateProfile(ctx context.Context, req *models.ProfileUpdate) (*models.AuthUser, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.AuthUser)

	return user, args.Error(1)
}

func (m *MockClient) SaveUserData(ctx context.Context, userID int64, form *models.AddressForm) error {
	args := m.Called(ctx, userID, form)

	return args.Error(0)
}

func (m *MockClient) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	args := m.Called(ctx)

	items, _ := args.Get(0).([]models.FoodItem)

	return items, args.Error(1)
}

func (m *MockClient) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	args := m.Called(ctx, query)

	items, _ := args.Get(0).([]models.FoodItem)

	return items, args.Error(1)
}

func (m *MockClient) GetCart(ctx context.Context, userID int64) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)

	items, _ := args.Get(0).([]models.CartItem)

	return items, args.Error(1)
}

func (m *MockClient) AddCartItem(ctx context.Context, userID int64, req *models.AddCartItemRequest) error {
	args := m.Called(ctx, userID, req)

	return args.Error(0)
}

func (m *MockClient) UpdateCartItem(ctx context.Context, userID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, userID, itemID, req)

	item, _ := args.Get(0).(*models.CartItem)

	return item, args.Error(1)
}

func (m *MockClient) RemoveCartItem(ctx context.Context, userID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)

	return args.Error(0)
}

func (m *MockClient) ClearCart(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *MockClient) CreateOrder(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, userID, req)

	order, _ := args.Get(0).(*models.Order)

	return order, args.Error(1)
}

func (m *MockClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)

	orders, _ := args.Get(0).([]models.Order)

	return orders, args.Error(1)
}

func (m *MockClient) ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	args := m.Called(ctx, userID)

	orders, _ := args.Get(0).([]models.Order)

	return orders, args.Error(1)
}

func (m *MockClient) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	args := m.Called(ctx, orderID, status)

	return args.Error(0)
}

func (m *MockClient) CancelOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)

	return args.Error(0)
}

func (m *MockClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	products, _ := args.Get(0).([]models.Product)

	return products, args.Error(1)
}

func (m *MockClient) CreateFoodItem(ctx context.Context, req *models.CreateFoodItemRequest) (*models.FoodItem, error) {
	args := m.Called(ctx, req)

	item, _ := args.Get(0).(*models.FoodItem)

	return item, args.Error(1)
}

func (m *MockClient) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)

	product, _ := args.Get(0).(*models.Product)

	return product, args.Error(1)
}

func (m *MockClient) DeleteFoodItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockClient) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
