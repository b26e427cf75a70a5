package cart_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/savorworks/storefront-client/internal/cart"
	apperrors "github.com/savorworks/storefront-client/internal/errors"
	"github.com/savorworks/storefront-client/internal/models"
	"github.com/savorworks/storefront-client/internal/session"
	"github.com/savorworks/storefront-client/pkg/storeapi"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()

	return session.New(session.NewFileVault(filepath.Join(t.TempDir(), "session.json")), nil)
}

func loggedInStore(t *testing.T) *session.Store {
	t.Helper()

	store := newSessionStore(t)
	store.Login(&models.AuthUser{ID: 1, FullName: "A B", Email: "a@b.com"})

	return store
}

func serverCart() []models.CartItem {
	return []models.CartItem{
		{ID: 3, FoodItemID: 9, Quantity: 2, FoodItem: &models.FoodItem{ID: 9, Name: "Pasta", Price: 250}},
		{ID: 4, FoodItemID: 11, Quantity: 1, FoodItem: &models.FoodItem{ID: 11, Name: "Biryani", Price: 400}},
	}
}

func TestFetch(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Replaces Local State", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()

		// Act
		err := sync.Fetch(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, sync.Items(), 2)
		assert.Equal(t, 3, sync.TotalItems())
		assert.Equal(t, 900.0, sync.TotalPrice())
		api.AssertExpectations(t)
	})

	t.Run("Logged Out - Clears Without Network Call", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		store := loggedInStore(t)
		sync := cart.NewSynchronizer(api, store, nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		store.Logout()

		// Act
		err := sync.Fetch(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, sync.Items())
		api.AssertNumberOfCalls(t, "GetCart", 1)
	})

	t.Run("Failure - Degrades To Empty", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(nil, apperrors.TransportError("down")).Once()

		// Act
		err := sync.Fetch(ctx)

		// Assert
		assert.Error(t, err)
		assert.Empty(t, sync.Items())
	})
}

func TestAdd(t *testing.T) {
	ctx := t.Context()
	pasta := &models.FoodItem{ID: 9, Name: "Pasta", Price: 250}

	t.Run("Success - Refetches For Server-Assigned IDs", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("AddCartItem", ctx, int64(1), &models.AddCartItemRequest{FoodItemID: 9, Quantity: 2}).Return(nil).Once()
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()

		// Act
		err := sync.Add(ctx, pasta, 2)

		// Assert
		require.NoError(t, err)
		api.AssertExpectations(t)

		items := sync.Items()
		require.NotEmpty(t, items)
		assert.Equal(t, int64(9), items[0].FoodItemID)
		// The quantity is whatever the server says, not necessarily what was
		// requested — the backend may have merged lines.
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Failure - Logged Out Surfaces Precondition", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, newSessionStore(t), nil)

		// Act
		err := sync.Add(ctx, pasta, 1)

		// Assert
		require.ErrorIs(t, err, cart.ErrLoginRequired)
		api.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Post Error Leaves State Untouched", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("AddCartItem", ctx, int64(1), mock.Anything).Return(apperrors.ServerError("boom")).Once()

		// Act
		err := sync.Add(ctx, pasta, 1)

		// Assert
		assert.Error(t, err)
		assert.Len(t, sync.Items(), 2, "failed mutation must not change local state")
		api.AssertNumberOfCalls(t, "GetCart", 1)
	})
}

func TestRemove(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Optimistic Local Removal, No Refetch", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("RemoveCartItem", ctx, int64(1), int64(3)).Return(nil).Once()

		// Act
		err := sync.Remove(ctx, 3)

		// Assert
		require.NoError(t, err)

		items := sync.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(4), items[0].ID)
		api.AssertNumberOfCalls(t, "GetCart", 1)
	})

	t.Run("Failure - Delete Error Keeps Line", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("RemoveCartItem", ctx, int64(1), int64(3)).Return(apperrors.ServerError("boom")).Once()

		// Act
		err := sync.Remove(ctx, 3)

		// Assert
		assert.Error(t, err)
		assert.Len(t, sync.Items(), 2)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := t.Context()

	t.Run("Rejects Quantity Below One Locally", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))

		// Act
		err := sync.UpdateQuantity(ctx, 3, 0)

		// Assert
		require.ErrorIs(t, err, cart.ErrQuantityFloor)
		assert.Equal(t, 2, sync.Items()[0].Quantity, "state unchanged")
		api.AssertNotCalled(t, "UpdateCartItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Takes Echoed Quantity", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("UpdateCartItem", ctx, int64(1), int64(3), &models.UpdateCartItemRequest{Quantity: 5}).
			Return(&models.CartItem{ID: 3, FoodItemID: 9, Quantity: 7}, nil).Once()

		// Act
		err := sync.UpdateQuantity(ctx, 3, 5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 7, sync.Items()[0].Quantity, "server value wins when echoed")
	})

	t.Run("Success - Falls Back To Requested Quantity", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("UpdateCartItem", ctx, int64(1), int64(3), mock.Anything).
			Return(&models.CartItem{ID: 3, FoodItemID: 9}, nil).Once()

		// Act
		err := sync.UpdateQuantity(ctx, 3, 5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 5, sync.Items()[0].Quantity, "requested value is the defensive default")
	})

	t.Run("Failure - Update Error Keeps Quantity", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("UpdateCartItem", ctx, int64(1), int64(3), mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		// Act
		err := sync.UpdateQuantity(ctx, 3, 5)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, 2, sync.Items()[0].Quantity)
	})
}

func TestClear(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Empties Local State", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, loggedInStore(t), nil)
		api.On("GetCart", ctx, int64(1)).Return(serverCart(), nil).Once()
		require.NoError(t, sync.Fetch(ctx))
		api.On("ClearCart", ctx, int64(1)).Return(nil).Once()

		// Act
		err := sync.Clear(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, sync.Items())
		assert.Zero(t, sync.TotalPrice())
	})

	t.Run("Failure - Logged Out", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		sync := cart.NewSynchronizer(api, newSessionStore(t), nil)

		// Act & Assert
		require.ErrorIs(t, sync.Clear(ctx), cart.ErrLoginRequired)
		api.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
	})
}
