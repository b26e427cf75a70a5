package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/savorworks/storefront-client/internal/errors"
	"github.com/savorworks/storefront-client/internal/models"
	"github.com/savorworks/storefront-client/internal/search"
	"github.com/savorworks/storefront-client/pkg/storeapi"
)

const testDebounce = 30 * time.Millisecond

func newClient(t *testing.T, api *storeapi.MockClient) (*search.Client, chan []models.FoodItem) {
	t.Helper()

	updates := make(chan []models.FoodItem, 8)

	client := search.NewClient(api, testDebounce, nil, func(items []models.FoodItem) {
		updates <- items
	})
	t.Cleanup(client.Close)

	return client, updates
}

func waitForUpdate(t *testing.T, updates chan []models.FoodItem) []models.FoodItem {
	t.Helper()

	select {
	case items := <-updates:
		return items
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search results")

		return nil
	}
}

func TestQuery(t *testing.T) {
	pasta := []models.FoodItem{{ID: 9, Name: "Pasta", Price: 250}}

	t.Run("Whitespace Query Never Issues A Request", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		client, updates := newClient(t, api)

		// Act
		client.Query("   ")

		// Assert
		items := waitForUpdate(t, updates)
		assert.Empty(t, items, "blank input clears results immediately")
		assert.Empty(t, client.Results())

		time.Sleep(3 * testDebounce)
		api.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("Debounces To Exactly One Request", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		client, updates := newClient(t, api)
		api.On("Search", mock.Anything, "pasta").Return(pasta, nil).Once()

		// Act — rapid keystrokes; only the last survives the quiet period.
		client.Query("p")
		client.Query("pa")
		client.Query("pasta")

		// Assert
		items := waitForUpdate(t, updates)
		require.Len(t, items, 1)
		assert.Equal(t, int64(9), items[0].ID)

		time.Sleep(3 * testDebounce)
		api.AssertNumberOfCalls(t, "Search", 1)
		api.AssertNotCalled(t, "Search", mock.Anything, "p")
		api.AssertNotCalled(t, "Search", mock.Anything, "pa")
	})

	t.Run("Failed Request Clears Results", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		client, updates := newClient(t, api)
		api.On("Search", mock.Anything, "pasta").Return(pasta, nil).Once()
		client.Query("pasta")
		require.NotEmpty(t, waitForUpdate(t, updates))

		api.On("Search", mock.Anything, "pizza").Return(nil, apperrors.ServerError("boom")).Once()

		// Act
		client.Query("pizza")

		// Assert
		items := waitForUpdate(t, updates)
		assert.Empty(t, items, "failure degrades to no results, not an error state")
		assert.Empty(t, client.Results())
	})

	t.Run("Blank Input Cancels Pending Request", func(t *testing.T) {
		// Arrange
		api := storeapi.NewMockClient()
		client, updates := newClient(t, api)

		// Act — clear the field before the quiet period elapses.
		client.Query("pasta")
		client.Query("")

		// Assert
		items := waitForUpdate(t, updates)
		assert.Empty(t, items)

		time.Sleep(3 * testDebounce)
		api.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})
}
