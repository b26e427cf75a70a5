package session_test

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savorworks/storefront-client/internal/session"
)

const redisSessionKey = "storefront:session"

func TestRedisVault(t *testing.T) {
	blob := []byte(`{"id":1,"fullName":"A B","email":"a@b.com"}`)

	t.Run("Save", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		vault := session.NewRedisVault(client, time.Hour)
		mock.ExpectSet(redisSessionKey, blob, time.Hour).SetVal("OK")

		// Act
		err := vault.Save(blob)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Load - Found", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		vault := session.NewRedisVault(client, time.Hour)
		mock.ExpectGet(redisSessionKey).SetVal(string(blob))

		// Act
		data, found, err := vault.Load()

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, blob, data)
	})

	t.Run("Load - Missing Key Is Not An Error", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		vault := session.NewRedisVault(client, time.Hour)
		mock.ExpectGet(redisSessionKey).RedisNil()

		// Act
		data, found, err := vault.Load()

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, data)
	})

	t.Run("Clear", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		vault := session.NewRedisVault(client, time.Hour)
		mock.ExpectDel(redisSessionKey).SetVal(1)

		// Act & Assert
		require.NoError(t, vault.Clear())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Hydrate Through Store", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(redisSessionKey).SetVal(string(blob))

		// Act
		store := session.New(session.NewRedisVault(client, time.Hour), nil)

		// Assert
		sess, ok := store.Current()
		require.True(t, ok)
		assert.Equal(t, int64(1), sess.ID)
		assert.Equal(t, "A B", sess.FullName)
	})
}
