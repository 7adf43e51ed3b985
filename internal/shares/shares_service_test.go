package shares_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-encash/internal/shares"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestSharesService_GetPrice(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("shares:price").SetVal("62.5")

		svc := shares.NewService(rdb, 50)
		resp, err := svc.GetPrice(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 62.5, resp.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss primes and falls back", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("shares:price").RedisNil()
		mock.ExpectSet("shares:price", 50.0, 5*time.Minute).SetVal("OK")

		svc := shares.NewService(rdb, 50)
		resp, err := svc.GetPrice(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 50.0, resp.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis down degrades to fallback", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("shares:price").SetErr(errors.New("connection refused"))

		svc := shares.NewService(rdb, 50)
		resp, err := svc.GetPrice(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 50.0, resp.Price)
	})
}
