package shares

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	priceKey = "shares:price"
	priceTTL = 5 * time.Minute
)

//go:generate mockgen -source=shares_service.go -destination=mock/shares_service_mock.go -package=mock
type Service interface {
	GetPrice(ctx context.Context) (PriceResponse, error)
}

type service struct {
	rdb      *redis.Client
	fallback float64
	sf       *singleflight.Group
	logger   *zap.Logger
}

// NewService serves the share price from Redis. The cache is primed from an
// external pricing feed out of band; fallback covers cold starts and feed
// outages.
func NewService(rdb *redis.Client, fallback float64, logger ...*zap.Logger) Service {
	l := zap.L().Named("shares.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shares.service")
	}
	return &service{
		rdb:      rdb,
		fallback: fallback,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) GetPrice(ctx context.Context) (PriceResponse, error) {
	price, err := s.rdb.Get(ctx, priceKey).Float64()
	if err == nil {
		return PriceResponse{Price: price}, nil
	}

	if !errors.Is(err, redis.Nil) {
		// Redis down: degrade to the configured price rather than failing
		// an unauthenticated read endpoint.
		s.logger.Warn("share price cache read failed", zap.Error(err))
		return PriceResponse{Price: s.fallback}, nil
	}

	// Cache miss. Singleflight keeps concurrent misses from racing to prime.
	_, _, _ = s.sf.Do(priceKey, func() (interface{}, error) {
		if err := s.rdb.Set(ctx, priceKey, s.fallback, priceTTL).Err(); err != nil {
			s.logger.Warn("share price cache prime failed", zap.Error(err))
		}
		return nil, nil
	})

	return PriceResponse{Price: s.fallback}, nil
}
