package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/VioletaEstudio/salon-scheduler/internal/config"
	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
)

// availabilityTTL corto: la disponibilidad cambia con cada reserva y con
// cada pasada del reconciliador.
const availabilityTTL = 60 * time.Second

// NewClient opens the Redis connection used for availability caching.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// AvailabilityCache memoizes slot lists per salon/worker/service/date.
// Redis failures degrade to recomputing, never to a request error.
type AvailabilityCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewAvailabilityCache(rdb *redis.Client, logger *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, logger: logger}
}

func key(in domain.AvailabilityInput) string {
	return fmt.Sprintf("slots:%d:%d:%d:%s",
		in.SalonID, in.WorkerID, in.ServiceID, in.Date.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(ctx context.Context, in domain.AvailabilityInput) ([]domain.Slot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(in)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, in domain.AvailabilityInput, slots []domain.Slot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(in), raw, availabilityTTL).Err(); err != nil {
		c.logger.Debug("availability cache write failed", zap.Error(err))
	}
}

// InvalidateDay drops every cached slot list of a worker's day after a
// booking mutation.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, salonID, workerID uint, date time.Time) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%d:%d:*:%s", salonID, workerID, date.Format("2006-01-02"))

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 50).Result()
		if err != nil {
			c.logger.Debug("availability cache invalidation failed", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			c.rdb.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
